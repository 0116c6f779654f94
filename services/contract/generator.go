// File: services/contract/generator.go
package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	documentRepo "suretydesk/database/repository/document"
	"suretydesk/models"
	"suretydesk/services/storage"
	"suretydesk/utils"

	"go.uber.org/zap"
)

// bailContractTemplate is the agency's standard bail bond agreement.
const bailContractTemplate = `BAIL BOND AGREEMENT

Bond Number: {{.Bond.BondNumber}}
Issued: {{.IssuedDate}}

DEFENDANT
  Name:    {{.Client.FirstName}} {{.Client.LastName}}
  Address: {{.Client.Address}}
  Phone:   {{.Client.Phone}}

CASE
  Case Number: {{.Case.CaseNumber}}
  Court:       {{.Case.CourtName}}, {{.Case.County}} County
  Charges:     {{.Case.Charges}}
  Court Date:  {{.CourtDate}}

BOND TERMS
  Bond Amount: ${{printf "%.2f" .Bond.Amount}}
  Premium:     ${{printf "%.2f" .Bond.Premium}}
{{- if .Bond.Collateral}}
  Collateral:  {{.Bond.Collateral}}
{{- end}}

The defendant agrees to appear at all scheduled court dates and to check in
with the agency as directed. Failure to appear results in forfeiture of the
bond and any pledged collateral.

Defendant signature: ______________________    Date: ______________

Agent signature:     ______________________    Date: ______________
`

// contractData is the template input.
type contractData struct {
	Bond       models.Bond
	Client     models.Client
	Case       models.CaseFile
	IssuedDate string
	CourtDate  string
}

// GeneratorService renders bail contracts and files them as documents.
type GeneratorService interface {
	GenerateContract(ctx context.Context, bond models.Bond, client models.Client, cf models.CaseFile) (*models.Document, error)
}

// DefaultGeneratorService is the production implementation of GeneratorService.
type DefaultGeneratorService struct {
	Storage      storage.StorageService
	DocumentRepo documentRepo.DocumentRepository

	tmpl *template.Template
}

// NewGeneratorService parses the contract template once up front.
func NewGeneratorService(st storage.StorageService, docs documentRepo.DocumentRepository) (*DefaultGeneratorService, error) {
	tmpl, err := template.New("bail-contract").Parse(bailContractTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &DefaultGeneratorService{
		Storage:      st,
		DocumentRepo: docs,
		tmpl:         tmpl,
	}, nil
}

// renderContract produces the contract text for the given bond.
func (s *DefaultGeneratorService) renderContract(bond models.Bond, client models.Client, cf models.CaseFile) (string, error) {
	data := contractData{
		Bond:       bond,
		Client:     client,
		Case:       cf,
		IssuedDate: bond.IssuedDate.Format("January 2, 2006"),
		CourtDate:  cf.CourtDate.Format("January 2, 2006 at 3:04 PM"),
	}
	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render contract: %w", err)
	}
	return sb.String(), nil
}

// GenerateContract renders the contract, uploads it, and records a document
// entry linked to the bond's client and case.
func (s *DefaultGeneratorService) GenerateContract(ctx context.Context, bond models.Bond, client models.Client, cf models.CaseFile) (*models.Document, error) {
	logger := utils.GetLogger().With(zap.String("bondID", bond.ID))

	text, err := s.renderContract(bond, client, cf)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("contract-%s.txt", bond.BondNumber)
	tmpPath := filepath.Join(os.TempDir(), fileName)
	if err := os.WriteFile(tmpPath, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write contract file: %w", err)
	}
	defer os.Remove(tmpPath)

	storageID, err := s.Storage.UploadFile(ctx, tmpPath, "contracts")
	if err != nil {
		return nil, fmt.Errorf("failed to upload contract: %w", err)
	}

	doc := models.Document{
		ClientID:    bond.ClientID,
		CaseID:      bond.CaseID,
		FileName:    fileName,
		Category:    models.DocCategoryContract,
		ContentType: "text/plain",
		StorageID:   storageID,
		UploadedAt:  time.Now(),
	}
	id, err := s.DocumentRepo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to record contract document: %w", err)
	}
	doc.ID = id

	logger.Info("Contract generated", zap.String("documentID", doc.ID))
	return &doc, nil
}
