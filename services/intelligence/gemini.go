// File: services/intelligence/gemini.go
package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend implements RankingBackend and PhotoVerifier over the Gemini API.
type GeminiBackend struct {
	model *genai.GenerativeModel
}

func NewGeminiBackend(apiKey string) (*GeminiBackend, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiBackend{model: model}, nil
}

// RankCandidates sends one ranking request. Transport failures surface as
// errors; an undecodable reply comes back as an empty RankResponse.
func (g *GeminiBackend) RankCandidates(ctx context.Context, req RankRequest) (RankResponse, error) {
	prompt, err := buildRankPrompt(req)
	if err != nil {
		return RankResponse{}, err
	}

	resp, err := g.model.GenerateContent(ctx,
		genai.Text(rankInstruction(req.Language)),
		genai.Text(prompt),
	)
	if err != nil {
		return RankResponse{}, fmt.Errorf("gemini generate error: %w", err)
	}

	return RankResponse{Results: decodeRankResults(collectText(resp))}, nil
}

const photoVerifyPrompt = `Classify this check-in photo for a bail bond agency portal.
It should be a live selfie showing exactly one person's face. It must not be a photo of a document, a screen, or an empty frame.
Respond with only a JSON object: {"acceptable":true|false,"label":"short reason"}`

// VerifyCheckInPhoto classifies a portal selfie. An undecodable reply is
// treated as not acceptable rather than an error.
func (g *GeminiBackend) VerifyCheckInPhoto(ctx context.Context, imageData []byte, mimeType string) (PhotoVerdict, error) {
	format := strings.TrimPrefix(mimeType, "image/")
	resp, err := g.model.GenerateContent(ctx,
		genai.Text(photoVerifyPrompt),
		genai.ImageData(format, imageData),
	)
	if err != nil {
		return PhotoVerdict{}, fmt.Errorf("gemini generate error: %w", err)
	}

	return decodePhotoVerdict(collectText(resp)), nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
