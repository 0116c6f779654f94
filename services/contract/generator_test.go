package contract

import (
	"testing"
	"time"

	"suretydesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBond() (models.Bond, models.Client, models.CaseFile) {
	bond := models.Bond{
		ID:         "b1",
		BondNumber: "BND-2026-042",
		Amount:     25000,
		Premium:    2500,
		Collateral: "2019 Ford F-150",
		IssuedDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
	client := models.Client{
		ID:        "c1",
		FirstName: "John",
		LastName:  "Maldonado",
		Address:   "1200 Oak St, Austin TX",
		Phone:     "555-0100",
	}
	cf := models.CaseFile{
		ID:         "k1",
		CaseNumber: "CR-2026-118",
		CourtName:  "Travis County District Court",
		County:     "Travis",
		Charges:    "Failure to appear",
		CourtDate:  time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC),
	}
	return bond, client, cf
}

func TestRenderContract(t *testing.T) {
	svc, err := NewGeneratorService(nil, nil)
	require.NoError(t, err)

	bond, client, cf := testBond()
	text, err := svc.renderContract(bond, client, cf)
	require.NoError(t, err)

	assert.Contains(t, text, "BND-2026-042")
	assert.Contains(t, text, "John Maldonado")
	assert.Contains(t, text, "CR-2026-118")
	assert.Contains(t, text, "Travis County District Court, Travis County")
	assert.Contains(t, text, "$25000.00")
	assert.Contains(t, text, "$2500.00")
	assert.Contains(t, text, "2019 Ford F-150")
	assert.Contains(t, text, "March 14, 2026")
	assert.Contains(t, text, "May 2, 2026 at 9:30 AM")
}

func TestRenderContractOmitsEmptyCollateral(t *testing.T) {
	svc, err := NewGeneratorService(nil, nil)
	require.NoError(t, err)

	bond, client, cf := testBond()
	bond.Collateral = ""

	text, err := svc.renderContract(bond, client, cf)
	require.NoError(t, err)
	assert.NotContains(t, text, "Collateral:")
}
