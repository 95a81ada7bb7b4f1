package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

var empLaborHeader = []string{"FiscalYear", "EmployeeID", "WorkCode", "Extension"}

func withSiteLaborCode(site *models.Site) {
	site.LaborCodes = append(site.LaborCodes, models.SiteLaborCode{
		Company:      "raytheon",
		ChargeNumber: "CN100",
		Extension:    "01",
		StartDate:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	})
}

func TestEmpLaborCodeWindowFromSiteCode(t *testing.T) {
	site := newTestSite()
	withSiteLaborCode(site)
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewEmpLaborCodeReader(site, testNow, zap.NewNop())

	sheet := NewSheet("employeelaborcodes", empLaborHeader,
		[]string{"2025", "E100", "CN100", "01"})
	require.NoError(t, reader.Process(sheet))

	require.Len(t, emp.LaborCodes, 1)
	lc := emp.LaborCodes[0]
	assert.Equal(t, "raytheon", lc.CompanyCode)
	assert.Equal(t, "CN100", lc.ChargeNumber)
	assert.Equal(t, "01", lc.Extension)
	// The open-ended assignment does not shorten the contract window.
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), lc.StartDate)
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), lc.EndDate)
}

func TestEmpLaborCodeBoundedByAssignmentEnd(t *testing.T) {
	site := newTestSite()
	withSiteLaborCode(site)
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	emp.Assignments[0].EndDate = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	reader := NewEmpLaborCodeReader(site, testNow, zap.NewNop())

	sheet := NewSheet("employeelaborcodes", empLaborHeader,
		[]string{"2025", "E100", "CN100", "01"})
	require.NoError(t, reader.Process(sheet))

	require.Len(t, emp.LaborCodes, 1)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), emp.LaborCodes[0].EndDate)
}

func TestEmpLaborCodeGrantsAreCreateOnly(t *testing.T) {
	site := newTestSite()
	withSiteLaborCode(site)
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewEmpLaborCodeReader(site, testNow, zap.NewNop())

	sheet := NewSheet("employeelaborcodes", empLaborHeader,
		[]string{"2025", "E100", "CN100", "01"})
	require.NoError(t, reader.Process(sheet))

	want := emp.LaborCodes[0]
	require.NoError(t, reader.Process(sheet))
	require.Len(t, emp.LaborCodes, 1)
	assert.Equal(t, want, emp.LaborCodes[0])
}

func TestEmpLaborCodeSkipsBlankAndOldRows(t *testing.T) {
	site := newTestSite()
	withSiteLaborCode(site)
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewEmpLaborCodeReader(site, testNow, zap.NewNop())

	sheet := NewSheet("employeelaborcodes", empLaborHeader,
		[]string{"2025", "", "CN100", "01"},
		[]string{"2023", "E100", "CN100", "01"})
	require.NoError(t, reader.Process(sheet))
	assert.Empty(t, emp.LaborCodes)
}

func TestEmpLaborCodeWithoutSiteCodeHasZeroWindow(t *testing.T) {
	site := newTestSite()
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewEmpLaborCodeReader(site, testNow, zap.NewNop())

	sheet := NewSheet("employeelaborcodes", empLaborHeader,
		[]string{"2025", "E100", "CN999", "01"})
	require.NoError(t, reader.Process(sheet))

	require.Len(t, emp.LaborCodes, 1)
	assert.True(t, emp.LaborCodes[0].StartDate.IsZero())
	assert.True(t, emp.LaborCodes[0].EndDate.IsZero())
}
