package ingest

import (
	"time"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// testNow fixes the run date so every reader's cutoff is 2024-01-01.
var testNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestSite() *models.Site {
	return &models.Site{
		ID:    "dgsc",
		Code:  "dgsc",
		Title: "District Scheduling Center",
		WorkCodes: []models.WorkCode{
			{Code: "D", StartTime: 6},
			{Code: "S", StartTime: 14},
			{Code: "M", StartTime: 22},
			{Code: "V", StartTime: 6, IsLeave: true},
		},
	}
}

// newTestEmployee attaches an employee with one open-ended default
// assignment at the OPS workcenter, the state the roster reader leaves
// behind for the downstream readers.
func newTestEmployee(site *models.Site, id string, start time.Time) *models.Employee {
	emp := &models.Employee{
		TeamID: "team1",
		SiteID: site.Code,
		CompanyInfo: models.CompanyInfo{
			CompanyCode: "raytheon",
			EmployeeID:  id,
		},
	}
	emp.EnsureAssignments(1)
	a := &emp.Assignments[0]
	a.Site = site.Code
	a.StartDate = start
	a.EndDate = maxDate
	a.SetDefaultWorkdays("OPS")
	site.AddEmployee(emp)
	return emp
}
