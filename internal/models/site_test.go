package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEmployeeFirstInsertionWins(t *testing.T) {
	site := &Site{Code: "dgsc"}
	first := &Employee{CompanyInfo: CompanyInfo{EmployeeID: "E100"}, Email: "first@x.com"}
	shadow := &Employee{CompanyInfo: CompanyInfo{EmployeeID: "E100"}, Email: "second@x.com"}

	assert.True(t, site.AddEmployee(first))
	assert.False(t, site.AddEmployee(shadow))
	require.Len(t, site.Employees, 1)
	assert.Same(t, first, site.EmployeeByID("E100"))
	assert.Nil(t, site.EmployeeByID("E999"))
}

func TestReindexEmployees(t *testing.T) {
	site := &Site{Code: "dgsc", Employees: []*Employee{
		{CompanyInfo: CompanyInfo{EmployeeID: "E100"}, Email: "first@x.com"},
		{CompanyInfo: CompanyInfo{EmployeeID: "E100"}, Email: "dup@x.com"},
		{CompanyInfo: CompanyInfo{EmployeeID: "E200"}},
	}}
	// A site loaded from storage has no index until first lookup.
	assert.Equal(t, "first@x.com", site.EmployeeByID("E100").Email)
	assert.NotNil(t, site.EmployeeByID("E200"))
}

func TestShiftStart(t *testing.T) {
	site := &Site{WorkCodes: []WorkCode{{Code: "D", StartTime: 6}, {Code: "M", StartTime: 22}}}
	assert.Equal(t, 6, site.ShiftStart("D"))
	assert.Equal(t, 22, site.ShiftStart("M"))
	assert.Equal(t, -1, site.ShiftStart("Z"))
}

func TestSiteLaborCodeLookup(t *testing.T) {
	site := &Site{LaborCodes: []SiteLaborCode{
		{Company: "raytheon", ChargeNumber: "CN100", Extension: "01"},
		{Company: "raytheon", ChargeNumber: "CN100", Extension: "02"},
	}}
	lc := site.LaborCode("Raytheon", "CN100", "02")
	require.NotNil(t, lc)
	assert.Equal(t, "02", lc.Extension)
	assert.Nil(t, site.LaborCode("raytheon", "CN999", "01"))
	// Extension is part of the key and matches exactly.
	assert.Nil(t, site.LaborCode("raytheon", "CN100", "03"))
}
