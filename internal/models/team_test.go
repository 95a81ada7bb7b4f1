package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeam(t *testing.T) {
	team := NewTeam("dfs", "District Flight Schedulers")
	assert.NotEmpty(t, team.ID)
	assert.Equal(t, "dfs", team.Code)
	assert.False(t, team.DateCreated.IsZero())
}

func TestAddCompanyMergesByCode(t *testing.T) {
	team := NewTeam("dfs", "District Flight Schedulers")
	team.AddCompany("raytheon", "Raytheon", "manual")
	co := team.AddCompany("Raytheon", "Raytheon Technologies", "adp")

	require.Len(t, team.Companies, 1)
	assert.Equal(t, "Raytheon Technologies", co.Title)
	assert.Equal(t, "adp", co.TimeCardSystem)
	assert.Same(t, &team.Companies[0], team.CompanyByCode("RAYTHEON"))
	assert.Nil(t, team.CompanyByCode("boeing"))
}

func TestAddSiteAndUpdateSite(t *testing.T) {
	team := NewTeam("dfs", "District Flight Schedulers")
	team.AddSite("dgsc", "District Scheduling Center", 9)
	require.Len(t, team.Sites, 1)

	// Same code merges.
	team.AddSite("DGSC", "DGSC", 9)
	require.Len(t, team.Sites, 1)
	assert.Equal(t, "DGSC", team.Sites[0].Title)

	mutated := *team.SiteByCode("dgsc")
	mutated.LaborCodes = []SiteLaborCode{{Company: "raytheon", ChargeNumber: "CN100"}}
	assert.True(t, team.UpdateSite(&mutated))
	assert.Len(t, team.Sites[0].LaborCodes, 1)

	other := Site{Code: "other"}
	assert.False(t, team.UpdateSite(&other))
}

func TestAddHolidayAndActualDates(t *testing.T) {
	team := NewTeam("dfs", "District Flight Schedulers")
	co := team.AddCompany("raytheon", "Raytheon", "manual")
	co.AddHoliday("NY", "New Year's Day")
	co.AddHoliday("ny", "New Year")
	require.Len(t, co.Holidays, 1)
	assert.Equal(t, "New Year", co.Holidays[0].Name)

	hol := co.HolidayByCode("NY")
	require.NotNil(t, hol)
	hol.AddActualDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	hol.AddActualDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, hol.ActualDates, 2)
	assert.True(t, hol.ActualDates[0].Before(hol.ActualDates[1]))

	hol.ClearActualDates()
	assert.Empty(t, hol.ActualDates)
}

func TestAddDisplayCodeOrder(t *testing.T) {
	team := NewTeam("dfs", "District Flight Schedulers")
	team.AddDisplayCode("D", "Day Shift", "ffffff", "000000", false)
	team.AddDisplayCode("V", "Vacation", "00ff00", "000000", true)
	dc := team.AddDisplayCode("D", "Days", "ffffff", "000000", false)

	require.Len(t, team.DisplayCodes, 2)
	assert.Equal(t, "Days", dc.Name)
	assert.Equal(t, 0, team.DisplayCodes[0].Order)
	assert.Equal(t, 1, team.DisplayCodes[1].Order)
}
