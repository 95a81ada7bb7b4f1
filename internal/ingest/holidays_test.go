package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

var holidayHeader = []string{"hYear", "Code", "Company", "ActualDate"}

func newHolidayTeam() *models.Team {
	team := models.NewTeam("dfs", "District Flight Schedulers")
	co := team.AddCompany("raytheon", "Raytheon Technologies", "manual")
	co.AddHoliday("NY", "New Year's Day")
	co.AddHoliday("XMAS", "Christmas Day")
	return team
}

func TestHolidaySchedulePopulatesObservedDates(t *testing.T) {
	team := newHolidayTeam()
	reader := NewHolidayScheduleReader(team, 9, testNow, zap.NewNop())

	sheet := NewSheet("holidayschedule", holidayHeader,
		// Company and code matching is case-insensitive.
		[]string{"2025", "ny", "Raytheon", "2025-01-01"},
		[]string{"2024", "NY", "raytheon", "2024-01-01"},
		[]string{"2024", "XMAS", "raytheon", "2024-12-25"},
		// Pre-cutoff, unknown company and unknown code rows drop out.
		[]string{"2022", "NY", "raytheon", "2022-01-01"},
		[]string{"2025", "NY", "boeing", "2025-01-01"},
		[]string{"2025", "THX", "raytheon", "2025-11-27"})
	require.NoError(t, reader.Process(sheet))

	co := team.CompanyByCode("raytheon")
	ny := co.HolidayByCode("NY")
	require.Len(t, ny.ActualDates, 2)
	// The source date shifts by the site's UTC difference and the list
	// stays sorted.
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), ny.ActualDates[0])
	assert.Equal(t, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), ny.ActualDates[1])

	xmas := co.HolidayByCode("XMAS")
	require.Len(t, xmas.ActualDates, 1)
}

func TestHolidayScheduleRerunDoesNotAccumulate(t *testing.T) {
	team := newHolidayTeam()
	reader := NewHolidayScheduleReader(team, 9, testNow, zap.NewNop())

	sheet := NewSheet("holidayschedule", holidayHeader,
		[]string{"2025", "NY", "raytheon", "2025-01-01"})
	require.NoError(t, reader.Process(sheet))
	require.NoError(t, reader.Process(sheet))

	ny := team.CompanyByCode("raytheon").HolidayByCode("NY")
	assert.Len(t, ny.ActualDates, 1)
}

func TestHolidayScheduleClearsStaleDates(t *testing.T) {
	team := newHolidayTeam()
	ny := team.CompanyByCode("raytheon").HolidayByCode("NY")
	ny.AddActualDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	reader := NewHolidayScheduleReader(team, 9, testNow, zap.NewNop())

	sheet := NewSheet("holidayschedule", holidayHeader,
		[]string{"2025", "NY", "raytheon", "2025-01-01"})
	require.NoError(t, reader.Process(sheet))

	ny = team.CompanyByCode("raytheon").HolidayByCode("NY")
	require.Len(t, ny.ActualDates, 1)
	assert.Equal(t, time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), ny.ActualDates[0])
}
