package ingest

import (
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// HolidayScheduleReader reprojects the observed holiday calendar per
// company. All previously recorded dates are cleared up front, so a
// run never accumulates duplicates. Source dates are shifted by the
// site's UTC difference to land on the local calendar day.
type HolidayScheduleReader struct {
	team       *models.Team
	utcDiff    int
	cutoffYear int
	lg         *zap.Logger
}

func NewHolidayScheduleReader(team *models.Team, utcDiff int, now time.Time,
	lg *zap.Logger) *HolidayScheduleReader {
	return &HolidayScheduleReader{team: team, utcDiff: utcDiff, cutoffYear: now.Year() - 1, lg: lg}
}

func (r *HolidayScheduleReader) Process(sheet *Sheet) error {
	for c := range r.team.Companies {
		for h := range r.team.Companies[c].Holidays {
			r.team.Companies[c].Holidays[h].ClearActualDates()
		}
	}

	for i := 0; i < sheet.Rows(); i++ {
		year, err := sheet.Int(i, "hYear")
		if err != nil {
			return err
		}
		code, err := sheet.String(i, "Code")
		if err != nil {
			return err
		}
		company, err := sheet.String(i, "Company")
		if err != nil {
			return err
		}
		date, err := sheet.Date(i, "ActualDate")
		if err != nil {
			return err
		}
		if year < r.cutoffYear {
			continue
		}

		co := r.team.CompanyByCode(company)
		if co == nil {
			continue
		}
		hol := co.HolidayByCode(code)
		if hol == nil {
			continue
		}
		hol.AddActualDate(date.Add(time.Duration(r.utcDiff) * time.Hour))
	}
	return nil
}
