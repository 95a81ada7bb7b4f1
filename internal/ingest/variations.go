package ingest

import (
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// midsWorkcenter is forced onto mid-shift variations regardless of the
// employee's normal workcenter.
const midsWorkcenter = "GEOINT"

// dayOffPatterns decodes the compact day-off codes used by schedule
// variations. Each token names the consecutive weekdays that are OFF;
// the value is the set of off slots, Sunday = 0 through Saturday = 6.
// Two-letter tokens describe a five-day work week, three-letter tokens
// a compressed four-day week. Not every three-letter combination
// exists; the export tool only emits these fourteen.
var dayOffPatterns = map[string][]int{
	"SS": {0, 6},
	"SM": {0, 1},
	"MT": {1, 2},
	"TW": {2, 3},
	"WT": {3, 4},
	"TF": {4, 5},
	"FS": {5, 6},

	"FSS": {5, 6, 0},
	"SSM": {6, 0, 1},
	"SMT": {0, 1, 2},
	"MTW": {1, 2, 3},
	"TWT": {2, 3, 4},
	"WTF": {3, 4, 5},
	"TFS": {4, 5, 6},
}

func isDayOff(pattern string, day int) bool {
	for _, off := range dayOffPatterns[pattern] {
		if off == day {
			return true
		}
	}
	return false
}

// VariationReader reconciles temporary schedule variations, matching
// existing ones by (mids flag, start date, end date) and decoding the
// day-off pattern into the seven workday slots.
type VariationReader struct {
	site *models.Site
	lg   *zap.Logger
}

func NewVariationReader(site *models.Site, lg *zap.Logger) *VariationReader {
	return &VariationReader{site: site, lg: lg}
}

func (r *VariationReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		variationType, err := sheet.String(i, "VariationType")
		if err != nil {
			return err
		}
		code, err := sheet.String(i, "ShowCode")
		if err != nil {
			return err
		}
		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		startDate, err := sheet.Date(i, "StartDate")
		if err != nil {
			return err
		}
		endDate, err := sheet.Date(i, "EndDate")
		if err != nil {
			return err
		}
		daysOff, err := sheet.String(i, "DaysOff")
		if err != nil {
			return err
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}

		isMids := variationType == "MIDS"

		hours := 8.0
		if len(daysOff) == 3 {
			hours = 10.0
		}
		startTime := r.site.ShiftStart(code)

		workcenter := midsWorkcenter
		if !isMids {
			workcenter = ""
			if asgmt := emp.LastAssignment(); asgmt != nil && len(asgmt.Schedules) > 0 {
				workcenter = asgmt.Schedules[0].Workcenter()
			}
		}

		vari := emp.VariationFor(isMids, startDate, endDate)
		if vari == nil {
			vari = emp.AddVariation(r.site.Code, isMids, startDate, endDate)
		}
		for d := 0; d < 7; d++ {
			if isDayOff(daysOff, d) {
				vari.SetWorkday(d, "", 0, "", 0)
				continue
			}
			vari.SetWorkday(d, workcenter, startTime, code, hours)
		}
	}
	return nil
}
