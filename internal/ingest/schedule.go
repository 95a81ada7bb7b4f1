package ingest

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// ScheduleReader fills weekly workday slots inside an employee's
// latest assignment from the detailed schedule export. Rows are keyed
// by (EmployeeID, SortID) where SortID selects the rotation schedule.
type ScheduleReader struct {
	site *models.Site
	lg   *zap.Logger
}

func NewScheduleReader(site *models.Site, lg *zap.Logger) *ScheduleReader {
	return &ScheduleReader{site: site, lg: lg}
}

func (r *ScheduleReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		schID, err := sheet.Int(i, "SortID")
		if err != nil {
			return err
		}
		encoded, err := sheet.String(i, "Schedule")
		if err != nil {
			return err
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}
		asgmt := emp.LastAssignment()
		if asgmt == nil || schID < 0 {
			r.lg.Warn("schedule row without usable assignment",
				zap.String("employeeid", empID), zap.Int("sortid", schID))
			continue
		}

		for schID > len(asgmt.Schedules)-1 {
			asgmt.AddSchedule(7)
		}
		sort.Sort(models.BySchedule(asgmt.Schedules))
		workcenter := asgmt.Schedules[0].Workcenter()

		// The daily shift length follows from how many days carry a
		// code: a standard five-day week works 8-hour days, a
		// compressed week works 10.
		days := strings.Split(encoded, "|")
		worked := 0
		for _, token := range days {
			if token != "" {
				worked++
			}
		}
		hours := 8.0
		if worked < 5 {
			hours = 10.0
		}

		sch := &asgmt.Schedules[schID]
		for d, token := range days {
			// The export leads with Monday; the schedule slots lead
			// with Sunday.
			day := d - 1
			if day < 0 {
				day = 6
			}
			if token == "" {
				sch.SetWorkday(day, "", 0, "", 0)
				continue
			}
			sch.SetWorkday(day, workcenter, r.site.ShiftStart(token), token, hours)
		}
	}
	return nil
}
