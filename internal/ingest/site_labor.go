package ingest

import (
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// SiteLaborCodeReader reconciles the site-level labor code table,
// keyed by (company, WorkCode, Extension). The export file carries no
// company column; every row belongs to the contract company configured
// for the run.
type SiteLaborCodeReader struct {
	site       *models.Site
	company    string
	division   string
	cutoffYear int
	lg         *zap.Logger
}

func NewSiteLaborCodeReader(site *models.Site, company, division string, now time.Time,
	lg *zap.Logger) *SiteLaborCodeReader {
	return &SiteLaborCodeReader{
		site:       site,
		company:    company,
		division:   division,
		cutoffYear: now.Year() - 1,
		lg:         lg,
	}
}

func (r *SiteLaborCodeReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		year, err := sheet.Int(i, "FiscalYear")
		if err != nil {
			return err
		}
		chargeNumber, err := sheet.String(i, "WorkCode")
		if err != nil {
			return err
		}
		extension, err := sheet.String(i, "Extension")
		if err != nil {
			return err
		}
		clin, err := sheet.String(i, "CLIN")
		if err != nil {
			return err
		}
		slin, err := sheet.String(i, "SLIN")
		if err != nil {
			return err
		}
		location, err := sheet.String(i, "Location")
		if err != nil {
			return err
		}
		wbs, err := sheet.String(i, "WBS")
		if err != nil {
			return err
		}
		minimum, err := sheet.Int(i, "MinimumEmployees")
		if err != nil {
			return err
		}
		noEmployee, err := sheet.String(i, "NoEmployeeName")
		if err != nil {
			return err
		}
		hours, err := sheet.Float(i, "HoursPerEmployee")
		if err != nil {
			return err
		}
		isExercise, err := sheet.Bool(i, "ExerciseCode")
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

		if year < r.cutoffYear {
			continue
		}

		lc := r.site.LaborCode(r.company, chargeNumber, extension)
		if lc == nil {
			r.site.LaborCodes = append(r.site.LaborCodes, models.SiteLaborCode{
				Company:      r.company,
				ChargeNumber: chargeNumber,
				Extension:    extension,
				Division:     r.division,
			})
			lc = &r.site.LaborCodes[len(r.site.LaborCodes)-1]
		}
		lc.Clin = clin
		lc.Slin = slin
		lc.Location = location
		lc.Wbs = wbs
		lc.Minimum = minimum
		lc.NoEmployee = noEmployee
		lc.ContractHours = hours
		lc.IsExercise = isExercise
		lc.StartDate = startDate
		lc.EndDate = endDate
	}
	return nil
}
