package ingest

import (
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// WorkReader reconciles labor charge entries, keyed by (EmployeeID,
// DateWorked, company, ChargeNumber, Extension). A later row for the
// same key overwrites the hours.
type WorkReader struct {
	site   *models.Site
	cutoff time.Time
	lg     *zap.Logger
}

func NewWorkReader(site *models.Site, now time.Time, lg *zap.Logger) *WorkReader {
	return &WorkReader{site: site, cutoff: cutoffDate(now), lg: lg}
}

func (r *WorkReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		date, err := sheet.Date(i, "DateWorked")
		if err != nil {
			return err
		}
		if date.Before(r.cutoff) {
			continue
		}
		chargeNumber, err := sheet.String(i, "ChargeNumber")
		if err != nil {
			return err
		}
		extension := sheet.OptionalString(i, "Extension")
		hours, err := sheet.Float(i, "Hours")
		if err != nil {
			return err
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}
		emp.SetWork(date, emp.CompanyInfo.CompanyCode, chargeNumber, extension, hours)
	}
	return nil
}
