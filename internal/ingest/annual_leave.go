package ingest

import (
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// AnnualLeaveReader reconciles per-year leave balances, keyed by
// (EmployeeID, hYear). Only the previous and current years are
// considered.
type AnnualLeaveReader struct {
	site       *models.Site
	cutoffYear int
	lg         *zap.Logger
}

func NewAnnualLeaveReader(site *models.Site, now time.Time, lg *zap.Logger) *AnnualLeaveReader {
	return &AnnualLeaveReader{site: site, cutoffYear: now.Year() - 1, lg: lg}
}

func (r *AnnualLeaveReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		year, err := sheet.Int(i, "hYear")
		if err != nil {
			return err
		}
		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		annual, err := sheet.Float(i, "Annual")
		if err != nil {
			return err
		}
		carry, err := sheet.Float(i, "CarryOver")
		if err != nil {
			return err
		}

		if year < r.cutoffYear {
			continue
		}
		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}
		emp.UpdateAnnualLeave(year, annual, carry)
	}
	return nil
}
