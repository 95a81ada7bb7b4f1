package ingest

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// LeavesReader reconciles taken leave days, keyed by (EmployeeID,
// DateTaken, code). Rows without a leave code are skipped, and the
// various holiday and floating-holiday export codes collapse to "H".
type LeavesReader struct {
	site   *models.Site
	cutoff time.Time
	lg     *zap.Logger
}

func NewLeavesReader(site *models.Site, now time.Time, lg *zap.Logger) *LeavesReader {
	return &LeavesReader{site: site, cutoff: cutoffDate(now), lg: lg}
}

func (r *LeavesReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		date, err := sheet.Date(i, "DateTaken")
		if err != nil {
			return err
		}
		code := sheet.OptionalString(i, "LeaveCode")
		if code == "" || date.Before(r.cutoff) {
			continue
		}
		lower := strings.ToLower(code)
		if strings.HasPrefix(lower, "h") || strings.HasPrefix(lower, "f") {
			code = "H"
		}
		hours, err := sheet.Float(i, "Hours")
		if err != nil {
			return err
		}
		status, err := sheet.String(i, "Status")
		if err != nil {
			return err
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}
		emp.SetLeave(date, code, status, hours)
	}
	return nil
}
