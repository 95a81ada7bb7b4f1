package ingest

import (
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// EmpLaborCodeReader grants employees their charge numbers, keyed by
// (EmployeeID, WorkCode, Extension). Grants are create-only; existing
// grants are left untouched. The validity window is bounded by the
// matching site labor code and by the end of the employee's last
// assignment, whichever closes first.
type EmpLaborCodeReader struct {
	site       *models.Site
	cutoffYear int
	lg         *zap.Logger
}

func NewEmpLaborCodeReader(site *models.Site, now time.Time, lg *zap.Logger) *EmpLaborCodeReader {
	return &EmpLaborCodeReader{site: site, cutoffYear: now.Year() - 1, lg: lg}
}

func (r *EmpLaborCodeReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		year, err := sheet.Int(i, "FiscalYear")
		if err != nil {
			return err
		}
		empID := sheet.OptionalString(i, "EmployeeID")
		if empID == "" || year < r.cutoffYear {
			continue
		}
		chargeNumber, err := sheet.String(i, "WorkCode")
		if err != nil {
			return err
		}
		extension, err := sheet.String(i, "Extension")
		if err != nil {
			return err
		}

		var siteLabor *models.SiteLaborCode
		for l := range r.site.LaborCodes {
			if r.site.LaborCodes[l].ChargeNumber == chargeNumber &&
				r.site.LaborCodes[l].Extension == extension {
				siteLabor = &r.site.LaborCodes[l]
			}
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			continue
		}

		lc := models.EmployeeLaborCode{
			CompanyCode:  emp.CompanyInfo.CompanyCode,
			ChargeNumber: chargeNumber,
			Extension:    extension,
		}
		if siteLabor != nil {
			lc.StartDate = siteLabor.StartDate
			lc.EndDate = siteLabor.EndDate
			if last := emp.LastAssignment(); last != nil && last.EndDate.Before(siteLabor.EndDate) {
				lc.EndDate = last.EndDate
			}
		}
		emp.AddLaborCode(lc)
	}
	return nil
}
