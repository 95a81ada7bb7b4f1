package ingest

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

// initialPassword is seeded on newly created accounts; the scheduler
// forces a change on first login.
const initialPassword = "InitialPassword"

// RosterReader merges workforce roster rows into the site's employee
// set. Each roster snapshot is authoritative: assignment windows are
// re-derived, not incrementally merged, so running the same file twice
// is idempotent.
type RosterReader struct {
	site   *models.Site
	teamID string
	cutoff time.Time
	lg     *zap.Logger
}

func NewRosterReader(site *models.Site, teamID string, now time.Time, lg *zap.Logger) *RosterReader {
	return &RosterReader{site: site, teamID: teamID, cutoff: cutoffDate(now), lg: lg}
}

func (r *RosterReader) Process(sheet *Sheet) error {
	for i := 0; i < sheet.Rows(); i++ {
		endDate, err := sheet.Date(i, "EndDate")
		if err != nil {
			return err
		}
		rawStart, err := sheet.Date(i, "StartDate")
		if err != nil {
			return err
		}
		startDate := startOfWeek(rawStart)

		// Skip employees who left before the cutoff year.
		if !endDate.Equal(baseDate) && endDate.Before(r.cutoff) {
			continue
		}

		empID, err := sheet.String(i, "EmployeeID")
		if err != nil {
			return err
		}
		lastName, err := sheet.String(i, "LastName")
		if err != nil {
			return err
		}
		firstName, err := sheet.String(i, "FirstName")
		if err != nil {
			return err
		}
		company, err := sheet.String(i, "Company")
		if err != nil {
			return err
		}
		workcenter, err := sheet.String(i, "WorkCenter")
		if err != nil {
			return err
		}
		changeFreq, err := sheet.Int(i, "ScheduleChangeFreq")
		if err != nil {
			return err
		}
		rawPivot, err := sheet.Date(i, "ScheduleChangeDate")
		if err != nil {
			return err
		}
		pivotDate := nextSunday(rawPivot)

		middleName := sheet.OptionalString(i, "MiddleName")
		jobTitle := sheet.OptionalString(i, "JobTitle")
		altID := sheet.OptionalString(i, "PeoplesoftID")
		rank := sheet.OptionalString(i, "LaborCategory")
		division := sheet.OptionalString(i, "SubCompany")
		costCenter := sheet.OptionalString(i, "CostCenter")

		if endDate.Equal(baseDate) {
			endDate = maxDate
		}

		emp := r.site.EmployeeByID(empID)
		if emp == nil {
			// The natural key must be set before the site indexes the
			// employee.
			emp = &models.Employee{
				TeamID: r.teamID,
				SiteID: r.site.Code,
				Email: strings.ToLower(firstName) + "." + strings.ToLower(lastName) +
					"@" + strings.ToLower(company) + ".com",
				Roles: []string{"Employee"},
				CompanyInfo: models.CompanyInfo{
					CompanyCode: strings.ToLower(company),
					EmployeeID:  empID,
				},
			}
			if err := emp.Creds.SetInitialPassword(initialPassword); err != nil {
				return fmt.Errorf("seed credentials for %s: %w", empID, err)
			}
			if !r.site.AddEmployee(emp) {
				// Shadowed by an earlier row with the same id.
				r.lg.Warn("duplicate employee id in roster; first row wins",
					zap.String("employeeid", empID))
				continue
			}
			r.lg.Info("roster: new employee",
				zap.String("employeeid", empID),
				zap.String("name", lastName+", "+firstName))
		}

		emp.Name.Last = lastName
		emp.Name.First = firstName
		emp.Name.Middle = middleName
		emp.CompanyInfo.CompanyCode = strings.ToLower(company)
		emp.CompanyInfo.EmployeeID = empID
		emp.CompanyInfo.AlternateID = altID
		emp.CompanyInfo.Rank = rank
		emp.CompanyInfo.Division = division
		emp.CompanyInfo.CostCenter = costCenter

		r.applyWindows(emp, startDate, endDate, pivotDate, changeFreq, jobTitle, workcenter)
	}
	return nil
}

// applyWindows re-derives the employee's assignment windows from the
// roster row. A rotation change splits the span at the pivot date
// unless the pivot falls after the end date, in which case the change
// never takes effect.
func (r *RosterReader) applyWindows(emp *models.Employee, start, end, pivot time.Time,
	changeFreq int, jobTitle, workcenter string) {
	if changeFreq > 0 && !pivot.After(end) {
		emp.EnsureAssignments(2)
		r.setWindow(&emp.Assignments[0], start, dayBefore(pivot), 0, jobTitle, workcenter)
		r.setWindow(&emp.Assignments[1], pivot, end, changeFreq, jobTitle, workcenter)
		return
	}
	emp.EnsureAssignments(1)
	r.setWindow(&emp.Assignments[0], start, end, 0, jobTitle, workcenter)
}

func (r *RosterReader) setWindow(a *models.Assignment, start, end time.Time,
	rotation int, jobTitle, workcenter string) {
	a.StartDate = start
	a.EndDate = end
	a.Site = r.site.Code
	a.JobTitle = jobTitle
	a.DaysInRotation = rotation
	a.TrimSchedules(1)
	a.SetDefaultWorkdays(workcenter)
}
