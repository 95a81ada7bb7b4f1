package models

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Employee is the scheduling record for one person at a site. The
// external natural key is (CompanyInfo.EmployeeID, CompanyInfo
// .CompanyCode); the ObjectID is the storage surrogate assigned on
// first insert.
type Employee struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TeamID      string              `bson:"team" json:"team"`
	SiteID      string              `bson:"site" json:"site"`
	Email       string              `bson:"email" json:"email"`
	Name        EmployeeName        `bson:"name" json:"name"`
	CompanyInfo CompanyInfo         `bson:"companyinfo" json:"companyinfo"`
	Roles       []string            `bson:"roles,omitempty" json:"roles,omitempty"`
	Creds       Credentials         `bson:"creds" json:"creds"`
	Assignments []Assignment        `bson:"assignments,omitempty" json:"assignments,omitempty"`
	Variations  []Variation         `bson:"variations,omitempty" json:"variations,omitempty"`
	Balances    []AnnualLeave       `bson:"balance,omitempty" json:"balance,omitempty"`
	Leaves      []LeaveDay          `bson:"leaves,omitempty" json:"leaves,omitempty"`
	LaborCodes  []EmployeeLaborCode `bson:"laborCodes,omitempty" json:"laborCodes,omitempty"`
	Work        []Work              `bson:"-" json:"work,omitempty"`
}

type EmployeeName struct {
	First  string `bson:"first" json:"first"`
	Middle string `bson:"middle" json:"middle"`
	Last   string `bson:"last" json:"last"`
}

// CompanyInfo carries the company-side identity for the employee: the
// external employee id plus payroll attributes.
type CompanyInfo struct {
	CompanyCode string `bson:"company" json:"company"`
	EmployeeID  string `bson:"employeeid" json:"employeeid"`
	AlternateID string `bson:"alternateid,omitempty" json:"alternateid,omitempty"`
	Rank        string `bson:"rank,omitempty" json:"rank,omitempty"`
	Division    string `bson:"division,omitempty" json:"division,omitempty"`
	CostCenter  string `bson:"costcenter,omitempty" json:"costcenter,omitempty"`
}

type Credentials struct {
	PasswordHash string `bson:"passwordhash" json:"-"`
	MustChange   bool   `bson:"mustchange" json:"mustchange"`
}

// SetInitialPassword hashes a temporary password and flags the account
// for a forced change on first login.
func (c *Credentials) SetInitialPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	c.MustChange = true
	return nil
}

// AnnualLeave is the leave balance for one year.
type AnnualLeave struct {
	Year      int     `bson:"year" json:"year"`
	Annual    float64 `bson:"annual" json:"annual"`
	Carryover float64 `bson:"carryover" json:"carryover"`
}

type ByBalance []AnnualLeave

func (b ByBalance) Len() int           { return len(b) }
func (b ByBalance) Less(i, j int) bool { return b[i].Year < b[j].Year }
func (b ByBalance) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// LeaveDay is one day of taken or scheduled leave. Natural key:
// (LeaveDate, Code).
type LeaveDay struct {
	ID        int       `bson:"id" json:"id"`
	LeaveDate time.Time `bson:"leavedate" json:"leavedate"`
	Code      string    `bson:"code" json:"code"`
	Hours     float64   `bson:"hours" json:"hours"`
	Status    string    `bson:"status" json:"status"`
}

type ByLeaveDay []LeaveDay

func (l ByLeaveDay) Len() int { return len(l) }
func (l ByLeaveDay) Less(i, j int) bool {
	if l[i].LeaveDate.Equal(l[j].LeaveDate) {
		return l[i].Code < l[j].Code
	}
	return l[i].LeaveDate.Before(l[j].LeaveDate)
}
func (l ByLeaveDay) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

// EmployeeLaborCode grants the employee a charge number for a bounded
// validity window. Natural key: (ChargeNumber, Extension).
type EmployeeLaborCode struct {
	CompanyCode  string    `bson:"company" json:"company"`
	ChargeNumber string    `bson:"chargenumber" json:"chargenumber"`
	Extension    string    `bson:"extension" json:"extension"`
	StartDate    time.Time `bson:"startdate" json:"startdate"`
	EndDate      time.Time `bson:"enddate" json:"enddate"`
}

// CurrentSite returns the site code of the last assignment overlapping
// the window, or empty when the employee has no assignment there.
func (e *Employee) CurrentSite(start, end time.Time) string {
	answer := ""
	for i := range e.Assignments {
		a := &e.Assignments[i]
		if !a.StartDate.After(end) && !a.EndDate.Before(start) {
			answer = a.Site
		}
	}
	return answer
}

// LastAssignment returns the assignment with the latest start date,
// sorting the list in place, or nil when there are none.
func (e *Employee) LastAssignment() *Assignment {
	if len(e.Assignments) == 0 {
		return nil
	}
	sort.Sort(ByAssignment(e.Assignments))
	return &e.Assignments[len(e.Assignments)-1]
}

// EnsureAssignments sorts the assignment list, trims the tail past n
// and appends empty assignments until exactly n remain. The roster
// export is authoritative, so the windows are fully re-derived on each
// run.
func (e *Employee) EnsureAssignments(n int) {
	sort.Sort(ByAssignment(e.Assignments))
	if len(e.Assignments) > n {
		e.Assignments = e.Assignments[:n]
	}
	for len(e.Assignments) < n {
		next := 0
		for i := range e.Assignments {
			if e.Assignments[i].ID >= next {
				next = e.Assignments[i].ID + 1
			}
		}
		e.Assignments = append(e.Assignments, Assignment{ID: next})
	}
}

// UpdateAnnualLeave overwrites the balance for the year or appends a
// new one.
func (e *Employee) UpdateAnnualLeave(year int, annual, carry float64) {
	for i := range e.Balances {
		if e.Balances[i].Year == year {
			e.Balances[i].Annual = annual
			e.Balances[i].Carryover = carry
			return
		}
	}
	e.Balances = append(e.Balances, AnnualLeave{Year: year, Annual: annual, Carryover: carry})
	sort.Sort(ByBalance(e.Balances))
}

// SetLeave overwrites hours and status on the leave day matching
// (date, code) or appends a new one.
func (e *Employee) SetLeave(date time.Time, code, status string, hours float64) {
	max := 0
	for i := range e.Leaves {
		lv := &e.Leaves[i]
		if lv.LeaveDate.Equal(date) && strings.EqualFold(lv.Code, code) {
			lv.Hours = hours
			lv.Status = status
			return
		}
		if lv.ID > max {
			max = lv.ID
		}
	}
	e.Leaves = append(e.Leaves, LeaveDay{
		ID:        max + 1,
		LeaveDate: date,
		Code:      code,
		Hours:     hours,
		Status:    status,
	})
	sort.Sort(ByLeaveDay(e.Leaves))
}

// SetWork overwrites hours on the work entry matching the composite
// key (date, company, charge number, extension) or appends a new one.
func (e *Employee) SetWork(date time.Time, company, chargeNumber, extension string, hours float64) {
	for i := range e.Work {
		wk := &e.Work[i]
		if wk.Matches(date, company, chargeNumber, extension) {
			wk.Hours = hours
			return
		}
	}
	e.Work = append(e.Work, Work{
		EmployeeID:   e.ID,
		DateWorked:   date,
		CompanyCode:  company,
		ChargeNumber: chargeNumber,
		Extension:    extension,
		Hours:        hours,
	})
}

func (e *Employee) HasLaborCode(chargeNumber, extension string) bool {
	for i := range e.LaborCodes {
		if e.LaborCodes[i].ChargeNumber == chargeNumber &&
			e.LaborCodes[i].Extension == extension {
			return true
		}
	}
	return false
}

func (e *Employee) AddLaborCode(lc EmployeeLaborCode) {
	if e.HasLaborCode(lc.ChargeNumber, lc.Extension) {
		return
	}
	e.LaborCodes = append(e.LaborCodes, lc)
}

// VariationFor finds the variation matching the natural key, or nil.
func (e *Employee) VariationFor(isMids bool, start, end time.Time) *Variation {
	for i := range e.Variations {
		if e.Variations[i].Matches(isMids, start, end) {
			return &e.Variations[i]
		}
	}
	return nil
}

// AddVariation appends an empty seven-day variation for the range and
// returns it.
func (e *Employee) AddVariation(site string, isMids bool, start, end time.Time) *Variation {
	max := 0
	for i := range e.Variations {
		if e.Variations[i].ID > max {
			max = e.Variations[i].ID
		}
	}
	e.Variations = append(e.Variations, Variation{
		ID:        max + 1,
		Site:      site,
		IsMids:    isMids,
		StartDate: start,
		EndDate:   end,
		Schedule:  NewSchedule(0, 7),
	})
	return &e.Variations[len(e.Variations)-1]
}
