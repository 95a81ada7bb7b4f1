package models

import (
	"strings"
	"time"
)

// Site belongs to exactly one team and owns the employees scheduled
// there along with the site-level labor and shift code tables.
//
// Employees are persisted in their own collection, not inside the team
// document, so the slice is excluded from marshalling and attached in
// memory for the duration of a run.
type Site struct {
	ID            string          `bson:"id" json:"id"`
	Code          string          `bson:"code" json:"code"`
	Title         string          `bson:"title" json:"title"`
	UtcDifference int             `bson:"utcdifference" json:"utcdifference"`
	WorkCodes     []WorkCode      `bson:"workcodes,omitempty" json:"workcodes,omitempty"`
	LaborCodes    []SiteLaborCode `bson:"laborcodes,omitempty" json:"laborcodes,omitempty"`
	Employees     []*Employee     `bson:"-" json:"employees,omitempty"`

	empIndex map[string]*Employee
}

// AddEmployee attaches an employee to the site and indexes it by its
// external employee id. When the id is already present the first
// attachment wins and false is returned; duplicate natural keys in the
// source data are a data-quality problem, not a merge case.
func (s *Site) AddEmployee(emp *Employee) bool {
	if s.empIndex == nil {
		s.empIndex = make(map[string]*Employee)
	}
	key := emp.CompanyInfo.EmployeeID
	if _, ok := s.empIndex[key]; ok {
		return false
	}
	s.Employees = append(s.Employees, emp)
	s.empIndex[key] = emp
	return true
}

// EmployeeByID resolves the external employee id to the attached
// employee, or nil when the site has no such employee.
func (s *Site) EmployeeByID(id string) *Employee {
	if s.empIndex == nil {
		s.ReindexEmployees()
	}
	return s.empIndex[id]
}

// ReindexEmployees rebuilds the natural-key index, keeping the first
// employee seen per id.
func (s *Site) ReindexEmployees() {
	s.empIndex = make(map[string]*Employee, len(s.Employees))
	for _, emp := range s.Employees {
		key := emp.CompanyInfo.EmployeeID
		if _, ok := s.empIndex[key]; !ok {
			s.empIndex[key] = emp
		}
	}
}

// ShiftStart returns the start hour for a shift code from the site's
// work code table, or -1 when the code is unknown.
func (s *Site) ShiftStart(code string) int {
	for i := range s.WorkCodes {
		if s.WorkCodes[i].Code == code {
			return s.WorkCodes[i].StartTime
		}
	}
	return -1
}

func (s *Site) LaborCode(company, chargeNumber, extension string) *SiteLaborCode {
	for i := range s.LaborCodes {
		if s.LaborCodes[i].Matches(company, chargeNumber, extension) {
			return &s.LaborCodes[i]
		}
	}
	return nil
}

// WorkCode describes a shift code the site uses: its display code, the
// hour the shift starts and whether the code records leave.
type WorkCode struct {
	Code      string `bson:"code" json:"code"`
	StartTime int    `bson:"starttime" json:"starttime"`
	IsLeave   bool   `bson:"isleave,omitempty" json:"isleave,omitempty"`
}

// SiteLaborCode is the contract metadata for one charge number at the
// site. Natural key: (company, charge number, extension).
type SiteLaborCode struct {
	Company       string    `bson:"company" json:"company"`
	ChargeNumber  string    `bson:"chargenumber" json:"chargenumber"`
	Extension     string    `bson:"extension" json:"extension"`
	Division      string    `bson:"division,omitempty" json:"division,omitempty"`
	Clin          string    `bson:"clin,omitempty" json:"clin,omitempty"`
	Slin          string    `bson:"slin,omitempty" json:"slin,omitempty"`
	Location      string    `bson:"location,omitempty" json:"location,omitempty"`
	Wbs           string    `bson:"wbs,omitempty" json:"wbs,omitempty"`
	Minimum       int       `bson:"minimum" json:"minimum"`
	NoEmployee    string    `bson:"noemployee,omitempty" json:"noemployee,omitempty"`
	ContractHours float64   `bson:"contracthours" json:"contracthours"`
	IsExercise    bool      `bson:"isexercise" json:"isexercise"`
	StartDate     time.Time `bson:"startdate" json:"startdate"`
	EndDate       time.Time `bson:"enddate" json:"enddate"`
}

func (lc *SiteLaborCode) Matches(company, chargeNumber, extension string) bool {
	return strings.EqualFold(lc.Company, company) &&
		lc.ChargeNumber == chargeNumber && lc.Extension == extension
}
