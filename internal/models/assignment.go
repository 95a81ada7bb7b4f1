package models

import (
	"sort"
	"time"
)

// Workday is one of the seven slots in a weekly schedule. A zero-value
// slot is a day off.
type Workday struct {
	ID         int     `bson:"id" json:"id"`
	Workcenter string  `bson:"workcenter" json:"workcenter"`
	Code       string  `bson:"code" json:"code"`
	StartTime  int     `bson:"starttime" json:"starttime"`
	Hours      float64 `bson:"hours" json:"hours"`
}

func (wd *Workday) Clear() {
	wd.Workcenter = ""
	wd.Code = ""
	wd.StartTime = 0
	wd.Hours = 0.0
}

// Schedule is a fixed week of seven workday slots, Sunday = 0 through
// Saturday = 6.
type Schedule struct {
	ID       int       `bson:"id" json:"id"`
	Workdays []Workday `bson:"workdays" json:"workdays"`
}

func NewSchedule(id, days int) Schedule {
	sch := Schedule{ID: id, Workdays: make([]Workday, days)}
	for i := range sch.Workdays {
		sch.Workdays[i].ID = i
	}
	return sch
}

// SetWorkday fills one slot; an empty code clears it.
func (sch *Schedule) SetWorkday(day int, workcenter string, start int, code string, hours float64) {
	if day < 0 || day >= len(sch.Workdays) {
		return
	}
	if code == "" {
		sch.Workdays[day].Clear()
		return
	}
	sch.Workdays[day].Workcenter = workcenter
	sch.Workdays[day].StartTime = start
	sch.Workdays[day].Code = code
	sch.Workdays[day].Hours = hours
}

// Workcenter returns the first populated workcenter of the week, used
// when a derived schedule inherits the employee's normal workcenter.
func (sch *Schedule) Workcenter() string {
	for i := range sch.Workdays {
		if sch.Workdays[i].Workcenter != "" {
			return sch.Workdays[i].Workcenter
		}
	}
	return ""
}

type BySchedule []Schedule

func (s BySchedule) Len() int           { return len(s) }
func (s BySchedule) Less(i, j int) bool { return s[i].ID < s[j].ID }
func (s BySchedule) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Assignment is a contiguous dated work placement at one site. A
// rotation of zero means the single schedule repeats every week;
// a positive rotation cycles through the schedules by offset.
type Assignment struct {
	ID             int        `bson:"id" json:"id"`
	Site           string     `bson:"site" json:"site"`
	JobTitle       string     `bson:"jobtitle,omitempty" json:"jobtitle,omitempty"`
	StartDate      time.Time  `bson:"startdate" json:"startdate"`
	EndDate        time.Time  `bson:"enddate" json:"enddate"`
	DaysInRotation int        `bson:"daysinrotation" json:"daysinrotation"`
	Schedules      []Schedule `bson:"schedules,omitempty" json:"schedules,omitempty"`
}

// AddSchedule appends an empty schedule of the given length and
// returns it.
func (a *Assignment) AddSchedule(days int) *Schedule {
	next := 0
	for i := range a.Schedules {
		if a.Schedules[i].ID >= next {
			next = a.Schedules[i].ID + 1
		}
	}
	a.Schedules = append(a.Schedules, NewSchedule(next, days))
	return &a.Schedules[len(a.Schedules)-1]
}

// TrimSchedules sorts the schedules and drops everything past the
// first n.
func (a *Assignment) TrimSchedules(n int) {
	sort.Sort(BySchedule(a.Schedules))
	if len(a.Schedules) > n {
		a.Schedules = a.Schedules[:n]
	}
}

// SetDefaultWorkdays fills the single weekly schedule with the default
// Monday through Friday day shift at the given workcenter.
func (a *Assignment) SetDefaultWorkdays(workcenter string) {
	if len(a.Schedules) == 0 {
		a.AddSchedule(7)
	}
	for d := 1; d < 6; d++ {
		a.Schedules[0].SetWorkday(d, workcenter, DefaultShiftStart, DefaultShiftCode, DefaultShiftHours)
	}
}

// Covers reports whether the date falls inside the assignment window.
func (a *Assignment) Covers(date time.Time) bool {
	return !a.StartDate.After(date) && !a.EndDate.Before(date)
}

// Default shift applied to roster-derived schedules until the detailed
// schedule export refines them.
const (
	DefaultShiftCode  = "D"
	DefaultShiftStart = 6
	DefaultShiftHours = 8.0
)

type ByAssignment []Assignment

func (a ByAssignment) Len() int { return len(a) }
func (a ByAssignment) Less(i, j int) bool {
	if a[i].StartDate.Equal(a[j].StartDate) {
		return a[i].ID < a[j].ID
	}
	return a[i].StartDate.Before(a[j].StartDate)
}
func (a ByAssignment) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

// Variation is a temporary override schedule for a bounded date range,
// independent of the employee's assignment chain. Natural key:
// (IsMids, StartDate, EndDate).
type Variation struct {
	ID        int       `bson:"id" json:"id"`
	Site      string    `bson:"site" json:"site"`
	IsMids    bool      `bson:"mids" json:"mids"`
	StartDate time.Time `bson:"startdate" json:"startdate"`
	EndDate   time.Time `bson:"enddate" json:"enddate"`
	Schedule  Schedule  `bson:"schedule" json:"schedule"`
}

func (v *Variation) Matches(isMids bool, start, end time.Time) bool {
	return v.IsMids == isMids && v.StartDate.Equal(start) && v.EndDate.Equal(end)
}

func (v *Variation) SetWorkday(day int, workcenter string, start int, code string, hours float64) {
	v.Schedule.SetWorkday(day, workcenter, start, code, hours)
}
