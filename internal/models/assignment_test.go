package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScheduleAssignsNextID(t *testing.T) {
	a := &Assignment{}
	first := a.AddSchedule(7)
	second := a.AddSchedule(7)
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, 1, second.ID)
	require.Len(t, second.Workdays, 7)
	for i, wd := range second.Workdays {
		assert.Equal(t, i, wd.ID)
	}
}

func TestTrimSchedulesSortsThenTruncates(t *testing.T) {
	a := &Assignment{Schedules: []Schedule{
		NewSchedule(2, 7), NewSchedule(0, 7), NewSchedule(1, 7),
	}}
	a.TrimSchedules(1)
	require.Len(t, a.Schedules, 1)
	assert.Equal(t, 0, a.Schedules[0].ID)
}

func TestSetDefaultWorkdays(t *testing.T) {
	a := &Assignment{}
	a.SetDefaultWorkdays("OPS")
	require.Len(t, a.Schedules, 1)
	for d := 1; d < 6; d++ {
		wd := a.Schedules[0].Workdays[d]
		assert.Equal(t, DefaultShiftCode, wd.Code)
		assert.Equal(t, DefaultShiftStart, wd.StartTime)
		assert.Equal(t, DefaultShiftHours, wd.Hours)
		assert.Equal(t, "OPS", wd.Workcenter)
	}
	assert.Empty(t, a.Schedules[0].Workdays[0].Code)
	assert.Empty(t, a.Schedules[0].Workdays[6].Code)
}

func TestAssignmentCovers(t *testing.T) {
	a := &Assignment{StartDate: date(2024, 1, 7), EndDate: date(2024, 6, 30)}
	assert.True(t, a.Covers(date(2024, 1, 7)))
	assert.True(t, a.Covers(date(2024, 6, 30)))
	assert.True(t, a.Covers(date(2024, 3, 15)))
	assert.False(t, a.Covers(date(2024, 1, 6)))
	assert.False(t, a.Covers(date(2024, 7, 1)))
}

func TestSetWorkdayClearsOnEmptyCode(t *testing.T) {
	sch := NewSchedule(0, 7)
	sch.SetWorkday(2, "OPS", 6, "D", 8)
	assert.Equal(t, "D", sch.Workdays[2].Code)

	sch.SetWorkday(2, "OPS", 6, "", 8)
	assert.Empty(t, sch.Workdays[2].Code)
	assert.Empty(t, sch.Workdays[2].Workcenter)
	assert.Zero(t, sch.Workdays[2].Hours)

	// Out-of-range slots are ignored rather than panicking.
	sch.SetWorkday(-1, "OPS", 6, "D", 8)
	sch.SetWorkday(7, "OPS", 6, "D", 8)
}

func TestScheduleWorkcenter(t *testing.T) {
	sch := NewSchedule(0, 7)
	assert.Equal(t, "", sch.Workcenter())
	sch.SetWorkday(3, "GEOINT", 22, "M", 8)
	assert.Equal(t, "GEOINT", sch.Workcenter())
}
