package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/antonerne/dgsc-reader/internal/models"
)

var annualLeaveHeader = []string{"EmployeeID", "hYear", "Annual", "CarryOver"}

func TestAnnualLeaveMergesBalances(t *testing.T) {
	site := newTestSite()
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewAnnualLeaveReader(site, testNow, zap.NewNop())

	sheet := NewSheet("annualleave", annualLeaveHeader,
		[]string{"E100", "2025", "128", "0"},
		[]string{"E100", "2024", "120", "10.5"},
		[]string{"E100", "2023", "96", "4"},
		[]string{"E999", "2024", "120", "0"})
	require.NoError(t, reader.Process(sheet))

	// 2023 falls before the cutoff year; the unknown employee is
	// ignored. Balances come out sorted by year.
	require.Len(t, emp.Balances, 2)
	assert.Equal(t, models.AnnualLeave{Year: 2024, Annual: 120, Carryover: 10.5}, emp.Balances[0])
	assert.Equal(t, models.AnnualLeave{Year: 2025, Annual: 128, Carryover: 0}, emp.Balances[1])
}

func TestAnnualLeaveRerunOverwrites(t *testing.T) {
	site := newTestSite()
	emp := newTestEmployee(site, "E100", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	reader := NewAnnualLeaveReader(site, testNow, zap.NewNop())

	first := NewSheet("annualleave", annualLeaveHeader,
		[]string{"E100", "2024", "120", "10.5"})
	require.NoError(t, reader.Process(first))

	second := NewSheet("annualleave", annualLeaveHeader,
		[]string{"E100", "2024", "130", "5"})
	require.NoError(t, reader.Process(second))

	require.Len(t, emp.Balances, 1)
	assert.Equal(t, models.AnnualLeave{Year: 2024, Annual: 130, Carryover: 5}, emp.Balances[0])
}
