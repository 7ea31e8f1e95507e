package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	employees := newFakeEmployeeRepo()
	records := newFakeAttendanceRepo()

	seedEmployee(t, employees, "budi@example.com", "rahasia123", "NIP-001")
	seedEmployee(t, employees, "siti@example.com", "rahasia123", "NIP-002")

	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	require.NoError(t, records.Create(ctx, &domain.AttendanceRecord{EmployeeID: 1, Status: domain.StatusHadir, Date: today}))
	require.NoError(t, records.Create(ctx, &domain.AttendanceRecord{EmployeeID: 2, Status: domain.StatusIzin, Date: today}))
	require.NoError(t, records.Create(ctx, &domain.AttendanceRecord{EmployeeID: 1, Status: domain.StatusHadir, Date: yesterday}))

	// nil cache: every call hits the repositories
	svc := NewStatsService(employees, records, nil, 30, zap.NewNop())
	svc.now = func() time.Time { return now }

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalEmployees)
	assert.Equal(t, int64(3), stats.TotalAttendance)
	assert.Equal(t, int64(2), stats.TodayAttendance)
	assert.Equal(t, int64(1), stats.PresentToday)
}
