package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/persistence"
	"github.com/spec-kit/attendance-service/internal/repository"
)

const statsCacheKey = "attendance:stats"

// Stats holds the dashboard counters.
type Stats struct {
	TotalEmployees  int64 `json:"totalEmployees"`
	TotalAttendance int64 `json:"totalAttendance"`
	TodayAttendance int64 `json:"todayAttendance"`
	PresentToday    int64 `json:"presentToday"`
}

// StatsService computes dashboard counters with a short-lived Redis
// cache in front. Cache failures are logged and ignored; the database
// is always the fallback.
type StatsService struct {
	employees repository.EmployeeRepository
	records   repository.AttendanceRepository
	cache     *persistence.Redis
	cacheTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewStatsService constructs the service.
func NewStatsService(employees repository.EmployeeRepository, records repository.AttendanceRepository, cache *persistence.Redis, cacheTTLSeconds int, logger *zap.Logger) *StatsService {
	return &StatsService{
		employees: employees,
		records:   records,
		cache:     cache,
		cacheTTL:  time.Duration(cacheTTLSeconds) * time.Second,
		logger:    logger,
		now:       time.Now,
	}
}

// GetStats returns the dashboard counters, served from cache when fresh.
func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	y, m, d := s.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	totalEmployees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAttendance, err := s.records.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	todayAttendance, err := s.records.CountForDate(ctx, today)
	if err != nil {
		return nil, err
	}
	presentToday, err := s.records.CountForDateWithStatus(ctx, today, domain.StatusHadir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalEmployees:  totalEmployees,
		TotalAttendance: totalAttendance,
		TodayAttendance: todayAttendance,
		PresentToday:    presentToday,
	}
	s.toCache(ctx, stats)
	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) *Stats {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *StatsService) toCache(ctx context.Context, stats *Stats) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, statsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("stats cache write failed", zap.Error(err))
	}
}
