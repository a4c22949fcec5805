package service

import (
	"context"
	"time"

	"github.com/limbo/dailyos/internal/stats"
)

type TimeTrackingService struct {
	repos *Repositories
}

func NewTimeTrackingService(repos *Repositories) *TimeTrackingService {
	repos.mustHaveAll()
	return &TimeTrackingService{
		repos: repos,
	}
}

var usageQuery = snapshotQuery{
	projects: true,
	goals:    true,
	tasks:    true,
}

// DailySummary reports req.Date, or the day of now when it is empty.
func (ts *TimeTrackingService) DailySummary(ctx context.Context, req *DailySummaryRequest, now time.Time) (*stats.UsageReport, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	day, err := dayOrDefault(req.Date, stats.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, ts.repos, usageQuery)
	if err != nil {
		return nil, err
	}
	rep := stats.DailyUsage(s, day)
	return &rep, nil
}

// WeeklySummary reports seven days from req.WeekStart, or the Monday-based week of now.
func (ts *TimeTrackingService) WeeklySummary(ctx context.Context, req *WeeklySummaryRequest, now time.Time) (*stats.UsageReport, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	start, err := dayOrDefault(req.WeekStart, stats.WeekOf(now).Start)
	if err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, ts.repos, usageQuery)
	if err != nil {
		return nil, err
	}
	rep := stats.WeeklyUsage(s, start)
	return &rep, nil
}
