package service

import (
	"context"
	"time"

	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/stats"
)

type DashboardService struct {
	repos *Repositories
	order stats.BreakdownOrder
}

func NewDashboardService(repos *Repositories, order stats.BreakdownOrder) *DashboardService {
	repos.mustHaveAll()
	return &DashboardService{
		repos: repos,
		order: order,
	}
}

func (ds *DashboardService) Summary(ctx context.Context, now time.Time) (*stats.Summary, error) {
	week := stats.WeekOf(now)
	s, err := loadSnapshot(ctx, ds.repos, snapshotQuery{
		projects:  true,
		goals:     true,
		tasks:     true,
		chores:    true,
		choreLogs: true,
		choreLogFilter: repository.ChoreLogFilter{
			// Aggregate trims to the week, date_to only needs to cover it
			DateFrom: week.Start,
			DateTo:   week.End,
		},
	})
	if err != nil {
		return nil, err
	}
	summary := stats.Aggregate(s, now, stats.WithOrder(ds.order))
	return &summary, nil
}

func (ds *DashboardService) TimeByProject(ctx context.Context, req *TimeByProjectRequest, now time.Time) ([]stats.ProjectTime, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, ds.repos, snapshotQuery{
		projects: true,
		goals:    true,
		tasks:    true,
	})
	if err != nil {
		return nil, err
	}
	var since time.Time
	if req.Days > 0 {
		since = stats.StartOfDay(now).AddDate(0, 0, -req.Days)
	}
	return stats.TimeByProject(s, since, ds.order), nil
}
