package service

import (
	"context"
	"time"

	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/stats"
)

type ChoresService struct {
	repos *Repositories
}

func NewChoresService(repos *Repositories) *ChoresService {
	repos.mustHaveAll()
	return &ChoresService{
		repos: repos,
	}
}

func (cs *ChoresService) Board(ctx context.Context, req *ChoreBoardRequest, now time.Time) ([]stats.ChoreActivity, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	day, err := dayOrDefault(req.Date, stats.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, cs.repos, snapshotQuery{
		chores:      true,
		choreLogs:   true,
		choreFilter: repository.ChoreFilter{IsActive: req.Active},
	})
	if err != nil {
		return nil, err
	}
	chores := stats.FilterChoresByActive(s.Chores, req.Active)
	return stats.ChoreBoard(chores, s.ChoreLogs, day), nil
}
