package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type GoalsService struct {
	repos *Repositories
}

func NewGoalsService(repos *Repositories) *GoalsService {
	repos.mustHaveAll()
	return &GoalsService{
		repos: repos,
	}
}

func goalReport(goal entity.Goal, project *entity.Project, tasks []entity.Task, now time.Time) GoalReport {
	rep := GoalReport{
		Goal:     goal,
		Progress: stats.GoalProgress(goal, tasks),
		Deadline: stats.EvaluateDeadline(goal.Deadline, now),
	}
	if err := stats.ValidateGoalAllocations(goal, project); err != nil {
		rep.AllocationWarning = err.Error()
	}
	return rep
}

func (gs *GoalsService) ListGoalProgress(ctx context.Context, req *GoalProgressRequest, now time.Time) ([]GoalReport, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := optionalUUID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, gs.repos, snapshotQuery{
		projects:   true,
		goals:      true,
		tasks:      true,
		goalFilter: repository.GoalFilter{ProjectID: projectID},
		taskFilter: repository.TaskFilter{ProjectID: projectID},
	})
	if err != nil {
		return nil, err
	}
	projects := stats.ProjectIndex(s.Projects)
	if _, ok := projects[projectID]; projectID != uuid.Nil && !ok {
		return nil, errorvalues.ErrProjectNotFound
	}
	reports := make([]GoalReport, 0, len(s.Goals))
	for _, g := range s.Goals {
		var project *entity.Project
		if p, ok := projects[g.ProjectID]; ok {
			project = &p
		}
		reports = append(reports, goalReport(g, project, s.Tasks, now))
	}
	return reports, nil
}

func (gs *GoalsService) GetGoalProgress(ctx context.Context, id uuid.UUID, now time.Time) (*GoalReport, error) {
	goal, err := gs.repos.Goals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("goals repository error: %w", err)
	}
	var (
		tasks   []entity.Task
		project *entity.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ts, err := gs.repos.Tasks.List(gctx, repository.TaskFilter{GoalID: goal.ID})
		if err != nil {
			return fmt.Errorf("tasks repository error: %w", err)
		}
		tasks = ts
		return nil
	})
	g.Go(func() error {
		p, err := gs.repos.Projects.GetByID(gctx, goal.ProjectID)
		if err != nil {
			// A goal whose project vanished is still reported, unconstrained
			if errors.Is(err, errorvalues.ErrProjectNotFound) {
				return nil
			}
			return fmt.Errorf("projects repository error: %w", err)
		}
		project = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	rep := goalReport(*goal, project, tasks, now)
	return &rep, nil
}

func (gs *GoalsService) CheckAllocation(ctx context.Context, req *AllocationCheckRequest) (*AllocationCheck, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := optionalUUID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	var project *entity.Project
	if projectID != uuid.Nil {
		project, err = gs.repos.Projects.GetByID(ctx, projectID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrProjectNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("projects repository error: %w", err)
		}
	}
	check := AllocationCheck{
		Daily:  stats.ValidateAllocation(req.DailyTimeAllocatedMinutes, stats.AllocationDaily, project),
		Weekly: stats.ValidateAllocation(req.WeeklyTimeAllocatedMinutes, stats.AllocationWeekly, project),
	}
	check.OK = check.Daily.OK && check.Weekly.OK
	switch {
	case !check.Daily.OK:
		check.Message = check.Daily.Err().Error()
	case !check.Weekly.OK:
		check.Message = check.Weekly.Err().Error()
	}
	return &check, nil
}
