package service

import (
	"context"
	"fmt"
	"log"

	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/stats"
	"golang.org/x/sync/errgroup"
)

// Repositories bundles the upstream collections the services read from.
type Repositories struct {
	Projects  repository.ProjectsRepositoryI
	Goals     repository.GoalsRepositoryI
	Tasks     repository.TasksRepositoryI
	Chores    repository.ChoresRepositoryI
	ChoreLogs repository.ChoreLogsRepositoryI
}

func (r *Repositories) mustHaveAll() {
	if r == nil || r.Projects == nil || r.Goals == nil || r.Tasks == nil || r.Chores == nil || r.ChoreLogs == nil {
		log.Fatal("provided incomplete repositories")
	}
}

// snapshotQuery selects which collections to fetch and with which upstream filters.
type snapshotQuery struct {
	projects  bool
	goals     bool
	tasks     bool
	chores    bool
	choreLogs bool

	goalFilter     repository.GoalFilter
	taskFilter     repository.TaskFilter
	choreFilter    repository.ChoreFilter
	choreLogFilter repository.ChoreLogFilter
}

// loadSnapshot fetches the selected collections concurrently. The first failure cancels the rest.
// Collections that were not requested stay nil.
func loadSnapshot(ctx context.Context, repos *Repositories, q snapshotQuery) (stats.Snapshot, error) {
	var s stats.Snapshot
	g, ctx := errgroup.WithContext(ctx)
	if q.projects {
		g.Go(func() error {
			projects, err := repos.Projects.List(ctx)
			if err != nil {
				return fmt.Errorf("projects repository error: %w", err)
			}
			s.Projects = projects
			return nil
		})
	}
	if q.goals {
		g.Go(func() error {
			goals, err := repos.Goals.List(ctx, q.goalFilter)
			if err != nil {
				return fmt.Errorf("goals repository error: %w", err)
			}
			s.Goals = goals
			return nil
		})
	}
	if q.tasks {
		g.Go(func() error {
			tasks, err := repos.Tasks.List(ctx, q.taskFilter)
			if err != nil {
				return fmt.Errorf("tasks repository error: %w", err)
			}
			s.Tasks = tasks
			return nil
		})
	}
	if q.chores {
		g.Go(func() error {
			chores, err := repos.Chores.List(ctx, q.choreFilter)
			if err != nil {
				return fmt.Errorf("chores repository error: %w", err)
			}
			s.Chores = chores
			return nil
		})
	}
	if q.choreLogs {
		g.Go(func() error {
			logs, err := repos.ChoreLogs.List(ctx, q.choreLogFilter)
			if err != nil {
				return fmt.Errorf("chore logs repository error: %w", err)
			}
			s.ChoreLogs = logs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats.Snapshot{}, err
	}
	return s, nil
}
