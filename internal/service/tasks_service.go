package service

import (
	"context"

	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
)

type TasksService struct {
	repos *Repositories
}

func NewTasksService(repos *Repositories) *TasksService {
	repos.mustHaveAll()
	return &TasksService{
		repos: repos,
	}
}

// ListTasks fetches every task and narrows it locally by project, goal, status and day.
func (ts *TasksService) ListTasks(ctx context.Context, req *TaskListRequest) ([]entity.Task, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := optionalUUID(req.ProjectID)
	if err != nil {
		return nil, err
	}
	goalID, err := optionalUUID(req.GoalID)
	if err != nil {
		return nil, err
	}
	s, err := loadSnapshot(ctx, ts.repos, snapshotQuery{
		goals: true,
		tasks: true,
	})
	if err != nil {
		return nil, err
	}
	tasks := stats.FilterTasksByProject(s.Tasks, s.Goals, projectID)
	tasks = stats.FilterTasksByGoal(tasks, goalID)
	tasks = stats.FilterTasksByStatus(tasks, entity.TaskStatus(req.Status))
	tasks = stats.FilterTasksByDate(tasks, req.Date)
	return tasks, nil
}
