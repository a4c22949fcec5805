package api_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/internal/service"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
)

var errMocked = errors.New("mocked error")

// serviceMock is embedded by every service mock. A failing mock returns err,
// or errMocked when err is nil.
type serviceMock struct {
	success bool
	err     error
	calls   int
}

func (m *serviceMock) ChangeState(success bool) {
	m.success = success
	m.err = nil
}

func (m *serviceMock) FailWith(err error) {
	m.success = false
	m.err = err
}

func (m *serviceMock) result() error {
	m.calls++
	if m.success {
		return nil
	}
	if m.err != nil {
		return m.err
	}
	return errMocked
}

type DashboardServiceMock struct {
	serviceMock
	lastTimeByProject *service.TimeByProjectRequest
}

func (dsmock *DashboardServiceMock) Summary(ctx context.Context, now time.Time) (*stats.Summary, error) {
	if err := dsmock.result(); err != nil {
		return nil, err
	}
	return &stats.Summary{
		Projects: stats.Count{Total: 2},
		Period:   stats.WeekOf(now),
	}, nil
}

func (dsmock *DashboardServiceMock) TimeByProject(ctx context.Context, req *service.TimeByProjectRequest, now time.Time) ([]stats.ProjectTime, error) {
	dsmock.lastTimeByProject = req
	if err := dsmock.result(); err != nil {
		return nil, err
	}
	return []stats.ProjectTime{{ProjectID: projectID, ProjectName: "Work", MinutesLogged: 90, Formatted: "1h 30m"}}, nil
}

type GoalsServiceMock struct {
	serviceMock
	lastCheck *service.AllocationCheckRequest
}

func (gsmock *GoalsServiceMock) ListGoalProgress(ctx context.Context, req *service.GoalProgressRequest, now time.Time) ([]service.GoalReport, error) {
	if err := gsmock.result(); err != nil {
		return nil, err
	}
	return []service.GoalReport{{Goal: entity.Goal{ID: goalID, ProjectID: projectID, Name: "Launch"}}}, nil
}

func (gsmock *GoalsServiceMock) GetGoalProgress(ctx context.Context, id uuid.UUID, now time.Time) (*service.GoalReport, error) {
	if err := gsmock.result(); err != nil {
		return nil, err
	}
	return &service.GoalReport{
		Goal:     entity.Goal{ID: id, ProjectID: projectID, Name: "Launch"},
		Progress: stats.Progress{Completed: 1, Total: 2, Percentage: 50},
	}, nil
}

func (gsmock *GoalsServiceMock) CheckAllocation(ctx context.Context, req *service.AllocationCheckRequest) (*service.AllocationCheck, error) {
	gsmock.lastCheck = req
	if err := gsmock.result(); err != nil {
		return nil, err
	}
	limit := 120
	return &service.AllocationCheck{
		OK:      false,
		Daily:   stats.AllocationResult{Kind: stats.AllocationDaily, Value: req.DailyTimeAllocatedMinutes, Limit: &limit, Constrained: true},
		Weekly:  stats.AllocationResult{OK: true, Kind: stats.AllocationWeekly},
		Message: "cannot exceed project daily allocation (120 min)",
	}, nil
}

type ProjectsServiceMock struct {
	serviceMock
}

func (psmock *ProjectsServiceMock) ListProjectProgress(ctx context.Context) ([]service.ProjectReport, error) {
	if err := psmock.result(); err != nil {
		return nil, err
	}
	return []service.ProjectReport{{Project: entity.Project{ID: projectID, Name: "Work"}, Goals: 1}}, nil
}

type TimeTrackingServiceMock struct {
	serviceMock
	lastDaily  *service.DailySummaryRequest
	lastWeekly *service.WeeklySummaryRequest
}

func (tsmock *TimeTrackingServiceMock) DailySummary(ctx context.Context, req *service.DailySummaryRequest, now time.Time) (*stats.UsageReport, error) {
	tsmock.lastDaily = req
	if err := tsmock.result(); err != nil {
		return nil, err
	}
	return &stats.UsageReport{Kind: stats.AllocationDaily, From: "2025-03-12", To: "2025-03-12"}, nil
}

func (tsmock *TimeTrackingServiceMock) WeeklySummary(ctx context.Context, req *service.WeeklySummaryRequest, now time.Time) (*stats.UsageReport, error) {
	tsmock.lastWeekly = req
	if err := tsmock.result(); err != nil {
		return nil, err
	}
	return &stats.UsageReport{Kind: stats.AllocationWeekly, From: "2025-03-10", To: "2025-03-16"}, nil
}

type ChoresServiceMock struct {
	serviceMock
	last *service.ChoreBoardRequest
}

func (csmock *ChoresServiceMock) Board(ctx context.Context, req *service.ChoreBoardRequest, now time.Time) ([]stats.ChoreActivity, error) {
	csmock.last = req
	if err := csmock.result(); err != nil {
		return nil, err
	}
	return []stats.ChoreActivity{}, nil
}

type TasksServiceMock struct {
	serviceMock
	last *service.TaskListRequest
}

func (tsmock *TasksServiceMock) ListTasks(ctx context.Context, req *service.TaskListRequest) ([]entity.Task, error) {
	tsmock.last = req
	if err := tsmock.result(); err != nil {
		return nil, err
	}
	return []entity.Task{{ID: uuid.New(), GoalID: goalID, Name: "draft", Status: entity.TaskDone}}, nil
}

type PingerMock struct {
	serviceMock
}

func (pmock *PingerMock) Ping(ctx context.Context) error {
	return pmock.result()
}
