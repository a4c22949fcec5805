package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
)

type TimeByProjectRequest struct {
	// Look-back window in days counted from today; 0 means all time
	Days int `validate:"min=0,max=366"`
}

type GoalProgressRequest struct {
	ProjectID string `validate:"omitempty,uuid"`
}

type AllocationCheckRequest struct {
	ProjectID                  string `json:"project_id" validate:"omitempty,uuid"`
	DailyTimeAllocatedMinutes  *int   `json:"daily_time_allocated_minutes" validate:"omitempty,min=0,max=1440"`
	WeeklyTimeAllocatedMinutes *int   `json:"weekly_time_allocated_minutes" validate:"omitempty,min=0,max=10080"`
}

type DailySummaryRequest struct {
	Date string `validate:"omitempty,date_only"`
}

type WeeklySummaryRequest struct {
	WeekStart string `validate:"omitempty,date_only"`
}

type ChoreBoardRequest struct {
	Date   string `validate:"omitempty,date_only"`
	Active *bool
}

type TaskListRequest struct {
	ProjectID string `validate:"omitempty,uuid"`
	GoalID    string `validate:"omitempty,uuid"`
	Status    string `validate:"omitempty,oneof=planned done"`
	Date      string `validate:"omitempty,date_only"`
}

type GoalReport struct {
	Goal              entity.Goal          `json:"goal"`
	Progress          stats.Progress       `json:"progress"`
	Deadline          stats.DeadlineStatus `json:"deadline"`
	AllocationWarning string               `json:"allocation_warning,omitempty"`
}

type ProjectReport struct {
	Project       entity.Project `json:"project"`
	Progress      stats.Progress `json:"progress"`
	Goals         int            `json:"goals"`
	MinutesLogged int            `json:"minutes_logged"`
	Formatted     string         `json:"formatted"`
}

type AllocationCheck struct {
	OK      bool                   `json:"ok"`
	Daily   stats.AllocationResult `json:"daily"`
	Weekly  stats.AllocationResult `json:"weekly"`
	Message string                 `json:"message,omitempty"`
}

type DashboardServiceI interface {
	// Aggregates every collection into the dashboard summary for the week containing now
	Summary(ctx context.Context, now time.Time) (*stats.Summary, error)
	TimeByProject(ctx context.Context, req *TimeByProjectRequest, now time.Time) ([]stats.ProjectTime, error)
}

type GoalsServiceI interface {
	ListGoalProgress(ctx context.Context, req *GoalProgressRequest, now time.Time) ([]GoalReport, error)
	GetGoalProgress(ctx context.Context, id uuid.UUID, now time.Time) (*GoalReport, error)
	// Checks requested goal allocations against the project's budget. Never mutates anything
	CheckAllocation(ctx context.Context, req *AllocationCheckRequest) (*AllocationCheck, error)
}

type ProjectsServiceI interface {
	ListProjectProgress(ctx context.Context) ([]ProjectReport, error)
}

type TimeTrackingServiceI interface {
	DailySummary(ctx context.Context, req *DailySummaryRequest, now time.Time) (*stats.UsageReport, error)
	WeeklySummary(ctx context.Context, req *WeeklySummaryRequest, now time.Time) (*stats.UsageReport, error)
}

type ChoresServiceI interface {
	Board(ctx context.Context, req *ChoreBoardRequest, now time.Time) ([]stats.ChoreActivity, error)
}

type TasksServiceI interface {
	ListTasks(ctx context.Context, req *TaskListRequest) ([]entity.Task, error)
}
