package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPlanned TaskStatus = "planned"
	TaskDone    TaskStatus = "done"
)

type ChoreFrequency string

const (
	ChoreDaily   ChoreFrequency = "daily"
	ChoreWeekly  ChoreFrequency = "weekly"
	ChoreMonthly ChoreFrequency = "monthly"
)

// Project is the top-level container of goals. Allocations are daily and weekly minute budgets.
type Project struct {
	ID                         uuid.UUID `json:"id"`
	Name                       string    `json:"name"`
	Color                      string    `json:"color"`
	DailyTimeAllocatedMinutes  int       `json:"daily_time_allocated_minutes"`
	WeeklyTimeAllocatedMinutes int       `json:"weekly_time_allocated_minutes"`
	CreatedAt                  time.Time `json:"created_at"`
}

// Goal belongs to exactly one project. Nil deadline and nil allocations mean "not set".
type Goal struct {
	ID                         uuid.UUID  `json:"id"`
	ProjectID                  uuid.UUID  `json:"project_id"`
	Name                       string     `json:"name"`
	Description                string     `json:"description,omitempty"`
	Deadline                   *time.Time `json:"deadline,omitempty"`
	DailyTimeAllocatedMinutes  *int       `json:"daily_time_allocated_minutes,omitempty"`
	WeeklyTimeAllocatedMinutes *int       `json:"weekly_time_allocated_minutes,omitempty"`
	CreatedAt                  time.Time  `json:"created_at"`
}

type Task struct {
	ID                   uuid.UUID  `json:"id"`
	GoalID               uuid.UUID  `json:"goal_id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	Status               TaskStatus `json:"status"`
	Date                 time.Time  `json:"date"`
	EstimatedTimeMinutes *int       `json:"estimated_time_minutes,omitempty"`
	ActualTimeMinutes    int        `json:"actual_time_minutes"`
	CreatedAt            time.Time  `json:"created_at"`
}

func (t *Task) Done() bool {
	return t.Status == TaskDone
}

type Chore struct {
	ID                   uuid.UUID      `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	Frequency            ChoreFrequency `json:"frequency"`
	EstimatedTimeMinutes int            `json:"estimated_time_minutes"`
	IsActive             bool           `json:"is_active"`
	CreatedAt            time.Time      `json:"created_at"`
}

// ChoreLog records one day's time spent on a chore. Date is a calendar day.
type ChoreLog struct {
	ID                uuid.UUID `json:"id"`
	ChoreID           uuid.UUID `json:"chore_id"`
	Date              time.Time `json:"date"`
	ActualTimeMinutes int       `json:"actual_time_minutes"`
	CreatedAt         time.Time `json:"created_at"`
}
