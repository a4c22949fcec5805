package repository

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/dailyos/pkg/entity"
)

// The backend serialises naive UTC datetimes, so several layouts are accepted.
var wireLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type wireTime struct {
	time.Time
}

func (wt *wireTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		wt.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("datetime must be a string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	for _, layout := range wireLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			wt.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported datetime %q", s)
}

func (wt *wireTime) ptr() *time.Time {
	if wt == nil || wt.IsZero() {
		return nil
	}
	t := wt.Time
	return &t
}

type page[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

type apiError struct {
	Detail any `json:"detail"`
}

type projectDTO struct {
	ID                         uuid.UUID `json:"id"`
	Name                       string    `json:"name"`
	Color                      string    `json:"color"`
	DailyTimeAllocatedMinutes  int       `json:"daily_time_allocated_minutes"`
	WeeklyTimeAllocatedMinutes int       `json:"weekly_time_allocated_minutes"`
	CreatedAt                  wireTime  `json:"created_at"`
}

func (d *projectDTO) entity() entity.Project {
	return entity.Project{
		ID:                         d.ID,
		Name:                       d.Name,
		Color:                      d.Color,
		DailyTimeAllocatedMinutes:  d.DailyTimeAllocatedMinutes,
		WeeklyTimeAllocatedMinutes: d.WeeklyTimeAllocatedMinutes,
		CreatedAt:                  d.CreatedAt.Time,
	}
}

type goalDTO struct {
	ID                         uuid.UUID `json:"id"`
	ProjectID                  uuid.UUID `json:"project_id"`
	Name                       string    `json:"name"`
	Description                *string   `json:"description"`
	Deadline                   *wireTime `json:"deadline"`
	DailyTimeAllocatedMinutes  *int      `json:"daily_time_allocated_minutes"`
	WeeklyTimeAllocatedMinutes *int      `json:"weekly_time_allocated_minutes"`
	CreatedAt                  wireTime  `json:"created_at"`
}

func (d *goalDTO) entity() entity.Goal {
	return entity.Goal{
		ID:                         d.ID,
		ProjectID:                  d.ProjectID,
		Name:                       d.Name,
		Description:                deref(d.Description),
		Deadline:                   d.Deadline.ptr(),
		DailyTimeAllocatedMinutes:  d.DailyTimeAllocatedMinutes,
		WeeklyTimeAllocatedMinutes: d.WeeklyTimeAllocatedMinutes,
		CreatedAt:                  d.CreatedAt.Time,
	}
}

type taskDTO struct {
	ID                   uuid.UUID `json:"id"`
	GoalID               uuid.UUID `json:"goal_id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	Status               string    `json:"status"`
	Date                 wireTime  `json:"date"`
	EstimatedTimeMinutes *int      `json:"estimated_time_minutes"`
	ActualTimeMinutes    *int      `json:"actual_time_minutes"`
	CreatedAt            wireTime  `json:"created_at"`
}

func (d *taskDTO) entity() entity.Task {
	actual := 0
	if d.ActualTimeMinutes != nil {
		actual = *d.ActualTimeMinutes
	}
	return entity.Task{
		ID:                   d.ID,
		GoalID:               d.GoalID,
		Name:                 d.Name,
		Description:          deref(d.Description),
		Status:               entity.TaskStatus(d.Status),
		Date:                 d.Date.Time,
		EstimatedTimeMinutes: d.EstimatedTimeMinutes,
		ActualTimeMinutes:    actual,
		CreatedAt:            d.CreatedAt.Time,
	}
}

type choreDTO struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	Frequency            string    `json:"frequency"`
	EstimatedTimeMinutes int       `json:"estimated_time_minutes"`
	IsActive             *bool     `json:"is_active"`
	CreatedAt            wireTime  `json:"created_at"`
}

func (d *choreDTO) entity() entity.Chore {
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return entity.Chore{
		ID:                   d.ID,
		Name:                 d.Name,
		Description:          deref(d.Description),
		Frequency:            entity.ChoreFrequency(d.Frequency),
		EstimatedTimeMinutes: d.EstimatedTimeMinutes,
		IsActive:             active,
		CreatedAt:            d.CreatedAt.Time,
	}
}

type choreLogDTO struct {
	ID                uuid.UUID `json:"id"`
	ChoreID           uuid.UUID `json:"chore_id"`
	Date              wireTime  `json:"date"`
	ActualTimeMinutes int       `json:"actual_time_minutes"`
	CreatedAt         wireTime  `json:"created_at"`
}

func (d *choreLogDTO) entity() entity.ChoreLog {
	return entity.ChoreLog{
		ID:                d.ID,
		ChoreID:           d.ChoreID,
		Date:              d.Date.Time,
		ActualTimeMinutes: d.ActualTimeMinutes,
		CreatedAt:         d.CreatedAt.Time,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
