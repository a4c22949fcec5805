package stats

import (
	"fmt"

	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/pkg/entity"
)

type AllocationKind string

const (
	AllocationDaily  AllocationKind = "daily"
	AllocationWeekly AllocationKind = "weekly"
)

// ProjectLimit returns the project's minute budget for kind.
func ProjectLimit(project *entity.Project, kind AllocationKind) int {
	if kind == AllocationWeekly {
		return project.WeeklyTimeAllocatedMinutes
	}
	return project.DailyTimeAllocatedMinutes
}

// AllocationResult is the verdict for one requested allocation.
// Limit is the project's budget for Kind and is only set when a project was given.
type AllocationResult struct {
	OK          bool           `json:"ok"`
	Kind        AllocationKind `json:"kind"`
	Value       *int           `json:"value"`
	Limit       *int           `json:"limit"`
	Constrained bool           `json:"constrained"`
}

// AllocationError renders a failed verdict.
type AllocationError struct {
	Kind  AllocationKind
	Value int
	Limit int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot exceed project %s allocation (%d min)", e.Kind, e.Limit)
}

func (e *AllocationError) Unwrap() error {
	return errorvalues.ErrAllocationExceeded
}

// Err is nil for a passing verdict and an *AllocationError otherwise.
func (r AllocationResult) Err() error {
	if r.OK {
		return nil
	}
	e := &AllocationError{Kind: r.Kind}
	if r.Value != nil {
		e.Value = *r.Value
	}
	if r.Limit != nil {
		e.Limit = *r.Limit
	}
	return e
}

// ValidateAllocation checks a requested allocation against the project's budget.
// An absent or zero value always passes, and so does any value when project is nil.
func ValidateAllocation(value *int, kind AllocationKind, project *entity.Project) AllocationResult {
	res := AllocationResult{OK: true, Kind: kind, Value: value}
	if project == nil {
		return res
	}
	limit := ProjectLimit(project, kind)
	res.Limit = &limit
	res.Constrained = true
	if value == nil || *value == 0 {
		return res
	}
	res.OK = *value <= limit
	return res
}

// ValidateGoalAllocations checks both of a goal's allocations, daily first,
// and returns the first failure as an *AllocationError.
func ValidateGoalAllocations(goal entity.Goal, project *entity.Project) error {
	if err := ValidateAllocation(goal.DailyTimeAllocatedMinutes, AllocationDaily, project).Err(); err != nil {
		return err
	}
	return ValidateAllocation(goal.WeeklyTimeAllocatedMinutes, AllocationWeekly, project).Err()
}
