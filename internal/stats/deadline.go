package stats

import (
	"fmt"
	"math"
	"time"
)

type DeadlineState string

const (
	DeadlineNone     DeadlineState = "none"
	DeadlineOverdue  DeadlineState = "overdue"
	DeadlineDueToday DeadlineState = "due_today"
	DeadlineUpcoming DeadlineState = "upcoming"
)

// DueSoonDays is the horizon within which an open deadline is flagged as due soon.
const DueSoonDays = 7

const day = 24 * time.Hour

type DeadlineStatus struct {
	State         DeadlineState `json:"status"`
	DaysRemaining int           `json:"days_remaining,omitempty"`
	DaysOverdue   int           `json:"days_overdue,omitempty"`
	DueSoon       bool          `json:"due_soon"`
	Label         string        `json:"label,omitempty"`
}

// EvaluateDeadline classifies deadline relative to now using ceil((deadline-now)/24h),
// so a deadline later on the same day counts as due today rather than overdue.
func EvaluateDeadline(deadline *time.Time, now time.Time) DeadlineStatus {
	if deadline == nil {
		return DeadlineStatus{State: DeadlineNone}
	}
	diff := int(math.Ceil(float64(deadline.Sub(now)) / float64(day)))
	switch {
	case diff < 0:
		return DeadlineStatus{
			State:       DeadlineOverdue,
			DaysOverdue: -diff,
			Label:       fmt.Sprintf("%s overdue", days(-diff)),
		}
	case diff == 0:
		return DeadlineStatus{
			State:   DeadlineDueToday,
			DueSoon: true,
			Label:   "Due today",
		}
	default:
		return DeadlineStatus{
			State:         DeadlineUpcoming,
			DaysRemaining: diff,
			DueSoon:       diff <= DueSoonDays,
			Label:         fmt.Sprintf("%s remaining", days(diff)),
		}
	}
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
