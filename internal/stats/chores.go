package stats

import (
	"time"

	"github.com/limbo/dailyos/pkg/entity"
)

type ChoreActivity struct {
	Chore          entity.Chore `json:"chore"`
	Estimate       string       `json:"estimate"`
	CompletedToday bool         `json:"completed_today"`
	TodayMinutes   int          `json:"today_minutes"`
	LastCompleted  *time.Time   `json:"last_completed"`
	Completions    int          `json:"completions"`
	TotalMinutes   int          `json:"total_minutes"`
}

// ChoreBoard describes each chore's activity as of the UTC day containing day.
// Logs dated after that day are ignored.
// A log counts as a completion only when it carries a positive time.
// When a chore has several logs on day, the first one in logs decides today's state.
func ChoreBoard(chores []entity.Chore, logs []entity.ChoreLog, day time.Time) []ChoreActivity {
	asOf := DayOf(day)
	today := FilterChoreLogsByDate(logs, DateKey(asOf.Start))
	history := FilterChoreLogsInRange(logs, time.Time{}, asOf.End)
	res := make([]ChoreActivity, 0, len(chores))
	for _, c := range chores {
		act := ChoreActivity{
			Chore:    c,
			Estimate: FormatPerPeriod(c.EstimatedTimeMinutes, c.Frequency),
		}
		for _, l := range today {
			if l.ChoreID == c.ID {
				act.TodayMinutes = l.ActualTimeMinutes
				act.CompletedToday = l.ActualTimeMinutes > 0
				break
			}
		}
		for _, l := range FilterChoreLogsByChore(history, c.ID) {
			if l.ActualTimeMinutes <= 0 {
				continue
			}
			act.Completions++
			act.TotalMinutes += l.ActualTimeMinutes
			if act.LastCompleted == nil || l.Date.After(*act.LastCompleted) {
				d := l.Date
				act.LastCompleted = &d
			}
		}
		res = append(res, act)
	}
	return res
}
