package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/pkg/entity"
)

// Snapshot is a caller-owned set of entity collections. Nil collections are treated as empty.
type Snapshot struct {
	Projects  []entity.Project
	Goals     []entity.Goal
	Tasks     []entity.Task
	Chores    []entity.Chore
	ChoreLogs []entity.ChoreLog
}

// Period is a half-open [Start, End) range of whole UTC days.
type Period struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the Monday-based week containing now.
func WeekOf(now time.Time) Period {
	today := StartOfDay(now)
	offset := (int(today.Weekday()) + 6) % 7
	start := today.AddDate(0, 0, -offset)
	return Period{Start: start, End: start.AddDate(0, 0, 7)}
}

// DayOf returns the single UTC day containing t.
func DayOf(t time.Time) Period {
	start := StartOfDay(t)
	return Period{Start: start, End: start.AddDate(0, 0, 1)}
}

func (p Period) Contains(t time.Time) bool {
	return inRange(t, p.Start, p.End)
}

// LastDay is the final calendar day inside the period.
func (p Period) LastDay() time.Time {
	return p.End.AddDate(0, 0, -1)
}

func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"week_start":%q,"week_end":%q}`,
		DateKey(p.Start), DateKey(p.LastDay()))), nil
}

type BreakdownOrder string

const (
	// OrderByMinutesDesc sorts by minutes logged, largest first. Ties keep input order.
	OrderByMinutesDesc BreakdownOrder = "minutes_desc"
	// OrderByInput keeps the order of the projects collection.
	OrderByInput BreakdownOrder = "input"
)

// ParseBreakdownOrder falls back to OrderByMinutesDesc for unknown values.
func ParseBreakdownOrder(s string) BreakdownOrder {
	switch BreakdownOrder(strings.ToLower(strings.TrimSpace(s))) {
	case OrderByInput:
		return OrderByInput
	default:
		return OrderByMinutesDesc
	}
}

type ProjectTime struct {
	ProjectID     uuid.UUID `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	ProjectColor  string    `json:"project_color"`
	MinutesLogged int       `json:"minutes_logged"`
	Formatted     string    `json:"formatted"`
}

type TaskCounts struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type TaskSummary struct {
	Total          int        `json:"total"`
	Completed      int        `json:"completed"`
	CompletionRate float64    `json:"completion_rate"`
	ThisWeek       TaskCounts `json:"this_week"`
}

type WeekTime struct {
	LoggedMinutes  int     `json:"logged_minutes"`
	Formatted      string  `json:"formatted"`
	AllocationRate float64 `json:"allocation_rate"`
}

type TimeSummary struct {
	TotalLoggedMinutes     int      `json:"total_logged_minutes"`
	TotalLoggedFormatted   string   `json:"total_logged_formatted"`
	DailyAllocatedMinutes  int      `json:"daily_allocated_minutes"`
	WeeklyAllocatedMinutes int      `json:"weekly_allocated_minutes"`
	AvgMinutesPerTask      float64  `json:"avg_minutes_per_task"`
	ThisWeek               WeekTime `json:"this_week"`
}

type ChoreWeek struct {
	Completed   int `json:"completed"`
	TimeMinutes int `json:"time_minutes"`
}

type ChoreSummary struct {
	Active   int       `json:"active"`
	ThisWeek ChoreWeek `json:"this_week"`
}

type Count struct {
	Total int `json:"total"`
}

type Summary struct {
	Projects      Count         `json:"projects"`
	Goals         Count         `json:"goals"`
	Tasks         TaskSummary   `json:"tasks"`
	Time          TimeSummary   `json:"time"`
	Chores        ChoreSummary  `json:"chores"`
	Period        Period        `json:"period"`
	TimeByProject []ProjectTime `json:"time_by_project"`
}

type options struct {
	order BreakdownOrder
	since time.Time
}

type Option func(*options)

func WithOrder(order BreakdownOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithBreakdownSince limits the per-project breakdown to tasks dated on or after since.
func WithBreakdownSince(since time.Time) Option {
	return func(o *options) {
		o.since = since
	}
}

// Rate returns part/whole*100 rounded to one decimal, or 0 when whole is 0.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate reduces a snapshot into the dashboard summary for the week containing now.
func Aggregate(s Snapshot, now time.Time, opts ...Option) Summary {
	o := options{order: OrderByMinutesDesc}
	for _, opt := range opts {
		opt(&o)
	}
	week := WeekOf(now)

	sum := Summary{
		Projects:      Count{Total: len(s.Projects)},
		Goals:         Count{Total: len(s.Goals)},
		Period:        week,
		TimeByProject: TimeByProject(s, o.since, o.order),
	}

	var weekLogged int
	for _, t := range s.Tasks {
		sum.Tasks.Total++
		sum.Time.TotalLoggedMinutes += t.ActualTimeMinutes
		if t.Done() {
			sum.Tasks.Completed++
		}
		if week.Contains(t.Date) {
			sum.Tasks.ThisWeek.Total++
			weekLogged += t.ActualTimeMinutes
			if t.Done() {
				sum.Tasks.ThisWeek.Completed++
			}
		}
	}
	sum.Tasks.CompletionRate = Rate(sum.Tasks.Completed, sum.Tasks.Total)
	sum.Tasks.ThisWeek.CompletionRate = Rate(sum.Tasks.ThisWeek.Completed, sum.Tasks.ThisWeek.Total)

	for _, p := range s.Projects {
		sum.Time.DailyAllocatedMinutes += p.DailyTimeAllocatedMinutes
		sum.Time.WeeklyAllocatedMinutes += p.WeeklyTimeAllocatedMinutes
	}
	sum.Time.TotalLoggedFormatted = FormatMinutes(sum.Time.TotalLoggedMinutes)
	if sum.Tasks.Total > 0 {
		sum.Time.AvgMinutesPerTask = round1(float64(sum.Time.TotalLoggedMinutes) / float64(sum.Tasks.Total))
	}
	sum.Time.ThisWeek = WeekTime{
		LoggedMinutes:  weekLogged,
		Formatted:      FormatMinutes(weekLogged),
		AllocationRate: Rate(weekLogged, sum.Time.WeeklyAllocatedMinutes),
	}

	for _, c := range s.Chores {
		if c.IsActive {
			sum.Chores.Active++
		}
	}
	for _, l := range s.ChoreLogs {
		if !week.Contains(l.Date) {
			continue
		}
		// every log in the week counts, zero-minute ones included
		sum.Chores.ThisWeek.Completed++
		sum.Chores.ThisWeek.TimeMinutes += l.ActualTimeMinutes
	}
	return sum
}

// TimeByProject sums actual minutes per project, joining tasks to projects through goals.
// Every project appears even with zero minutes. Tasks dated before since are skipped
// unless since is zero. Tasks whose goal or project is unknown are ignored.
func TimeByProject(s Snapshot, since time.Time, order BreakdownOrder) []ProjectTime {
	owner := GoalProjectIndex(s.Goals)
	minutes := make(map[uuid.UUID]int, len(s.Projects))
	for _, t := range s.Tasks {
		if !since.IsZero() && t.Date.Before(since) {
			continue
		}
		if pid, ok := owner[t.GoalID]; ok {
			minutes[pid] += t.ActualTimeMinutes
		}
	}

	res := make([]ProjectTime, 0, len(s.Projects))
	for _, p := range s.Projects {
		m := minutes[p.ID]
		res = append(res, ProjectTime{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			ProjectColor:  p.Color,
			MinutesLogged: m,
			Formatted:     FormatMinutes(m),
		})
	}
	if order != OrderByInput {
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].MinutesLogged > res[j].MinutesLogged
		})
	}
	return res
}
