package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/pkg/entity"
)

type GoalUsage struct {
	GoalID      uuid.UUID `json:"goal_id"`
	GoalName    string    `json:"goal_name"`
	Limit       *int      `json:"limit"`
	TimeLogged  int       `json:"time_logged"`
	Remaining   *int      `json:"remaining"`
	Percentage  float64   `json:"percentage"`
	IsOverLimit bool      `json:"is_over_limit"`
}

type ProjectUsage struct {
	ProjectID    uuid.UUID   `json:"project_id"`
	ProjectName  string      `json:"project_name"`
	ProjectColor string      `json:"project_color"`
	Limit        int         `json:"limit"`
	TimeLogged   int         `json:"time_logged"`
	Remaining    int         `json:"remaining"`
	Percentage   float64     `json:"percentage"`
	IsOverLimit  bool        `json:"is_over_limit"`
	Goals        []GoalUsage `json:"goals"`
}

// UsageReport compares logged task minutes against allocations over one day or one week.
type UsageReport struct {
	Kind            AllocationKind `json:"kind"`
	From            string         `json:"from"`
	To              string         `json:"to"`
	Projects        []ProjectUsage `json:"projects"`
	TotalTimeLogged int            `json:"total_time_logged"`
	TotalLimit      int            `json:"total_limit"`
}

// DailyUsage reports the day containing day against daily allocations.
func DailyUsage(s Snapshot, day time.Time) UsageReport {
	return usage(s, DayOf(day), AllocationDaily)
}

// WeeklyUsage reports the seven days starting at weekStart against weekly allocations.
func WeeklyUsage(s Snapshot, weekStart time.Time) UsageReport {
	start := StartOfDay(weekStart)
	return usage(s, Period{Start: start, End: start.AddDate(0, 0, 7)}, AllocationWeekly)
}

func usage(s Snapshot, p Period, kind AllocationKind) UsageReport {
	logged := make(map[uuid.UUID]int, len(s.Goals))
	for _, t := range FilterTasksInRange(s.Tasks, p.Start, p.End) {
		logged[t.GoalID] += t.ActualTimeMinutes
	}

	rep := UsageReport{
		Kind:     kind,
		From:     DateKey(p.Start),
		To:       DateKey(p.LastDay()),
		Projects: make([]ProjectUsage, 0, len(s.Projects)),
	}
	for i := range s.Projects {
		project := &s.Projects[i]
		limit := ProjectLimit(project, kind)
		pu := ProjectUsage{
			ProjectID:    project.ID,
			ProjectName:  project.Name,
			ProjectColor: project.Color,
			Limit:        limit,
			Goals:        make([]GoalUsage, 0),
		}
		for _, g := range s.Goals {
			if g.ProjectID != project.ID {
				continue
			}
			gu := goalUsage(g, kind, logged[g.ID])
			pu.TimeLogged += gu.TimeLogged
			pu.Goals = append(pu.Goals, gu)
		}
		pu.Remaining = limit - pu.TimeLogged
		pu.Percentage = Rate(pu.TimeLogged, limit)
		pu.IsOverLimit = pu.TimeLogged > limit

		rep.TotalTimeLogged += pu.TimeLogged
		rep.TotalLimit += limit
		rep.Projects = append(rep.Projects, pu)
	}
	return rep
}

// goalUsage treats a missing or zero goal limit as unconstrained.
func goalUsage(g entity.Goal, kind AllocationKind, logged int) GoalUsage {
	limit := g.DailyTimeAllocatedMinutes
	if kind == AllocationWeekly {
		limit = g.WeeklyTimeAllocatedMinutes
	}
	gu := GoalUsage{
		GoalID:     g.ID,
		GoalName:   g.Name,
		Limit:      limit,
		TimeLogged: logged,
	}
	if limit == nil || *limit == 0 {
		return gu
	}
	remaining := *limit - logged
	gu.Remaining = &remaining
	gu.Percentage = Rate(logged, *limit)
	gu.IsOverLimit = logged > *limit
	return gu
}
