package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/pkg/entity"
)

// Filters below never modify their input and keep the input order.
// Joins are linear scans over the given slices.

const isoDate = "2006-01-02"

// DateKey returns the UTC calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.UTC().Format(isoDate)
}

// StartOfDay truncates t to 00:00 UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GoalProjectIndex maps goal id to the id of its owning project.
func GoalProjectIndex(goals []entity.Goal) map[uuid.UUID]uuid.UUID {
	idx := make(map[uuid.UUID]uuid.UUID, len(goals))
	for _, g := range goals {
		idx[g.ID] = g.ProjectID
	}
	return idx
}

func ProjectIndex(projects []entity.Project) map[uuid.UUID]entity.Project {
	idx := make(map[uuid.UUID]entity.Project, len(projects))
	for _, p := range projects {
		idx[p.ID] = p
	}
	return idx
}

// FilterTasksByProject keeps tasks whose goal belongs to projectID.
// uuid.Nil means no filter and returns every task. Tasks whose goal is
// not present in goals are dropped by a real filter.
func FilterTasksByProject(tasks []entity.Task, goals []entity.Goal, projectID uuid.UUID) []entity.Task {
	if projectID == uuid.Nil {
		return append(make([]entity.Task, 0, len(tasks)), tasks...)
	}
	owner := GoalProjectIndex(goals)
	res := make([]entity.Task, 0)
	for _, t := range tasks {
		if pid, ok := owner[t.GoalID]; ok && pid == projectID {
			res = append(res, t)
		}
	}
	return res
}

func FilterTasksByGoal(tasks []entity.Task, goalID uuid.UUID) []entity.Task {
	if goalID == uuid.Nil {
		return append(make([]entity.Task, 0, len(tasks)), tasks...)
	}
	res := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.GoalID == goalID {
			res = append(res, t)
		}
	}
	return res
}

// FilterTasksByStatus returns all tasks for an empty status.
func FilterTasksByStatus(tasks []entity.Task, status entity.TaskStatus) []entity.Task {
	res := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if status == "" || t.Status == status {
			res = append(res, t)
		}
	}
	return res
}

// FilterTasksByDate keeps tasks dated on the given YYYY-MM-DD day. An empty day is no filter.
func FilterTasksByDate(tasks []entity.Task, day string) []entity.Task {
	res := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		if day == "" || DateKey(t.Date) == day {
			res = append(res, t)
		}
	}
	return res
}

// FilterTasksInRange keeps tasks with from <= date < to.
func FilterTasksInRange(tasks []entity.Task, from, to time.Time) []entity.Task {
	res := make([]entity.Task, 0)
	for _, t := range tasks {
		if inRange(t.Date, from, to) {
			res = append(res, t)
		}
	}
	return res
}

// FilterChoresByActive matches is_active against *activeOnly, or returns all chores when it is nil.
func FilterChoresByActive(chores []entity.Chore, activeOnly *bool) []entity.Chore {
	res := make([]entity.Chore, 0, len(chores))
	for _, c := range chores {
		if activeOnly == nil || c.IsActive == *activeOnly {
			res = append(res, c)
		}
	}
	return res
}

// FilterChoreLogsByDate keeps logs whose UTC calendar day equals day (YYYY-MM-DD).
func FilterChoreLogsByDate(logs []entity.ChoreLog, day string) []entity.ChoreLog {
	res := make([]entity.ChoreLog, 0)
	for _, l := range logs {
		if DateKey(l.Date) == day {
			res = append(res, l)
		}
	}
	return res
}

func FilterChoreLogsByChore(logs []entity.ChoreLog, choreID uuid.UUID) []entity.ChoreLog {
	res := make([]entity.ChoreLog, 0)
	for _, l := range logs {
		if l.ChoreID == choreID {
			res = append(res, l)
		}
	}
	return res
}

func FilterChoreLogsInRange(logs []entity.ChoreLog, from, to time.Time) []entity.ChoreLog {
	res := make([]entity.ChoreLog, 0)
	for _, l := range logs {
		if inRange(l.Date, from, to) {
			res = append(res, l)
		}
	}
	return res
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
