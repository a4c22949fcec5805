package stats

import (
	"github.com/limbo/dailyos/pkg/entity"
)

type Progress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

func progressOf(tasks []entity.Task) Progress {
	var p Progress
	for i := range tasks {
		p.Total++
		if tasks[i].Done() {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// GoalProgress counts the tasks attached to goal. Percentage is 0 when the goal has no tasks.
func GoalProgress(goal entity.Goal, tasks []entity.Task) Progress {
	own := make([]entity.Task, 0)
	for _, t := range tasks {
		if t.GoalID == goal.ID {
			own = append(own, t)
		}
	}
	return progressOf(own)
}

// ProjectProgress counts tasks whose goal, looked up in goals, belongs to project.
func ProjectProgress(project entity.Project, goals []entity.Goal, tasks []entity.Task) Progress {
	owner := GoalProjectIndex(goals)
	own := make([]entity.Task, 0)
	for _, t := range tasks {
		if pid, ok := owner[t.GoalID]; ok && pid == project.ID {
			own = append(own, t)
		}
	}
	return progressOf(own)
}
