package stats_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
)

func intPtr(v int) *int {
	return &v
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Wednesday
var now = time.Date(2025, time.March, 12, 14, 30, 0, 0, time.UTC)

var (
	workID   = uuid.New()
	healthID = uuid.New()
	idleID   = uuid.New()

	launchID  = uuid.New()
	docsID    = uuid.New()
	runningID = uuid.New()

	work = entity.Project{
		ID: workID, Name: "Work", Color: "blue",
		DailyTimeAllocatedMinutes: 240, WeeklyTimeAllocatedMinutes: 1200,
	}
	health = entity.Project{
		ID: healthID, Name: "Health", Color: "green",
		DailyTimeAllocatedMinutes: 60, WeeklyTimeAllocatedMinutes: 300,
	}
	idle = entity.Project{
		ID: idleID, Name: "Idle", Color: "gray",
	}

	launch = entity.Goal{
		ID: launchID, ProjectID: workID, Name: "Launch",
		DailyTimeAllocatedMinutes: intPtr(120),
	}
	docs = entity.Goal{
		ID: docsID, ProjectID: workID, Name: "Docs",
	}
	running = entity.Goal{
		ID: runningID, ProjectID: healthID, Name: "Running",
		WeeklyTimeAllocatedMinutes: intPtr(180),
	}
)

func task(goalID uuid.UUID, status entity.TaskStatus, day time.Time, minutes int) entity.Task {
	return entity.Task{
		ID:                uuid.New(),
		GoalID:            goalID,
		Name:              "task",
		Status:            status,
		Date:              day,
		ActualTimeMinutes: minutes,
	}
}

func snapshot() stats.Snapshot {
	return stats.Snapshot{
		Projects: []entity.Project{work, health, idle},
		Goals:    []entity.Goal{launch, docs, running},
		Tasks: []entity.Task{
			// this week, today
			task(launchID, entity.TaskDone, date(2025, time.March, 12), 90),
			task(launchID, entity.TaskPlanned, date(2025, time.March, 12), 45),
			// this week, Monday
			task(docsID, entity.TaskDone, date(2025, time.March, 10), 30),
			task(runningID, entity.TaskDone, date(2025, time.March, 11), 40),
			// previous week
			task(runningID, entity.TaskDone, date(2025, time.March, 9), 50),
			task(launchID, entity.TaskPlanned, date(2025, time.March, 3), 0),
		},
	}
}
