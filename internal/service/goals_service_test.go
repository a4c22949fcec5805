package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/service"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGoalProgress(t *testing.T) {
	ctx := context.Background()
	t.Run("filtered by project", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), repository.GoalFilter{ProjectID: workID}).Return(testGoals[:1], nil)
		m.tasks.EXPECT().List(gomock.Any(), repository.TaskFilter{ProjectID: workID}).Return(testTasks[:2], nil)

		gs := service.NewGoalsService(repos)
		reports, err := gs.ListGoalProgress(ctx, &service.GoalProgressRequest{ProjectID: workID.String()}, now)
		require.NoError(t, err)
		require.Len(t, reports, 1)

		rep := reports[0]
		assert.Equal(t, launchID, rep.Goal.ID)
		assert.Equal(t, stats.Progress{Completed: 1, Total: 2, Percentage: 50}, rep.Progress)
		assert.Equal(t, stats.DeadlineUpcoming, rep.Deadline.State)
		assert.Equal(t, 2, rep.Deadline.DaysRemaining)
		assert.True(t, rep.Deadline.DueSoon)
		assert.Equal(t, "cannot exceed project daily allocation (120 min)", rep.AllocationWarning)
	})
	t.Run("unknown project", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		gs := service.NewGoalsService(repos)
		_, err := gs.ListGoalProgress(ctx, &service.GoalProgressRequest{ProjectID: uuid.NewString()}, now)
		assert.ErrorIs(t, err, errorvalues.ErrProjectNotFound)
	})
	t.Run("malformed project id", func(t *testing.T) {
		repos, _ := newRepos(t)
		gs := service.NewGoalsService(repos)
		_, err := gs.ListGoalProgress(ctx, &service.GoalProgressRequest{ProjectID: "nope"}, now)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
}

func TestGetGoalProgress(t *testing.T) {
	ctx := context.Background()
	t.Run("goal whose project is gone", func(t *testing.T) {
		repos, m := newRepos(t)
		m.goals.EXPECT().GetByID(gomock.Any(), runID).Return(&testGoals[1], nil)
		m.tasks.EXPECT().List(gomock.Any(), repository.TaskFilter{GoalID: runID}).Return(testTasks[2:], nil)
		m.projects.EXPECT().GetByID(gomock.Any(), healthID).Return(nil, errorvalues.ErrProjectNotFound)

		gs := service.NewGoalsService(repos)
		rep, err := gs.GetGoalProgress(ctx, runID, now)
		require.NoError(t, err)
		assert.Equal(t, 100.0, rep.Progress.Percentage)
		assert.Equal(t, stats.DeadlineNone, rep.Deadline.State)
		assert.Empty(t, rep.AllocationWarning)
	})
	t.Run("goal not found", func(t *testing.T) {
		repos, m := newRepos(t)
		id := uuid.New()
		m.goals.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrGoalNotFound)

		gs := service.NewGoalsService(repos)
		_, err := gs.GetGoalProgress(ctx, id, now)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
	t.Run("tasks upstream failure", func(t *testing.T) {
		repos, m := newRepos(t)
		m.goals.EXPECT().GetByID(gomock.Any(), launchID).Return(&testGoals[0], nil)
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUpstreamFailure)
		m.projects.EXPECT().GetByID(gomock.Any(), workID).Return(&testProjects[0], nil).AnyTimes()

		gs := service.NewGoalsService(repos)
		_, err := gs.GetGoalProgress(ctx, launchID, now)
		assert.ErrorIs(t, err, errorvalues.ErrUpstreamFailure)
	})
}

func TestCheckAllocation(t *testing.T) {
	ctx := context.Background()
	t.Run("daily over the project budget", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().GetByID(gomock.Any(), workID).Return(&testProjects[0], nil)

		gs := service.NewGoalsService(repos)
		check, err := gs.CheckAllocation(ctx, &service.AllocationCheckRequest{
			ProjectID:                  workID.String(),
			DailyTimeAllocatedMinutes:  intPtr(150),
			WeeklyTimeAllocatedMinutes: intPtr(500),
		})
		require.NoError(t, err)
		assert.False(t, check.OK)
		assert.False(t, check.Daily.OK)
		assert.True(t, check.Weekly.OK)
		assert.Equal(t, 120, *check.Daily.Limit)
		assert.Equal(t, "cannot exceed project daily allocation (120 min)", check.Message)
		assert.True(t, errors.Is(check.Daily.Err(), errorvalues.ErrAllocationExceeded))
	})
	t.Run("weekly over the project budget", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().GetByID(gomock.Any(), healthID).Return(&testProjects[1], nil)

		gs := service.NewGoalsService(repos)
		check, err := gs.CheckAllocation(ctx, &service.AllocationCheckRequest{
			ProjectID:                  healthID.String(),
			WeeklyTimeAllocatedMinutes: intPtr(301),
		})
		require.NoError(t, err)
		assert.False(t, check.OK)
		assert.Equal(t, "cannot exceed project weekly allocation (300 min)", check.Message)
	})
	t.Run("no project is unconstrained", func(t *testing.T) {
		repos, _ := newRepos(t)
		gs := service.NewGoalsService(repos)
		check, err := gs.CheckAllocation(ctx, &service.AllocationCheckRequest{
			DailyTimeAllocatedMinutes: intPtr(1000),
		})
		require.NoError(t, err)
		assert.True(t, check.OK)
		assert.False(t, check.Daily.Constrained)
		assert.Nil(t, check.Daily.Limit)
		assert.Empty(t, check.Message)
	})
	t.Run("unknown project", func(t *testing.T) {
		repos, m := newRepos(t)
		id := uuid.New()
		m.projects.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrProjectNotFound)

		gs := service.NewGoalsService(repos)
		_, err := gs.CheckAllocation(ctx, &service.AllocationCheckRequest{ProjectID: id.String()})
		assert.ErrorIs(t, err, errorvalues.ErrProjectNotFound)
	})
	t.Run("out of range minutes", func(t *testing.T) {
		repos, _ := newRepos(t)
		gs := service.NewGoalsService(repos)
		_, err := gs.CheckAllocation(ctx, &service.AllocationCheckRequest{
			DailyTimeAllocatedMinutes: intPtr(1441),
		})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
}
