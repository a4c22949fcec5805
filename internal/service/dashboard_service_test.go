package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/service"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	t.Run("aggregates all collections", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), repository.GoalFilter{}).Return(testGoals, nil)
		m.tasks.EXPECT().List(gomock.Any(), repository.TaskFilter{}).Return(testTasks, nil)
		m.chores.EXPECT().List(gomock.Any(), repository.ChoreFilter{}).Return(testChores, nil)
		m.choreLogs.EXPECT().List(gomock.Any(), repository.ChoreLogFilter{
			DateFrom: day(2025, time.March, 10),
			DateTo:   day(2025, time.March, 17),
		}).Return(testChoreLogs, nil)

		ds := service.NewDashboardService(repos, stats.OrderByMinutesDesc)
		sum, err := ds.Summary(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, sum.Projects.Total)
		assert.Equal(t, 3, sum.Tasks.Total)
		assert.Equal(t, 66.7, sum.Tasks.CompletionRate)
		assert.Equal(t, 2, sum.Tasks.ThisWeek.Total)
		assert.Equal(t, 90, sum.Time.ThisWeek.LoggedMinutes)
		assert.Equal(t, 10.0, sum.Time.ThisWeek.AllocationRate)
		assert.Equal(t, stats.ChoreWeek{Completed: 1, TimeMinutes: 20}, sum.Chores.ThisWeek)
		require.Len(t, sum.TimeByProject, 2)
		assert.Equal(t, workID, sum.TimeByProject[0].ProjectID)
	})
	t.Run("logs on the week boundary", func(t *testing.T) {
		repos, m := newRepos(t)
		logs := append([]entity.ChoreLog{
			{ID: uuid.New(), ChoreID: choreID, Date: day(2025, time.March, 16), ActualTimeMinutes: 0},
			{ID: uuid.New(), ChoreID: choreID, Date: day(2025, time.March, 17), ActualTimeMinutes: 40},
		}, testChoreLogs...)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), gomock.Any()).Return(testGoals, nil)
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(testTasks, nil)
		m.chores.EXPECT().List(gomock.Any(), gomock.Any()).Return(testChores, nil)
		m.choreLogs.EXPECT().List(gomock.Any(), gomock.Any()).Return(logs, nil)

		ds := service.NewDashboardService(repos, stats.OrderByMinutesDesc)
		sum, err := ds.Summary(ctx, now)
		require.NoError(t, err)
		// Sunday counts, the following Monday does not
		assert.Equal(t, stats.ChoreWeek{Completed: 2, TimeMinutes: 20}, sum.Chores.ThisWeek)
	})
	t.Run("upstream failure", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(nil, errorvalues.ErrUnauthorized)
		m.goals.EXPECT().List(gomock.Any(), gomock.Any()).Return(testGoals, nil).AnyTimes()
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(testTasks, nil).AnyTimes()
		m.chores.EXPECT().List(gomock.Any(), gomock.Any()).Return(testChores, nil).AnyTimes()
		m.choreLogs.EXPECT().List(gomock.Any(), gomock.Any()).Return(testChoreLogs, nil).AnyTimes()

		ds := service.NewDashboardService(repos, stats.OrderByMinutesDesc)
		_, err := ds.Summary(ctx, now)
		assert.ErrorIs(t, err, errorvalues.ErrUnauthorized)
	})
}

func TestDashboardTimeByProject(t *testing.T) {
	ctx := context.Background()
	t.Run("look-back window", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), gomock.Any()).Return(testGoals, nil)
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(testTasks, nil)

		ds := service.NewDashboardService(repos, stats.OrderByInput)
		res, err := ds.TimeByProject(ctx, &service.TimeByProjectRequest{Days: 7}, now)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, 90, res[0].MinutesLogged)
		// the only Health task is older than a week
		assert.Equal(t, 0, res[1].MinutesLogged)
	})
	t.Run("all time", func(t *testing.T) {
		repos, m := newRepos(t)
		m.projects.EXPECT().List(gomock.Any()).Return(testProjects, nil)
		m.goals.EXPECT().List(gomock.Any(), gomock.Any()).Return(testGoals, nil)
		m.tasks.EXPECT().List(gomock.Any(), gomock.Any()).Return(testTasks, nil)

		ds := service.NewDashboardService(repos, stats.OrderByInput)
		res, err := ds.TimeByProject(ctx, &service.TimeByProjectRequest{}, now)
		require.NoError(t, err)
		assert.Equal(t, 30, res[1].MinutesLogged)
	})
	t.Run("invalid window", func(t *testing.T) {
		repos, _ := newRepos(t)
		ds := service.NewDashboardService(repos, stats.OrderByInput)
		_, err := ds.TimeByProject(ctx, &service.TimeByProjectRequest{Days: -1}, now)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
}
