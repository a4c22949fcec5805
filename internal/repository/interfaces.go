package repository

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/dailyos/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type ProjectsRepositoryI interface {
	// Lists every project the upstream token can see
	List(ctx context.Context) ([]entity.Project, error)
	// Looks up project by id. Returns ErrProjectNotFound for unknown ids
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
}

type GoalsRepositoryI interface {
	// Lists goals, optionally narrowed to one project
	List(ctx context.Context, filter GoalFilter) ([]entity.Goal, error)
	// Looks up goal by id. Returns ErrGoalNotFound for unknown ids
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
}

type TasksRepositoryI interface {
	// Lists tasks, optionally narrowed to a goal or a project
	List(ctx context.Context, filter TaskFilter) ([]entity.Task, error)
}

type ChoresRepositoryI interface {
	List(ctx context.Context, filter ChoreFilter) ([]entity.Chore, error)
}

type ChoreLogsRepositoryI interface {
	// Lists chore logs, optionally narrowed to a chore and an inclusive datetime range
	List(ctx context.Context, filter ChoreLogFilter) ([]entity.ChoreLog, error)
}

// Zero-valued fields mean "no filter".
type GoalFilter struct {
	ProjectID uuid.UUID
}

type TaskFilter struct {
	GoalID    uuid.UUID
	ProjectID uuid.UUID
}

type ChoreFilter struct {
	IsActive *bool
}

type ChoreLogFilter struct {
	ChoreID  uuid.UUID
	DateFrom time.Time
	DateTo   time.Time
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APICfg struct {
	Address  string
	Token    string
	Timeout  time.Duration
	PageSize int
}

func (cfg *APICfg) Endpoint() string {
	return strings.TrimRight(cfg.Address, "/") + "/api/v1"
}
