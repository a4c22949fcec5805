// @title DailyOS insights API
// @description Read-only progress, allocation and time reports over the DailyOS backend
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/dailyos/internal/api"
	"github.com/limbo/dailyos/internal/repository"
	"github.com/limbo/dailyos/internal/service"
	"github.com/limbo/dailyos/internal/stats"
	"github.com/limbo/dailyos/pkg/cleanup"
	"github.com/limbo/dailyos/pkg/config"
	jwtservice "github.com/limbo/dailyos/pkg/jwt_service"
	"github.com/limbo/dailyos/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger := logging.Setup(cfg.GetString("LOG_LEVEL"), cfg.GetString("LOG_FORMAT"))

	apiCfg := repository.APICfg{
		Address:  cfg.GetString("DAILYOS_API_URL"),
		Token:    cfg.GetString("DAILYOS_API_TOKEN"),
		Timeout:  cfg.GetDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		PageSize: cfg.GetInt("UPSTREAM_PAGE_SIZE", 100),
	}
	client := repository.NewClient(&apiCfg)
	repos := &service.Repositories{
		Projects:  repository.NewProjectsRepo(client),
		Goals:     repository.NewGoalsRepo(client),
		Tasks:     repository.NewTasksRepo(client),
		Chores:    repository.NewChoresRepo(client),
		ChoreLogs: repository.NewChoreLogsRepo(client),
	}
	order := stats.ParseBreakdownOrder(cfg.GetString("BREAKDOWN_ORDER"))

	serv := api.New(&api.ServicesList{
		DashboardService:    service.NewDashboardService(repos, order),
		GoalsService:        service.NewGoalsService(repos),
		ProjectsService:     service.NewProjectsService(repos),
		TimeTrackingService: service.NewTimeTrackingService(repos),
		ChoresService:       service.NewChoresService(repos),
		TasksService:        service.NewTasksService(repos),
		TokenInspector:      jwtservice.New(),
		Upstream:            client,
	},
		api.WithRequestTimeout(cfg.GetDuration("REQUEST_TIMEOUT", 15*time.Second)),
		api.WithServiceTokenFallback(cfg.GetBool("ALLOW_SERVICE_TOKEN_FALLBACK", false)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	cleanup.CleanUp()
	if err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
