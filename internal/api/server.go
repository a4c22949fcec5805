package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/dailyos/internal/service"
)

const (
	defaultRequestTimeout = 15 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx                  *chi.Mux
	dashboardService    service.DashboardServiceI
	goalsService        service.GoalsServiceI
	projectsService     service.ProjectsServiceI
	timeTrackingService service.TimeTrackingServiceI
	choresService       service.ChoresServiceI
	tasksService        service.TasksServiceI
	tokenInspector      TokenInspectorI
	upstream            UpstreamPingerI

	now                  func() time.Time
	requestTimeout       time.Duration
	serviceTokenFallback bool
}

type ServicesList struct {
	DashboardService    service.DashboardServiceI
	GoalsService        service.GoalsServiceI
	ProjectsService     service.ProjectsServiceI
	TimeTrackingService service.TimeTrackingServiceI
	ChoresService       service.ChoresServiceI
	TasksService        service.TasksServiceI
	TokenInspector      TokenInspectorI
	// Optional, enables /health/upstream
	Upstream UpstreamPingerI
}

type Option func(*Server)

// WithClock replaces time.Now as the reference time for reports.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithServiceTokenFallback lets requests without an Authorization header
// reach the backend with the configured service token. Off by default.
func WithServiceTokenFallback(enabled bool) Option {
	return func(s *Server) {
		s.serviceTokenFallback = enabled
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	if servicesOptions == nil || servicesOptions.DashboardService == nil || servicesOptions.GoalsService == nil ||
		servicesOptions.ProjectsService == nil || servicesOptions.TimeTrackingService == nil ||
		servicesOptions.ChoresService == nil || servicesOptions.TasksService == nil ||
		servicesOptions.TokenInspector == nil {
		log.Fatal("provided incomplete services list")
	}
	s := &Server{
		mx:                  chi.NewMux(),
		dashboardService:    servicesOptions.DashboardService,
		goalsService:        servicesOptions.GoalsService,
		projectsService:     servicesOptions.ProjectsService,
		timeTrackingService: servicesOptions.TimeTrackingService,
		choresService:       servicesOptions.ChoresService,
		tasksService:        servicesOptions.TasksService,
		tokenInspector:      servicesOptions.TokenInspector,
		upstream:            servicesOptions.Upstream,
		now:                 time.Now,
		requestTimeout:      defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mountEndpoints()
	return s
}

func (s *Server) mountEndpoints() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)

	s.mx.Get("/health", s.Health)
	if s.upstream != nil {
		s.mx.Get("/health/upstream", s.UpstreamHealth)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.UpstreamTokenMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/dashboard/summary", s.DashboardSummary)
		r.Get("/dashboard/time-by-project", s.TimeByProject)
		r.Get("/projects/progress", s.ProjectsProgress)
		r.Get("/goals/progress", s.GoalsProgress)
		r.Get("/goals/{id}/progress", s.GoalProgress)
		r.Post("/allocations/check", s.CheckAllocation)
		r.Get("/time/daily", s.DailySummary)
		r.Get("/time/weekly", s.WeeklySummary)
		r.Get("/chores/board", s.ChoreBoard)
		r.Get("/tasks", s.ListTasks)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: s.requestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("reporting api listening", slog.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down reporting api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
