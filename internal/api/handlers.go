package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/internal/service"
	"github.com/limbo/dailyos/pkg/httputil"
)

const defaultLookbackDays = 7

type AllocationCheckRequest struct {
	ProjectID                  string `json:"project_id"`
	DailyTimeAllocatedMinutes  *int   `json:"daily_time_allocated_minutes"`
	WeeklyTimeAllocatedMinutes *int   `json:"weekly_time_allocated_minutes"`
}

// writeServiceError maps service errors onto HTTP statuses. op prefixes the log line.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidRequest):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrProjectNotFound), errors.Is(err, errorvalues.ErrGoalNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrTokenExpired):
		logger.Error(op + " error: token expired")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired", nil)
	case errors.Is(err, errorvalues.ErrUnauthorized), errors.Is(err, errorvalues.ErrForbidden):
		logger.Error(op+" error: upstream refused credentials", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "upstream refused credentials", err)
	case errors.Is(err, errorvalues.ErrUpstreamFailure),
		errors.Is(err, errorvalues.ErrUpstreamBadPayload),
		errors.Is(err, context.DeadlineExceeded):
		logger.Error(op+" error: upstream failure", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "upstream unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building report", nil)
	}
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) UpstreamHealth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.upstream.Ping(ctx); err != nil {
		logger.Error("upstream health check failed", slog.String("error", err.Error()))
		httputil.WriteJSONResponse(w, http.StatusBadGateway, map[string]string{"status": "unavailable"})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	summary, err := s.dashboardService.Summary(ctx, s.now())
	if err != nil {
		writeServiceError(w, logger, "dashboard summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("dashboard summary provided")
}

func (s *Server) TimeByProject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	days := defaultLookbackDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		var err error
		days, err = strconv.Atoi(raw)
		if err != nil {
			logger.Error("time by project error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be an integer", nil)
			return
		}
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	breakdown, err := s.dashboardService.TimeByProject(ctx, &service.TimeByProjectRequest{Days: days}, s.now())
	if err != nil {
		writeServiceError(w, logger, "time by project", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, breakdown)
	logger.Info("time by project provided", slog.Int("days", days))
}

func (s *Server) ProjectsProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reports, err := s.projectsService.ListProjectProgress(ctx)
	if err != nil {
		writeServiceError(w, logger, "projects progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reports)
	logger.Info("projects progress provided")
}

func (s *Server) GoalsProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reports, err := s.goalsService.ListGoalProgress(ctx, &service.GoalProgressRequest{
		ProjectID: r.URL.Query().Get("project_id"),
	}, s.now())
	if err != nil {
		writeServiceError(w, logger, "goals progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reports)
	logger.Info("goals progress provided")
}

func (s *Server) GoalProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("goal progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.goalsService.GetGoalProgress(ctx, id, s.now())
	if err != nil {
		writeServiceError(w, logger, "goal progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("goal progress provided", slog.String("goal_id", id.String()))
}

func (s *Server) CheckAllocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AllocationCheckRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("allocation check error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	check, err := s.goalsService.CheckAllocation(ctx, &service.AllocationCheckRequest{
		ProjectID:                  req.ProjectID,
		DailyTimeAllocatedMinutes:  req.DailyTimeAllocatedMinutes,
		WeeklyTimeAllocatedMinutes: req.WeeklyTimeAllocatedMinutes,
	})
	if err != nil {
		writeServiceError(w, logger, "allocation check", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, check)
	logger.Info("allocation checked", slog.Bool("ok", check.OK))
}

func (s *Server) DailySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.timeTrackingService.DailySummary(ctx, &service.DailySummaryRequest{
		Date: r.URL.Query().Get("date"),
	}, s.now())
	if err != nil {
		writeServiceError(w, logger, "daily summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("daily summary provided", slog.String("date", report.From))
}

func (s *Server) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	report, err := s.timeTrackingService.WeeklySummary(ctx, &service.WeeklySummaryRequest{
		WeekStart: r.URL.Query().Get("week_start"),
	}, s.now())
	if err != nil {
		writeServiceError(w, logger, "weekly summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("weekly summary provided", slog.String("week_start", report.From))
}

func (s *Server) ChoreBoard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	req := service.ChoreBoardRequest{
		Date: r.URL.Query().Get("date"),
	}
	if raw := r.URL.Query().Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Error("chore board error: invalid active flag")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "active must be a boolean", nil)
			return
		}
		req.Active = &active
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	board, err := s.choresService.Board(ctx, &req, s.now())
	if err != nil {
		writeServiceError(w, logger, "chore board", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("chore board provided")
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, &service.TaskListRequest{
		ProjectID: q.Get("project_id"),
		GoalID:    q.Get("goal_id"),
		Status:    q.Get("status"),
		Date:      q.Get("date"),
	})
	if err != nil {
		writeServiceError(w, logger, "tasks list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided", slog.Int("count", len(tasks)))
}
