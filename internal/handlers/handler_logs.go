package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// logHandler handles HTTP requests for log records.
type logHandler struct {
	logService portssvc.LogSvcFacade
}

func newLogHandler(ls portssvc.LogSvcFacade) *logHandler {
	return &logHandler{logService: ls}
}

// registerLogRoutes registers log routes shared by both session contexts.
// The service layer decides per principal what each operation may touch.
func registerLogRoutes(rg *gin.RouterGroup, logService portssvc.LogSvcFacade) {
	h := newLogHandler(logService)

	logs := rg.Group("/logs")
	{
		logs.POST("", h.submitLog)
		logs.GET("", h.listLogs)
		logs.GET("/:logID", h.getLog)
	}
}

// submitLog godoc
// @Summary Submit a weekly log
// @Description Creates a pending log for the period and emails the supervisor a verification request.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body dto.SubmitLogRequest true "Log submission"
// @Success 201 {object} dto.SubmitLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Not a student session"
// @Failure 409 {object} ErrorResponse "A log already exists for this period"
// @Security BearerAuth
// @Router /logs [post]
func (h *logHandler) submitLog(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.logService.Submit(c.Request.Context(), session.Principal, req.Content, req.PeriodKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only students submit logs"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitLogResponse{
		Log:       dto.ToLogResponse(result.Record),
		EmailSent: result.EmailSent,
	})
}

// listLogs godoc
// @Summary List log records
// @Description Lists logs inside the caller's scope: students see their own, department admins their department, super admins everything.
// @Tags logs
// @Produce json
// @Param periodKey query string false "Filter by period key"
// @Param state query string false "Filter by state" Enums(pending, approved, rejected)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [get]
func (h *logHandler) listLogs(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var params dto.ListLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.logService.List(c.Request.Context(), session.Principal, portsrepo.LogListFilter{
		PeriodKey: params.PeriodKey,
		State:     domain.LogState(params.State),
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list logs", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListLogsResponse(records))
}

// getLog godoc
// @Summary Get a log record
// @Description Retrieves one log. Records outside the caller's scope are reported as not found.
// @Tags logs
// @Produce json
// @Param logID path string true "Log ID"
// @Success 200 {object} dto.LogResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs/{logID} [get]
func (h *logHandler) getLog(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	record, err := h.logService.GetLog(c.Request.Context(), session.Principal, c.Param("logID"))
	if err != nil {
		// ErrForbidden intentionally falls through to the 404 mapping.
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLogResponse(record))
}
