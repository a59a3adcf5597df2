package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// maxBulkUploadBytes caps the size of a student CSV upload.
const maxBulkUploadBytes = 1 << 20

// adminHandler handles account provisioning and the student roster.
type adminHandler struct {
	provisioning portssvc.ProvisioningSvcFacade
}

func newAdminHandler(ps portssvc.ProvisioningSvcFacade) *adminHandler {
	return &adminHandler{provisioning: ps}
}

// registerAdminRoutes registers the provisioning routes. All of them require
// an admin session; the service layer applies the finer role rules.
func registerAdminRoutes(rg *gin.RouterGroup, provisioning portssvc.ProvisioningSvcFacade) {
	h := newAdminHandler(provisioning)

	students := rg.Group("/students")
	{
		students.GET("", h.listStudents)
		students.POST("/bulk", h.bulkCreateStudents)
	}

	admins := rg.Group("/admins")
	{
		admins.GET("", h.listAdmins)
		admins.POST("", h.createAdmin)
	}
}

// bulkCreateStudents godoc
// @Summary Bulk create students from CSV
// @Description Provisions one student per CSV row inside the uploading admin's department. Department admins only.
// @Tags provisioning
// @Accept text/csv
// @Produce json
// @Success 200 {object} dto.BulkCreateStudentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /students/bulk [post]
func (h *adminHandler) bulkCreateStudents(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBulkUploadBytes)
	result, err := h.provisioning.BulkCreateStudents(c.Request.Context(), session.Principal, body)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only department admins upload students"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// listStudents godoc
// @Summary List students
// @Description Lists student accounts inside the caller's scope. Department admins see their department, super admins everything.
// @Tags provisioning
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.StudentResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /students [get]
func (h *adminHandler) listStudents(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var params dto.ListStudentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	students, err := h.provisioning.ListStudents(c.Request.Context(), session.Principal, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "operation not permitted"})
			return
		}
		respondError(c, err)
		return
	}

	responses := make([]dto.StudentResponse, len(students))
	for i := range students {
		responses[i] = dto.ToStudentResponse(&students[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createAdmin godoc
// @Summary Create a department admin
// @Description Provisions a department admin account. Super admins only.
// @Tags provisioning
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Admin details"
// @Success 201 {object} dto.AdminResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Security BearerAuth
// @Router /admins [post]
func (h *adminHandler) createAdmin(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	admin, err := h.provisioning.CreateAdmin(c.Request.Context(), session.Principal, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only super admins create admins"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrWeakPassword) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to create admin", slog.String("error", err.Error()))
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin))
}

// listAdmins godoc
// @Summary List admins
// @Description Lists admin accounts. Super admins only.
// @Tags provisioning
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AdminResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admins [get]
func (h *adminHandler) listAdmins(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var params dto.ListAdminsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	admins, err := h.provisioning.ListAdmins(c.Request.Context(), session.Principal, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "operation not permitted"})
			return
		}
		respondError(c, err)
		return
	}

	responses := make([]dto.AdminResponse, len(admins))
	for i := range admins {
		responses[i] = dto.ToAdminResponse(&admins[i])
	}
	c.JSON(http.StatusOK, responses)
}
