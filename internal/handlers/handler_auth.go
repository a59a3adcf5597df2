package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and password changes for both session
// contexts.
type AuthHandler struct {
	sessions    portssvc.SessionSvcFacade
	credentials portssvc.CredentialSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions portssvc.SessionSvcFacade, credentials portssvc.CredentialSvcFacade) *AuthHandler {
	return &AuthHandler{
		sessions:    sessions,
		credentials: credentials,
	}
}

// registerAuthRoutes sets up the routes for both authentication contexts.
func registerAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Session, services.Credential)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	student := rg.Group("/api/v1/auth/student")
	{
		student.POST("/login", limitMiddleware, h.studentLogin)
		student.POST("/logout", h.logout)
		student.POST("/password", middleware.SessionAuthMiddleware(services.Session, domain.ContextStudent), h.changePassword)
	}

	admin := rg.Group("/api/v1/auth/admin")
	{
		admin.POST("/login", limitMiddleware, h.adminLogin)
		admin.POST("/logout", h.logout)
		admin.POST("/password", middleware.SessionAuthMiddleware(services.Session, domain.ContextAdmin), h.changePassword)
	}
}

// studentLogin godoc
// @Summary Student login
// @Description Authenticates a student and opens a session in the student context.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/student/login [post]
func (h *AuthHandler) studentLogin(c *gin.Context) {
	h.login(c, domain.ContextStudent, domain.KindStudent)
}

// adminLogin godoc
// @Summary Admin login
// @Description Authenticates an admin and opens a session in the admin context.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/admin/login [post]
func (h *AuthHandler) adminLogin(c *gin.Context) {
	h.login(c, domain.ContextAdmin, domain.KindAdmin)
}

func (h *AuthHandler) login(c *gin.Context, sessionCtx domain.SessionContext, kind domain.PrincipalKind) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), sessionCtx, kind, req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:              result.Token,
		MustChangePassword: result.MustChangePassword,
	})
}

// logout godoc
// @Summary Logout
// @Description Destroys the session the bearer token refers to. Always succeeds.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/student/logout [post]
func (h *AuthHandler) logout(c *gin.Context) {
	if token, ok := bearerToken(c); ok {
		// Logout is idempotent; an invalid or stale token is not an error.
		_ = h.sessions.Logout(c.Request.Context(), token)
	}
	c.Status(http.StatusNoContent)
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the caller's password after re-verifying the current one. Clears the forced-change flag.
// @Tags auth
// @Accept json
// @Produce json
// @Param change body dto.ChangePasswordRequest true "Password Change"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/student/password [post]
func (h *AuthHandler) changePassword(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	p := session.Principal
	if _, err := h.credentials.Verify(c.Request.Context(), p.Kind, p.ID, req.CurrentPassword); err != nil {
		respondError(c, err)
		return
	}
	if err := h.credentials.SetPassword(c.Request.Context(), p.Kind, p.ID, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
