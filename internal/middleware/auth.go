package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware creates a Gin middleware handler that requires a live
// session in the given context. The token is taken from the Authorization
// bearer header. On success the session is stored in the request context and
// the request logger is enriched with the principal ID.
func SessionAuthMiddleware(sessions portssvc.SessionSvcFacade, sessionCtx domain.SessionContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, ok := bearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := sessions.RequireLogin(c.Request.Context(), sessionCtx, token)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthenticated) {
				logger.Warn("Session validation failed", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("principal_id", session.Principal.ID),
			slog.String("session_context", string(session.Context)),
		)
		ctx := withSession(c.Request.Context(), session)
		ctx = withLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionAuthAnyMiddleware accepts a live session in any of the given
// contexts. Used for routes shared by students and admins; the downstream
// handler reads the principal from the session to decide what it may do.
func SessionAuthAnyMiddleware(sessions portssvc.SessionSvcFacade, contexts ...domain.SessionContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		var session *domain.Session
		for _, sessionCtx := range contexts {
			if s, err := sessions.RequireLogin(c.Request.Context(), sessionCtx, token); err == nil {
				session = s
				break
			}
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("principal_id", session.Principal.ID),
			slog.String("session_context", string(session.Context)),
		)
		ctx := withSession(c.Request.Context(), session)
		ctx = withLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoleMiddleware gates a route group on an admin role. Must run after
// SessionAuthMiddleware for the admin context.
func RequireRoleMiddleware(sessions portssvc.SessionSvcFacade, role domain.AdminRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if _, err := sessions.RequireRole(c.Request.Context(), domain.ContextAdmin, token, role); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operation not permitted"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
