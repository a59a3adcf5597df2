package middleware

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionCtxKey is the key used to store the authenticated session in the
// request context.
const sessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session placed in the
// request context by SessionAuthMiddleware. It returns the session and a
// boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	session, ok := c.Request.Context().Value(sessionCtxKey).(*domain.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

func withSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, session)
}
