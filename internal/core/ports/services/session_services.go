package services

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// LoginResult carries everything the presentation layer needs after a
// successful login.
type LoginResult struct {
	Session            *domain.Session
	Token              string
	MustChangePassword bool
}

// SessionSvcFacade issues and validates the two independent session contexts.
// The Token string handed to clients is a signed wrapper around an opaque
// session ID; Current and the Require helpers resolve it against the live
// session store, so a session never outlives an explicit Logout.
type SessionSvcFacade interface {
	// Login verifies credentials and opens a session in the given context.
	// Fails with apperrors.ErrInvalidCredentials.
	Login(ctx context.Context, sessionCtx domain.SessionContext, kind domain.PrincipalKind, principalID, plaintext string) (*LoginResult, error)
	// Logout destroys the session the token refers to. Idempotent: unknown,
	// expired and already-destroyed tokens are a no-op, never an error.
	Logout(ctx context.Context, token string) error
	// Current returns the live session for the token, or nil when there is
	// none.
	Current(ctx context.Context, token string) *domain.Session
	// RequireLogin returns the live session for the token if it belongs to
	// the given context, or apperrors.ErrUnauthenticated.
	RequireLogin(ctx context.Context, sessionCtx domain.SessionContext, token string) (*domain.Session, error)
	// RequireRole additionally demands an admin role. Fails with
	// apperrors.ErrUnauthenticated when no session exists and
	// apperrors.ErrForbidden when the role does not match.
	RequireRole(ctx context.Context, sessionCtx domain.SessionContext, token string, role domain.AdminRole) (*domain.Session, error)
}
