package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
	"github.com/google/uuid"
)

// sessionService implements the SessionSvcFacade. Live sessions are held in
// an in-process store keyed by opaque session ID; clients hold a signed JWT
// wrapping that ID, one token per context. The student and admin contexts
// are disjoint namespaces: the token audience and the stored session context
// must both match for any check to pass.
type sessionService struct {
	BaseService
	cfg         *config.Config
	credentials portssvc.CredentialSvcFacade
	studentRepo portsrepo.StudentRepositoryFacade
	adminRepo   portsrepo.AdminRepositoryFacade

	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionService creates a new session service.
func NewSessionService(
	cfg *config.Config,
	credentials portssvc.CredentialSvcFacade,
	studentRepo portsrepo.StudentRepositoryFacade,
	adminRepo portsrepo.AdminRepositoryFacade,
) portssvc.SessionSvcFacade {
	return &sessionService{
		cfg:         cfg,
		credentials: credentials,
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		sessions:    make(map[string]*domain.Session),
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Login verifies credentials and opens a session in the given context.
func (s *sessionService) Login(ctx context.Context, sessionCtx domain.SessionContext, kind domain.PrincipalKind, principalID, plaintext string) (*portssvc.LoginResult, error) {
	// The student context only ever holds student principals and the admin
	// context only admins. A mismatch is reported as a credential failure so
	// callers cannot probe which kind a username belongs to.
	if !contextAcceptsKind(sessionCtx, kind) {
		return nil, apperrors.ErrInvalidCredentials
	}

	cred, err := s.credentials.Verify(ctx, kind, principalID, plaintext)
	if err != nil {
		return nil, err
	}

	principal, err := s.loadPrincipal(ctx, kind, principalID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		SessionID: uuid.NewString(),
		Context:   sessionCtx,
		Principal: *principal,
		IssuedAt:  time.Now(),
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, string(sessionCtx), s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.SessionExpiryDuration)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token")
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.mu.Lock()
	s.pruneExpiredLocked()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	s.LogInfo(ctx, "Session opened",
		slog.String("session_context", string(sessionCtx)),
		slog.String("principal_id", principal.ID))

	return &portssvc.LoginResult{
		Session:            session,
		Token:              token,
		MustChangePassword: cred.MustChangePassword,
	}, nil
}

// Logout destroys the session the token refers to. Unknown or invalid tokens
// are a no-op, never an error.
func (s *sessionService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseSessionJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	delete(s.sessions, claims.Subject)
	s.mu.Unlock()
	return nil
}

// Current returns the live session for the token, or nil when there is none.
func (s *sessionService) Current(ctx context.Context, token string) *domain.Session {
	claims, err := utils.ParseSessionJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return nil
	}

	s.mu.RLock()
	session, ok := s.sessions[claims.Subject]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	// The token audience and the stored context must agree; a signed token
	// replayed against the wrong context resolves to nothing.
	if len(claims.Audience) != 1 || claims.Audience[0] != string(session.Context) {
		return nil
	}
	return session
}

// RequireLogin returns the live session for the token if it belongs to the
// given context.
func (s *sessionService) RequireLogin(ctx context.Context, sessionCtx domain.SessionContext, token string) (*domain.Session, error) {
	session := s.Current(ctx, token)
	if session == nil || session.Context != sessionCtx {
		return nil, apperrors.ErrUnauthenticated
	}
	return session, nil
}

// RequireRole additionally demands an admin role.
func (s *sessionService) RequireRole(ctx context.Context, sessionCtx domain.SessionContext, token string, role domain.AdminRole) (*domain.Session, error) {
	session, err := s.RequireLogin(ctx, sessionCtx, token)
	if err != nil {
		return nil, err
	}
	if session.Principal.Kind != domain.KindAdmin || session.Principal.Role != role {
		return nil, apperrors.ErrForbidden
	}
	return session, nil
}

func (s *sessionService) loadPrincipal(ctx context.Context, kind domain.PrincipalKind, principalID string) (*domain.Principal, error) {
	switch kind {
	case domain.KindStudent:
		student, err := s.studentRepo.FindStudentByUsername(ctx, principalID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		p := student.Principal()
		return &p, nil
	case domain.KindAdmin:
		admin, err := s.adminRepo.FindAdminByUsername(ctx, principalID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		p := admin.Principal()
		return &p, nil
	default:
		return nil, apperrors.ErrInvalidCredentials
	}
}

// pruneExpiredLocked drops sessions past the configured expiry. Their tokens
// are already rejected by JWT validation; this only keeps the store bounded.
// Caller must hold mu.
func (s *sessionService) pruneExpiredLocked() {
	cutoff := time.Now().Add(-s.cfg.SessionExpiryDuration)
	for id, session := range s.sessions {
		if session.IssuedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func contextAcceptsKind(sessionCtx domain.SessionContext, kind domain.PrincipalKind) bool {
	switch sessionCtx {
	case domain.ContextStudent:
		return kind == domain.KindStudent
	case domain.ContextAdmin:
		return kind == domain.KindAdmin
	default:
		return false
	}
}
