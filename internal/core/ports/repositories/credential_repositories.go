package repositories

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// CredentialRepositoryFacade owns the hashed-credential columns of both
// principal kinds. It never sees plaintext passwords.
type CredentialRepositoryFacade interface {
	// FindCredential returns the credential for a principal, or
	// apperrors.ErrNotFound.
	FindCredential(ctx context.Context, kind domain.PrincipalKind, principalID string) (*domain.Credential, error)
	// UpdatePasswordHash replaces the stored hash and clears the
	// must-change-password flag.
	UpdatePasswordHash(ctx context.Context, kind domain.PrincipalKind, principalID string, newHash string) error
}
