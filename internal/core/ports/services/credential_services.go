package services

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// PasswordStrengthValidator is the pluggable policy applied to new passwords.
type PasswordStrengthValidator interface {
	// Validate returns apperrors.ErrWeakPassword (possibly wrapped) when the
	// candidate fails the policy.
	Validate(password string) error
}

// CredentialSvcFacade owns hashed-credential records for both principal kinds.
type CredentialSvcFacade interface {
	// Verify checks a plaintext password against the stored hash and returns
	// the credential on success. Fails with apperrors.ErrInvalidCredentials
	// for unknown principals and wrong passwords alike.
	Verify(ctx context.Context, kind domain.PrincipalKind, principalID, plaintext string) (*domain.Credential, error)
	// SetPassword replaces the stored hash and clears the forced-change
	// flag. Fails with apperrors.ErrWeakPassword if the strength validator
	// rejects the new password.
	SetPassword(ctx context.Context, kind domain.PrincipalKind, principalID, newPlaintext string) error
}
