package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
)

// credentialService implements the CredentialSvcFacade. Plaintext passwords
// never leave this package and are never logged.
type credentialService struct {
	BaseService
	credentialRepo portsrepo.CredentialRepositoryFacade
	strength       portssvc.PasswordStrengthValidator
}

// NewCredentialService creates a new credential service. A nil strength
// validator falls back to the default policy.
func NewCredentialService(credentialRepo portsrepo.CredentialRepositoryFacade, strength portssvc.PasswordStrengthValidator) portssvc.CredentialSvcFacade {
	if strength == nil {
		strength = DefaultPasswordPolicy{}
	}
	return &credentialService{
		credentialRepo: credentialRepo,
		strength:       strength,
	}
}

var _ portssvc.CredentialSvcFacade = (*credentialService)(nil)

// Verify checks a plaintext password against the stored bcrypt hash. Unknown
// principals and wrong passwords are indistinguishable to the caller.
func (s *credentialService) Verify(ctx context.Context, kind domain.PrincipalKind, principalID, plaintext string) (*domain.Credential, error) {
	cred, err := s.credentialRepo.FindCredential(ctx, kind, principalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to load credential",
			slog.String("principal_kind", string(kind)))
		return nil, fmt.Errorf("failed to load credential: %w", err)
	}

	if !utils.CheckPasswordHash(plaintext, cred.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return cred, nil
}

// SetPassword validates the new password against the pluggable policy,
// replaces the stored hash and clears the forced-change flag.
func (s *credentialService) SetPassword(ctx context.Context, kind domain.PrincipalKind, principalID, newPlaintext string) error {
	if err := s.strength.Validate(newPlaintext); err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPlaintext)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.credentialRepo.UpdatePasswordHash(ctx, kind, principalID, hash); err != nil {
		s.LogError(ctx, err, "Failed to update password hash",
			slog.String("principal_kind", string(kind)),
			slog.String("principal_id", principalID))
		return err
	}

	s.LogInfo(ctx, "Password updated",
		slog.String("principal_kind", string(kind)),
		slog.String("principal_id", principalID))
	return nil
}

// DefaultPasswordPolicy is the built-in strength validator: at least eight
// characters containing both a letter and a digit.
type DefaultPasswordPolicy struct{}

var _ portssvc.PasswordStrengthValidator = DefaultPasswordPolicy{}

// Validate implements PasswordStrengthValidator.
func (DefaultPasswordPolicy) Validate(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: must be at least 8 characters", apperrors.ErrWeakPassword)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: must contain a letter and a digit", apperrors.ErrWeakPassword)
	}
	return nil
}
