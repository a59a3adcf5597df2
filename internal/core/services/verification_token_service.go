package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
)

// tokenByteLength gives 256 bits of entropy per token value.
const tokenByteLength = 32

// verificationTokenService implements the VerificationTokenSvcFacade. Raw
// token values exist only in the returned pair; the store holds SHA-256
// hashes, so a database leak does not leak usable capabilities.
type verificationTokenService struct {
	BaseService
	tokenRepo portsrepo.VerificationTokenRepositoryFacade
}

// NewVerificationTokenService creates a new verification token service.
func NewVerificationTokenService(tokenRepo portsrepo.VerificationTokenRepositoryFacade) portssvc.VerificationTokenSvcFacade {
	return &verificationTokenService{tokenRepo: tokenRepo}
}

var _ portssvc.VerificationTokenSvcFacade = (*verificationTokenService)(nil)

// IssuePair generates the approve/reject token pair for a log record.
func (s *verificationTokenService) IssuePair(ctx context.Context, logID string) (*domain.TokenPair, error) {
	approveValue, err := utils.GenerateOpaqueToken(tokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate approve token: %w", err)
	}
	rejectValue, err := utils.GenerateOpaqueToken(tokenByteLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reject token: %w", err)
	}

	now := time.Now()
	approve := domain.VerificationToken{
		TokenHash: utils.HashToken(approveValue),
		LogID:     logID,
		Action:    domain.ActionApprove,
		CreatedAt: now,
	}
	reject := domain.VerificationToken{
		TokenHash: utils.HashToken(rejectValue),
		LogID:     logID,
		Action:    domain.ActionReject,
		CreatedAt: now,
	}

	if err := s.tokenRepo.SavePair(ctx, approve, reject); err != nil {
		if !errors.Is(err, apperrors.ErrAlreadyIssued) {
			s.LogError(ctx, err, "Failed to persist token pair", slog.String("log_id", logID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Verification token pair issued", slog.String("log_id", logID))
	return &domain.TokenPair{
		LogID:        logID,
		ApproveToken: approveValue,
		RejectToken:  rejectValue,
	}, nil
}

// Resolve maps a raw token value back to its log and action. The consumed
// check lives here, next to the lookup, so no caller can observe a token
// without also observing whether it is still live.
func (s *verificationTokenService) Resolve(ctx context.Context, tokenValue string) (*domain.TokenResolution, error) {
	token, err := s.tokenRepo.FindByHash(ctx, utils.HashToken(tokenValue))
	if err != nil {
		return nil, err
	}
	if token.Consumed {
		return nil, apperrors.ErrTokenConsumed
	}
	return &domain.TokenResolution{LogID: token.LogID, Action: token.Action}, nil
}

// Consume atomically invalidates the token and its sibling. The repository
// CAS succeeds only while both tokens of the pair are unconsumed, so exactly
// one of any number of concurrent callers wins.
func (s *verificationTokenService) Consume(ctx context.Context, tokenValue string) error {
	token, err := s.tokenRepo.FindByHash(ctx, utils.HashToken(tokenValue))
	if err != nil {
		return err
	}
	return s.tokenRepo.ConsumePair(ctx, token.LogID, time.Now())
}

// PurgeOlderThan removes stale tokens created before now-maxAge.
func (s *verificationTokenService) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	removed, err := s.tokenRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.LogError(ctx, err, "Token purge failed")
		return 0, err
	}
	if removed > 0 {
		s.LogInfo(ctx, "Purged stale verification tokens", slog.Int64("removed", removed))
	}
	return removed, nil
}
