package repositories

import (
	"context"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// VerificationTokenRepositoryFacade defines persistence operations for
// verification tokens. Only token hashes cross this boundary.
type VerificationTokenRepositoryFacade interface {
	// SavePair inserts the approve/reject tokens for a log as one atomic
	// unit. Returns apperrors.ErrAlreadyIssued if an unconsumed token
	// already exists for the log.
	SavePair(ctx context.Context, approve, reject domain.VerificationToken) error
	// FindByHash returns the token or apperrors.ErrTokenNotFound.
	FindByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error)
	// ConsumePair atomically marks both tokens of a log consumed, but only
	// if both are currently unconsumed (compare-and-swap). Returns
	// apperrors.ErrTokenConsumed when the pair was already consumed and
	// apperrors.ErrTokenNotFound when no pair exists.
	ConsumePair(ctx context.Context, logID string, consumedAt time.Time) error
	// DeleteOlderThan removes consumed tokens and tokens of non-pending
	// records created before the cutoff. Returns the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
