package services

import (
	"context"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// VerificationTokenSvcFacade mints and redeems the single-use approve/reject
// capabilities. It is the only component that ever sees raw token values; the
// log lifecycle manager never mints tokens directly.
type VerificationTokenSvcFacade interface {
	// IssuePair generates two high-entropy opaque values bound to the log,
	// one per action. Fails with apperrors.ErrAlreadyIssued when an
	// unconsumed pair already exists.
	IssuePair(ctx context.Context, logID string) (*domain.TokenPair, error)
	// Resolve maps a raw token value back to its log and action. Fails with
	// apperrors.ErrTokenNotFound or apperrors.ErrTokenConsumed; the
	// consumed check is colocated with resolution on purpose.
	Resolve(ctx context.Context, tokenValue string) (*domain.TokenResolution, error)
	// Consume atomically invalidates the token and its sibling. Exactly one
	// concurrent caller per pair succeeds; losers observe
	// apperrors.ErrTokenConsumed.
	Consume(ctx context.Context, tokenValue string) error
	// PurgeOlderThan removes stale tokens created before now-maxAge.
	// Hygiene only; correctness never depends on purging.
	PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)
}
