package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	"github.com/WeeklyLogs/weekly_log_app/internal/models"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVerificationTokenRepository struct {
	BaseRepository
}

func newPgxVerificationTokenRepository(db *pgxpool.Pool) portsrepo.VerificationTokenRepositoryFacade {
	return &PgxVerificationTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VerificationTokenRepositoryFacade = (*PgxVerificationTokenRepository)(nil)

const insertTokenQuery = `
	INSERT INTO verification_tokens (
		token_hash, log_id, action, consumed, created_at, consumed_at
	) VALUES ($1, $2, $3, $4, $5, $6);
`

// SavePair inserts both tokens in one transaction. The unique index on
// (log_id, action) turns a second issuance for the same log into
// ErrAlreadyIssued.
func (r *PgxVerificationTokenRepository) SavePair(ctx context.Context, approve, reject domain.VerificationToken) error {
	if approve.LogID != reject.LogID {
		return fmt.Errorf("token pair spans two logs: %s and %s", approve.LogID, reject.LogID)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, token := range []domain.VerificationToken{approve, reject} {
		m := mapping.ToModelVerificationToken(token)
		_, err := tx.Exec(ctx, insertTokenQuery,
			m.TokenHash, m.LogID, m.Action, m.Consumed, m.CreatedAt, m.ConsumedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return apperrors.ErrAlreadyIssued
			}
			return fmt.Errorf("failed to save verification token: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxVerificationTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error) {
	query := `
		SELECT token_hash, log_id, action, consumed, created_at, consumed_at
		FROM verification_tokens
		WHERE token_hash = $1;
	`
	var m models.VerificationToken
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&m.TokenHash, &m.LogID, &m.Action, &m.Consumed, &m.CreatedAt, &m.ConsumedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to find verification token: %w", err)
	}

	token := mapping.ToDomainVerificationToken(m)
	return &token, nil
}

// ConsumePair is a compare-and-swap over both tokens of a log. The update
// only touches rows that are still unconsumed, so of any number of concurrent
// callers exactly one sees two affected rows and wins.
func (r *PgxVerificationTokenRepository) ConsumePair(ctx context.Context, logID string, consumedAt time.Time) error {
	query := `
		UPDATE verification_tokens
		SET consumed = TRUE, consumed_at = $2
		WHERE log_id = $1 AND consumed = FALSE;
	`
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, query, logID, consumedAt)
	if err != nil {
		return fmt.Errorf("failed to consume token pair: %w", err)
	}
	switch tag.RowsAffected() {
	case 2:
		return r.Commit(ctx, tx)
	case 0:
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM verification_tokens WHERE log_id = $1);`
		if err := tx.QueryRow(ctx, checkQuery, logID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check token pair existence: %w", err)
		}
		if !exists {
			return apperrors.ErrTokenNotFound
		}
		return apperrors.ErrTokenConsumed
	default:
		// A half-consumed pair means a previous invariant was broken; refuse
		// to make it worse.
		return apperrors.ErrTokenConsumed
	}
}

// DeleteOlderThan removes tokens created before the cutoff whose record no
// longer needs them: consumed tokens, and tokens of records that already left
// the pending state.
func (r *PgxVerificationTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM verification_tokens vt
		USING logs l
		WHERE vt.log_id = l.log_id
			AND vt.created_at < $1
			AND (vt.consumed OR l.state <> $2);
	`
	tag, err := r.Pool.Exec(ctx, query, cutoff, string(domain.LogStatePending))
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale verification tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
