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

type PgxLogRepository struct {
	BaseRepository
}

func newPgxLogRepository(db *pgxpool.Pool) portsrepo.LogRepositoryFacade {
	return &PgxLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LogRepositoryFacade = (*PgxLogRepository)(nil)

const selectLogFields = `
	log_id, student_username, department, period_key, content, state,
	created_at, decided_at
`

// SaveLog inserts a pending record. The unique index on
// (student_username, period_key) makes the duplicate check and the insert one
// atomic unit; a violation surfaces as ErrDuplicatePeriod.
func (r *PgxLogRepository) SaveLog(ctx context.Context, record domain.LogRecord) error {
	modelLog := mapping.ToModelLog(record)
	query := `
		INSERT INTO logs (
			log_id, student_username, department, period_key, content, state,
			created_at, decided_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLog.LogID,
		modelLog.StudentUsername,
		modelLog.Department,
		modelLog.PeriodKey,
		modelLog.Content,
		modelLog.State,
		modelLog.CreatedAt,
		modelLog.DecidedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicatePeriod
		}
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *PgxLogRepository) FindLogByID(ctx context.Context, logID string) (*domain.LogRecord, error) {
	query := `
		SELECT ` + selectLogFields + `
		FROM logs
		WHERE log_id = $1;
	`
	modelLog, err := scanLog(r.Pool.QueryRow(ctx, query, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find log %s: %w", logID, err)
	}

	domainLog := mapping.ToDomainLog(*modelLog)
	return &domainLog, nil
}

func (r *PgxLogRepository) FindLogs(ctx context.Context, scope domain.DepartmentFilter, filter portsrepo.LogListFilter) ([]domain.LogRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	query := `
		SELECT ` + selectLogFields + `
		FROM logs
		WHERE ($1 OR department = $2)
			AND ($3 = '' OR student_username = $3)
			AND ($4 = '' OR period_key = $4)
			AND ($5 = '' OR state = $5)
		ORDER BY created_at DESC, log_id
		LIMIT $6 OFFSET $7;
	`
	rows, err := r.Pool.Query(ctx, query,
		scope.All,
		scope.Department,
		filter.OwnerID,
		filter.PeriodKey,
		string(filter.State),
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	var modelLogs []models.Log
	for rows.Next() {
		modelLog, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		modelLogs = append(modelLogs, *modelLog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate log rows: %w", err)
	}

	return mapping.ToDomainLogSlice(modelLogs), nil
}

// TransitionFromPending applies a terminal state with a pending guard in the
// WHERE clause. Zero affected rows means the record is gone or no longer
// pending; the two cases are told apart with a follow-up lookup.
func (r *PgxLogRepository) TransitionFromPending(ctx context.Context, logID string, to domain.LogState, decidedAt time.Time) error {
	if !to.IsTerminal() {
		return fmt.Errorf("%w: %q is not a terminal state", apperrors.ErrInvalidState, to)
	}

	query := `
		UPDATE logs
		SET state = $2, decided_at = $3
		WHERE log_id = $1 AND state = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, logID, string(to), decidedAt, string(domain.LogStatePending))
	if err != nil {
		return fmt.Errorf("failed to transition log %s: %w", logID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.FindLogByID(ctx, logID); err != nil {
			return err
		}
		return apperrors.ErrInvalidState
	}
	return nil
}

func scanLog(row pgx.Row) (*models.Log, error) {
	var m models.Log
	err := row.Scan(
		&m.LogID,
		&m.StudentUsername,
		&m.Department,
		&m.PeriodKey,
		&m.Content,
		&m.State,
		&m.CreatedAt,
		&m.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
