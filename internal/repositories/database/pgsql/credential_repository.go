package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCredentialRepository reads and updates the credential columns that live
// on the students and admins tables. It is the only repository that touches
// password_hash.
type PgxCredentialRepository struct {
	BaseRepository
}

func newPgxCredentialRepository(db *pgxpool.Pool) portsrepo.CredentialRepositoryFacade {
	return &PgxCredentialRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CredentialRepositoryFacade = (*PgxCredentialRepository)(nil)

// tableForKind maps a principal kind to its account table. The table name is
// taken from a fixed map, never from input, so it is safe to splice into SQL.
func tableForKind(kind domain.PrincipalKind) (string, error) {
	switch kind {
	case domain.KindStudent:
		return "students", nil
	case domain.KindAdmin:
		return "admins", nil
	default:
		return "", fmt.Errorf("unknown principal kind %q", kind)
	}
}

func (r *PgxCredentialRepository) FindCredential(ctx context.Context, kind domain.PrincipalKind, principalID string) (*domain.Credential, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT password_hash, must_change_password
		FROM ` + table + `
		WHERE username = $1;
	`
	cred := domain.Credential{
		PrincipalKind: kind,
		PrincipalID:   principalID,
	}
	err = r.Pool.QueryRow(ctx, query, principalID).Scan(&cred.PasswordHash, &cred.MustChangePassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find credential: %w", err)
	}
	return &cred, nil
}

func (r *PgxCredentialRepository) UpdatePasswordHash(ctx context.Context, kind domain.PrincipalKind, principalID string, newHash string) error {
	table, err := tableForKind(kind)
	if err != nil {
		return err
	}

	query := `
		UPDATE ` + table + `
		SET password_hash = $2,
			must_change_password = FALSE,
			last_updated_at = NOW(),
			last_updated_by = $1
		WHERE username = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, principalID, newHash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
