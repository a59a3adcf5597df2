package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	"github.com/WeeklyLogs/weekly_log_app/internal/models"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(db *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

const selectAdminFields = `
	username, name, email, department, role,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin, passwordHash string) error {
	modelAdmin := mapping.ToModelAdmin(admin)
	query := `
		INSERT INTO admins (
			username, name, email, department, role,
			password_hash, must_change_password,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAdmin.Username,
		modelAdmin.Name,
		modelAdmin.Email,
		modelAdmin.Department,
		modelAdmin.Role,
		passwordHash,
		modelAdmin.CreatedAt,
		modelAdmin.CreatedBy,
		modelAdmin.LastUpdatedAt,
		modelAdmin.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save admin: %w", err)
	}
	return nil
}

func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT ` + selectAdminFields + `
		FROM admins
		WHERE username = $1;
	`
	modelAdmin, err := scanAdmin(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin %s: %w", username, err)
	}

	domainAdmin := mapping.ToDomainAdmin(*modelAdmin)
	return &domainAdmin, nil
}

func (r *PgxAdminRepository) FindAdmins(ctx context.Context, limit, offset int) ([]domain.Admin, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + selectAdminFields + `
		FROM admins
		ORDER BY created_at DESC, username
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	var modelAdmins []models.Admin
	for rows.Next() {
		modelAdmin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		modelAdmins = append(modelAdmins, *modelAdmin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate admin rows: %w", err)
	}

	return mapping.ToDomainAdminSlice(modelAdmins), nil
}

func (r *PgxAdminRepository) CountSuperAdmins(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM admins WHERE role = $1;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, string(domain.RoleSuperAdmin)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count super admins: %w", err)
	}
	return count, nil
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var m models.Admin
	err := row.Scan(
		&m.Username,
		&m.Name,
		&m.Email,
		&m.Department,
		&m.Role,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
