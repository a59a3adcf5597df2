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

// uniqueViolationCode is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

type PgxStudentRepository struct {
	BaseRepository
}

func newPgxStudentRepository(db *pgxpool.Pool) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

const selectStudentFields = `
	username, name, email, supervisor_email, department,
	created_at, created_by, last_updated_at, last_updated_by
`

func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student, passwordHash string) error {
	modelStudent := mapping.ToModelStudent(student)
	query := `
		INSERT INTO students (
			username, name, email, supervisor_email, department,
			password_hash, must_change_password,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelStudent.Username,
		modelStudent.Name,
		modelStudent.Email,
		modelStudent.SupervisorEmail,
		modelStudent.Department,
		passwordHash,
		modelStudent.CreatedAt,
		modelStudent.CreatedBy,
		modelStudent.LastUpdatedAt,
		modelStudent.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save student: %w", err)
	}
	return nil
}

func (r *PgxStudentRepository) FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error) {
	query := `
		SELECT ` + selectStudentFields + `
		FROM students
		WHERE username = $1;
	`
	modelStudent, err := scanStudent(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find student %s: %w", username, err)
	}

	domainStudent := mapping.ToDomainStudent(*modelStudent)
	return &domainStudent, nil
}

func (r *PgxStudentRepository) FindStudents(ctx context.Context, filter domain.DepartmentFilter, limit, offset int) ([]domain.Student, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + selectStudentFields + `
		FROM students
		WHERE ($1 OR department = $2)
		ORDER BY created_at DESC, username
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, filter.All, filter.Department, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var modelStudents []models.Student
	for rows.Next() {
		modelStudent, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		modelStudents = append(modelStudents, *modelStudent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate student rows: %w", err)
	}

	return mapping.ToDomainStudentSlice(modelStudents), nil
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var m models.Student
	err := row.Scan(
		&m.Username,
		&m.Name,
		&m.Email,
		&m.SupervisorEmail,
		&m.Department,
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
