package repositories

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// StudentRepositoryFacade defines persistence operations for student accounts.
type StudentRepositoryFacade interface {
	// SaveStudent inserts a new student together with its initial credential
	// hash. Returns apperrors.ErrDuplicate if the username is taken.
	SaveStudent(ctx context.Context, student domain.Student, passwordHash string) error
	// FindStudentByUsername returns the student or apperrors.ErrNotFound.
	FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error)
	// FindStudents lists students inside the department filter, newest first.
	FindStudents(ctx context.Context, filter domain.DepartmentFilter, limit, offset int) ([]domain.Student, error)
}

// AdminRepositoryFacade defines persistence operations for admin accounts.
type AdminRepositoryFacade interface {
	// SaveAdmin inserts a new admin together with its initial credential
	// hash. Returns apperrors.ErrDuplicate if the username is taken.
	SaveAdmin(ctx context.Context, admin domain.Admin, passwordHash string) error
	// FindAdminByUsername returns the admin or apperrors.ErrNotFound.
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	// FindAdmins lists admin accounts, newest first.
	FindAdmins(ctx context.Context, limit, offset int) ([]domain.Admin, error)
	// CountSuperAdmins returns the number of super admin accounts.
	CountSuperAdmins(ctx context.Context) (int, error)
}

// SupervisorRepositoryFacade registers external sign-off contacts.
type SupervisorRepositoryFacade interface {
	// UpsertSupervisor creates the supervisor on first reference; existing
	// rows are left untouched.
	UpsertSupervisor(ctx context.Context, supervisor domain.Supervisor) error
}
