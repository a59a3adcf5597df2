package services

import (
	"context"
	"io"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
)

// ProvisioningSvcFacade creates accounts. Department tagging of bulk-created
// students always derives from the uploading admin's department, never from
// the uploaded data.
type ProvisioningSvcFacade interface {
	// BulkCreateStudents parses a CSV of students and provisions one
	// account per row inside the admin's department. Only department admins
	// may upload. Row failures are reported per row, not as an overall
	// error.
	BulkCreateStudents(ctx context.Context, p domain.Principal, csvData io.Reader) (*dto.BulkCreateStudentsResponse, error)
	// CreateAdmin provisions a department admin. Gated by
	// AccessSvcFacade.CanProvisionAdmin.
	CreateAdmin(ctx context.Context, p domain.Principal, req dto.CreateAdminRequest) (*domain.Admin, error)
	// ListAdmins lists admin accounts; super admin only.
	ListAdmins(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.Admin, error)
	// ListStudents lists students inside the principal's scope filter.
	ListStudents(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.Student, error)
	// EnsureSuperAdmin seeds the bootstrap super admin if none exists yet.
	EnsureSuperAdmin(ctx context.Context, username, password, name, email string) error
}
