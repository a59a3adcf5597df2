package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
)

// csvHeader is the expected column order of a student upload.
var csvHeader = []string{"username", "name", "email", "supervisor_email", "temp_password"}

// provisioningService implements the ProvisioningSvcFacade.
type provisioningService struct {
	BaseService
	studentRepo portsrepo.StudentRepositoryFacade
	adminRepo   portsrepo.AdminRepositoryFacade
	access      portssvc.AccessSvcFacade
	strength    portssvc.PasswordStrengthValidator
}

// NewProvisioningService creates a new provisioning service.
func NewProvisioningService(
	studentRepo portsrepo.StudentRepositoryFacade,
	adminRepo portsrepo.AdminRepositoryFacade,
	access portssvc.AccessSvcFacade,
	strength portssvc.PasswordStrengthValidator,
) portssvc.ProvisioningSvcFacade {
	if strength == nil {
		strength = DefaultPasswordPolicy{}
	}
	return &provisioningService{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		access:      access,
		strength:    strength,
	}
}

var _ portssvc.ProvisioningSvcFacade = (*provisioningService)(nil)

// BulkCreateStudents provisions one student per CSV row inside the admin's
// own department. The department is never read from the upload: isolation
// depends on it deriving from the authenticated principal.
func (s *provisioningService) BulkCreateStudents(ctx context.Context, p domain.Principal, csvData io.Reader) (*dto.BulkCreateStudentsResponse, error) {
	if p.Kind != domain.KindAdmin || p.Role != domain.RoleDepartmentAdmin {
		// Super admins carry the ALL sentinel, which is not a legal student
		// department, so bulk upload is department-admin only.
		return nil, apperrors.ErrForbidden
	}

	reader := csv.NewReader(csvData)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read CSV header", apperrors.ErrValidation)
	}
	if !matchesHeader(header) {
		return nil, fmt.Errorf("%w: CSV header must be %q", apperrors.ErrValidation, strings.Join(csvHeader, ","))
	}

	result := &dto.BulkCreateStudentsResponse{Rows: []dto.BulkRowResult{}}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Failed++
			result.Rows = append(result.Rows, dto.BulkRowResult{Line: line, Error: err.Error()})
			continue
		}

		rowResult := s.createStudentFromRow(ctx, p, row, line)
		if rowResult.Created {
			result.Created++
		} else {
			result.Failed++
		}
		result.Rows = append(result.Rows, rowResult)
	}

	s.LogInfo(ctx, "Bulk student provisioning finished",
		slog.String("department", p.Department),
		slog.Int("created", result.Created),
		slog.Int("failed", result.Failed))
	return result, nil
}

func (s *provisioningService) createStudentFromRow(ctx context.Context, p domain.Principal, row []string, line int) dto.BulkRowResult {
	username := strings.TrimSpace(row[0])
	name := strings.TrimSpace(row[1])
	email := strings.TrimSpace(row[2])
	supervisorEmail := strings.TrimSpace(row[3])
	tempPassword := row[4]

	res := dto.BulkRowResult{Line: line, Username: username}
	if username == "" || name == "" || email == "" || supervisorEmail == "" {
		res.Error = "missing required field"
		return res
	}
	if !strings.Contains(supervisorEmail, "@") || !strings.Contains(email, "@") {
		res.Error = "invalid email address"
		return res
	}
	if err := s.strength.Validate(tempPassword); err != nil {
		res.Error = "temporary password too weak"
		return res
	}

	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		res.Error = "failed to hash temporary password"
		return res
	}

	now := time.Now()
	student := domain.Student{
		Username:        username,
		Name:            name,
		Email:           email,
		SupervisorEmail: supervisorEmail,
		Department:      p.Department,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     p.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: p.ID,
		},
	}

	if err := s.studentRepo.SaveStudent(ctx, student, hash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			res.Error = "username already exists"
		} else {
			s.LogError(ctx, err, "Failed to save student", slog.Int("line", line))
			res.Error = "failed to create student"
		}
		return res
	}

	res.Created = true
	return res
}

// CreateAdmin provisions a department admin. Super admin only.
func (s *provisioningService) CreateAdmin(ctx context.Context, p domain.Principal, req dto.CreateAdminRequest) (*domain.Admin, error) {
	if !s.access.CanProvisionAdmin(p) {
		return nil, apperrors.ErrForbidden
	}
	department := strings.ToUpper(strings.TrimSpace(req.Department))
	if department == "" || department == domain.DepartmentAll {
		return nil, fmt.Errorf("%w: department must be a concrete department code", apperrors.ErrValidation)
	}
	if err := s.strength.Validate(req.TempPassword); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.TempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	now := time.Now()
	admin := domain.Admin{
		Username:   req.Username,
		Name:       req.Name,
		Email:      req.Email,
		Department: department,
		Role:       domain.RoleDepartmentAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     p.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: p.ID,
		},
	}

	if err := s.adminRepo.SaveAdmin(ctx, admin, hash); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save admin", slog.String("username", req.Username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Department admin provisioned",
		slog.String("username", admin.Username),
		slog.String("department", admin.Department))
	return &admin, nil
}

// ListAdmins lists admin accounts. Super admin only.
func (s *provisioningService) ListAdmins(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.Admin, error) {
	if !s.access.CanProvisionAdmin(p) {
		return nil, apperrors.ErrForbidden
	}
	admins, err := s.adminRepo.FindAdmins(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list admins")
		return nil, err
	}
	if admins == nil {
		admins = []domain.Admin{}
	}
	return admins, nil
}

// ListStudents lists students inside the principal's scope filter.
func (s *provisioningService) ListStudents(ctx context.Context, p domain.Principal, limit, offset int) ([]domain.Student, error) {
	if p.Kind != domain.KindAdmin {
		return nil, apperrors.ErrForbidden
	}
	students, err := s.studentRepo.FindStudents(ctx, s.access.ScopeFilter(p), limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list students")
		return nil, err
	}
	if students == nil {
		students = []domain.Student{}
	}
	return students, nil
}

// EnsureSuperAdmin seeds the bootstrap super admin when none exists yet.
func (s *provisioningService) EnsureSuperAdmin(ctx context.Context, username, password, name, email string) error {
	if username == "" || password == "" {
		return nil
	}
	count, err := s.adminRepo.CountSuperAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count super admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	now := time.Now()
	admin := domain.Admin{
		Username:   username,
		Name:       name,
		Email:      email,
		Department: domain.DepartmentAll,
		Role:       domain.RoleSuperAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     username,
			LastUpdatedAt: now,
			LastUpdatedBy: username,
		},
	}
	if err := s.adminRepo.SaveAdmin(ctx, admin, hash); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return err
	}
	s.LogInfo(ctx, "Bootstrap super admin created", slog.String("username", username))
	return nil
}

func matchesHeader(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), csvHeader[i]) {
			return false
		}
	}
	return true
}
