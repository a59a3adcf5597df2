package services_test

import (
	"context"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock CredentialRepository ---

type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) FindCredential(ctx context.Context, kind domain.PrincipalKind, principalID string) (*domain.Credential, error) {
	args := m.Called(ctx, kind, principalID)
	var cred *domain.Credential
	if args.Get(0) != nil {
		cred = args.Get(0).(*domain.Credential)
	}
	return cred, args.Error(1)
}

func (m *MockCredentialRepository) UpdatePasswordHash(ctx context.Context, kind domain.PrincipalKind, principalID string, newHash string) error {
	args := m.Called(ctx, kind, principalID, newHash)
	return args.Error(0)
}

// --- Mock StudentRepository ---

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) SaveStudent(ctx context.Context, student domain.Student, passwordHash string) error {
	args := m.Called(ctx, student, passwordHash)
	return args.Error(0)
}

func (m *MockStudentRepository) FindStudentByUsername(ctx context.Context, username string) (*domain.Student, error) {
	args := m.Called(ctx, username)
	var student *domain.Student
	if args.Get(0) != nil {
		student = args.Get(0).(*domain.Student)
	}
	return student, args.Error(1)
}

func (m *MockStudentRepository) FindStudents(ctx context.Context, filter domain.DepartmentFilter, limit, offset int) ([]domain.Student, error) {
	args := m.Called(ctx, filter, limit, offset)
	var students []domain.Student
	if args.Get(0) != nil {
		students = args.Get(0).([]domain.Student)
	}
	return students, args.Error(1)
}

// --- Mock AdminRepository ---

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin, passwordHash string) error {
	args := m.Called(ctx, admin, passwordHash)
	return args.Error(0)
}

func (m *MockAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	var admin *domain.Admin
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdminRepository) FindAdmins(ctx context.Context, limit, offset int) ([]domain.Admin, error) {
	args := m.Called(ctx, limit, offset)
	var admins []domain.Admin
	if args.Get(0) != nil {
		admins = args.Get(0).([]domain.Admin)
	}
	return admins, args.Error(1)
}

func (m *MockAdminRepository) CountSuperAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Mock SupervisorRepository ---

type MockSupervisorRepository struct {
	mock.Mock
}

func (m *MockSupervisorRepository) UpsertSupervisor(ctx context.Context, supervisor domain.Supervisor) error {
	args := m.Called(ctx, supervisor)
	return args.Error(0)
}

// --- Mock LogRepository ---

type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) SaveLog(ctx context.Context, record domain.LogRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLogRepository) FindLogByID(ctx context.Context, logID string) (*domain.LogRecord, error) {
	args := m.Called(ctx, logID)
	var record *domain.LogRecord
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.LogRecord)
	}
	return record, args.Error(1)
}

func (m *MockLogRepository) FindLogs(ctx context.Context, scope domain.DepartmentFilter, filter portsrepo.LogListFilter) ([]domain.LogRecord, error) {
	args := m.Called(ctx, scope, filter)
	var records []domain.LogRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.LogRecord)
	}
	return records, args.Error(1)
}

func (m *MockLogRepository) TransitionFromPending(ctx context.Context, logID string, to domain.LogState, decidedAt time.Time) error {
	args := m.Called(ctx, logID, to, decidedAt)
	return args.Error(0)
}

// --- Mock VerificationTokenRepository ---

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) SavePair(ctx context.Context, approve, reject domain.VerificationToken) error {
	args := m.Called(ctx, approve, reject)
	return args.Error(0)
}

func (m *MockTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.VerificationToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.VerificationToken)
	}
	return token, args.Error(1)
}

func (m *MockTokenRepository) ConsumePair(ctx context.Context, logID string, consumedAt time.Time) error {
	args := m.Called(ctx, logID, consumedAt)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock VerificationTokenService ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssuePair(ctx context.Context, logID string) (*domain.TokenPair, error) {
	args := m.Called(ctx, logID)
	var pair *domain.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*domain.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockTokenService) Resolve(ctx context.Context, tokenValue string) (*domain.TokenResolution, error) {
	args := m.Called(ctx, tokenValue)
	var res *domain.TokenResolution
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.TokenResolution)
	}
	return res, args.Error(1)
}

func (m *MockTokenService) Consume(ctx context.Context, tokenValue string) error {
	args := m.Called(ctx, tokenValue)
	return args.Error(0)
}

func (m *MockTokenService) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	args := m.Called(ctx, maxAge)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock VerificationMailer ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationRequest(ctx context.Context, mail portssvc.VerificationMail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

// compile-time interface checks for the mocks
var (
	_ portsrepo.CredentialRepositoryFacade        = (*MockCredentialRepository)(nil)
	_ portsrepo.StudentRepositoryFacade           = (*MockStudentRepository)(nil)
	_ portsrepo.AdminRepositoryFacade             = (*MockAdminRepository)(nil)
	_ portsrepo.SupervisorRepositoryFacade        = (*MockSupervisorRepository)(nil)
	_ portsrepo.LogRepositoryFacade               = (*MockLogRepository)(nil)
	_ portsrepo.VerificationTokenRepositoryFacade = (*MockTokenRepository)(nil)
	_ portssvc.VerificationTokenSvcFacade         = (*MockTokenService)(nil)
	_ portssvc.VerificationMailer                 = (*MockMailer)(nil)
)
