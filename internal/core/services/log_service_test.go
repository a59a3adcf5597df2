package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LogServiceTestSuite struct {
	suite.Suite
	mockLogRepo        *MockLogRepository
	mockStudentRepo    *MockStudentRepository
	mockSupervisorRepo *MockSupervisorRepository
	mockTokens         *MockTokenService
	mockMailer         *MockMailer
	service            portssvc.LogSvcFacade
}

func (suite *LogServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockLogRepository)
	suite.mockStudentRepo = new(MockStudentRepository)
	suite.mockSupervisorRepo = new(MockSupervisorRepository)
	suite.mockTokens = new(MockTokenService)
	suite.mockMailer = new(MockMailer)

	suite.service = services.NewLogService(
		suite.mockLogRepo,
		suite.mockStudentRepo,
		suite.mockSupervisorRepo,
		suite.mockTokens,
		services.NewAccessService(),
		suite.mockMailer,
		"https://wla.example.edu/",
	)
}

func (suite *LogServiceTestSuite) alice() *domain.Student {
	return &domain.Student{
		Username:        "alice",
		Name:            "Alice",
		Email:           "alice@example.edu",
		SupervisorEmail: "supervisor@example.com",
		Department:      "PHYS",
	}
}

// --- Submit ---

func (suite *LogServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	suite.mockStudentRepo.On("FindStudentByUsername", ctx, "alice").Return(suite.alice(), nil).Once()

	var savedRecord domain.LogRecord
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(r domain.LogRecord) bool {
		savedRecord = r
		return r.OwnerID == "alice" && r.Department == "PHYS" && r.State == domain.LogStatePending && r.PeriodKey == "2026-W10"
	})).Return(nil).Once()

	pair := &domain.TokenPair{ApproveToken: "approve-raw", RejectToken: "reject-raw"}
	suite.mockTokens.On("IssuePair", ctx, mock.AnythingOfType("string")).Return(pair, nil).Once()
	suite.mockSupervisorRepo.On("UpsertSupervisor", ctx, mock.MatchedBy(func(s domain.Supervisor) bool {
		return s.Email == "supervisor@example.com"
	})).Return(nil).Once()

	var sentMail portssvc.VerificationMail
	suite.mockMailer.On("SendVerificationRequest", ctx, mock.MatchedBy(func(m portssvc.VerificationMail) bool {
		sentMail = m
		return m.Recipient == "supervisor@example.com"
	})).Return(nil).Once()

	result, err := suite.service.Submit(ctx, studentPrincipal("alice", "PHYS"), "did experiments", "2026-W10")

	suite.Require().NoError(err)
	suite.True(result.EmailSent)
	suite.Equal(savedRecord.LogID, result.Record.LogID)
	suite.Equal(domain.LogStatePending, result.Record.State)
	suite.True(strings.HasPrefix(sentMail.ApproveLink, "https://wla.example.edu/verify?token="))
	suite.Contains(sentMail.ApproveLink, "approve-raw")
	suite.Contains(sentMail.RejectLink, "reject-raw")
	suite.mockLogRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestSubmit_DefaultsToCurrentPeriod() {
	ctx := context.Background()
	suite.mockStudentRepo.On("FindStudentByUsername", ctx, "alice").Return(suite.alice(), nil).Once()

	expectedPeriod := domain.CurrentPeriodKey(time.Now())
	suite.mockLogRepo.On("SaveLog", ctx, mock.MatchedBy(func(r domain.LogRecord) bool {
		return r.PeriodKey == expectedPeriod
	})).Return(nil).Once()
	suite.mockTokens.On("IssuePair", ctx, mock.AnythingOfType("string")).Return(&domain.TokenPair{ApproveToken: "a", RejectToken: "b"}, nil).Once()
	suite.mockSupervisorRepo.On("UpsertSupervisor", ctx, mock.Anything).Return(nil).Once()
	suite.mockMailer.On("SendVerificationRequest", ctx, mock.Anything).Return(nil).Once()

	result, err := suite.service.Submit(ctx, studentPrincipal("alice", "PHYS"), "content", "")

	suite.Require().NoError(err)
	suite.Equal(expectedPeriod, result.Record.PeriodKey)
}

func (suite *LogServiceTestSuite) TestSubmit_NonStudentForbidden() {
	ctx := context.Background()

	result, err := suite.service.Submit(ctx, adminPrincipal("root", domain.RoleSuperAdmin, domain.DepartmentAll), "content", "")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "SaveLog")
}

func (suite *LogServiceTestSuite) TestSubmit_EmptyContentRejected() {
	ctx := context.Background()

	result, err := suite.service.Submit(ctx, studentPrincipal("alice", "PHYS"), "   ", "2026-W10")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LogServiceTestSuite) TestSubmit_DuplicatePeriod() {
	ctx := context.Background()
	suite.mockStudentRepo.On("FindStudentByUsername", ctx, "alice").Return(suite.alice(), nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.LogRecord")).Return(apperrors.ErrDuplicatePeriod).Once()

	result, err := suite.service.Submit(ctx, studentPrincipal("alice", "PHYS"), "content", "2026-W10")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicatePeriod)
	suite.mockTokens.AssertNotCalled(suite.T(), "IssuePair")
}

func (suite *LogServiceTestSuite) TestSubmit_MailFailureKeepsRecord() {
	ctx := context.Background()
	suite.mockStudentRepo.On("FindStudentByUsername", ctx, "alice").Return(suite.alice(), nil).Once()
	suite.mockLogRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.LogRecord")).Return(nil).Once()
	suite.mockTokens.On("IssuePair", ctx, mock.AnythingOfType("string")).Return(&domain.TokenPair{ApproveToken: "a", RejectToken: "b"}, nil).Once()
	suite.mockSupervisorRepo.On("UpsertSupervisor", ctx, mock.Anything).Return(nil).Once()
	suite.mockMailer.On("SendVerificationRequest", ctx, mock.Anything).Return(assert.AnError).Once()

	result, err := suite.service.Submit(ctx, studentPrincipal("alice", "PHYS"), "content", "2026-W10")

	// The submission stands; only the dispatch flag reports the failure.
	suite.Require().NoError(err)
	suite.False(result.EmailSent)
	suite.Equal(domain.LogStatePending, result.Record.State)
}

// --- ApplyToken ---

func (suite *LogServiceTestSuite) pendingRecord() *domain.LogRecord {
	return &domain.LogRecord{
		LogID:      "log-1",
		OwnerID:    "alice",
		Department: "PHYS",
		PeriodKey:  "2026-W10",
		Content:    "did experiments",
		State:      domain.LogStatePending,
		CreatedAt:  time.Now().Add(-time.Hour),
	}
}

func (suite *LogServiceTestSuite) TestApplyToken_ApproveSuccess() {
	ctx := context.Background()
	suite.mockTokens.On("Resolve", ctx, "raw-value").Return(&domain.TokenResolution{LogID: "log-1", Action: domain.ActionApprove}, nil).Once()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(suite.pendingRecord(), nil).Once()
	suite.mockTokens.On("Consume", ctx, "raw-value").Return(nil).Once()
	suite.mockLogRepo.On("TransitionFromPending", ctx, "log-1", domain.LogStateApproved, mock.AnythingOfType("time.Time")).Return(nil).Once()

	record, err := suite.service.ApplyToken(ctx, "raw-value")

	suite.Require().NoError(err)
	suite.Equal(domain.LogStateApproved, record.State)
	suite.Require().NotNil(record.DecidedAt)
	suite.mockLogRepo.AssertExpectations(suite.T())
	suite.mockTokens.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestApplyToken_RejectSuccess() {
	ctx := context.Background()
	suite.mockTokens.On("Resolve", ctx, "raw-value").Return(&domain.TokenResolution{LogID: "log-1", Action: domain.ActionReject}, nil).Once()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(suite.pendingRecord(), nil).Once()
	suite.mockTokens.On("Consume", ctx, "raw-value").Return(nil).Once()
	suite.mockLogRepo.On("TransitionFromPending", ctx, "log-1", domain.LogStateRejected, mock.AnythingOfType("time.Time")).Return(nil).Once()

	record, err := suite.service.ApplyToken(ctx, "raw-value")

	suite.Require().NoError(err)
	suite.Equal(domain.LogStateRejected, record.State)
}

func (suite *LogServiceTestSuite) TestApplyToken_ConsumedToken() {
	ctx := context.Background()
	suite.mockTokens.On("Resolve", ctx, "raw-value").Return(nil, apperrors.ErrTokenConsumed).Once()

	record, err := suite.service.ApplyToken(ctx, "raw-value")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrTokenConsumed)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "TransitionFromPending")
}

func (suite *LogServiceTestSuite) TestApplyToken_RecordNoLongerPending() {
	ctx := context.Background()
	decided := suite.pendingRecord()
	decided.State = domain.LogStateApproved

	suite.mockTokens.On("Resolve", ctx, "raw-value").Return(&domain.TokenResolution{LogID: "log-1", Action: domain.ActionReject}, nil).Once()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(decided, nil).Once()

	record, err := suite.service.ApplyToken(ctx, "raw-value")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	// A stale token against a decided record must not consume the pair.
	suite.mockTokens.AssertNotCalled(suite.T(), "Consume", mock.Anything, mock.Anything)
}

func (suite *LogServiceTestSuite) TestApplyToken_LosesConsumeRace() {
	ctx := context.Background()
	suite.mockTokens.On("Resolve", ctx, "raw-value").Return(&domain.TokenResolution{LogID: "log-1", Action: domain.ActionApprove}, nil).Once()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(suite.pendingRecord(), nil).Once()
	suite.mockTokens.On("Consume", ctx, "raw-value").Return(apperrors.ErrTokenConsumed).Once()

	record, err := suite.service.ApplyToken(ctx, "raw-value")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrTokenConsumed)
	suite.mockLogRepo.AssertNotCalled(suite.T(), "TransitionFromPending")
}

// --- List ---

func (suite *LogServiceTestSuite) TestList_StudentSeesOnlyOwnRecords() {
	ctx := context.Background()

	suite.mockLogRepo.On("FindLogs", ctx,
		domain.MatchDepartment("PHYS"),
		mock.MatchedBy(func(f portsrepo.LogListFilter) bool {
			// The owner filter is forced to the caller regardless of input.
			return f.OwnerID == "alice" && f.Limit == 20
		}),
	).Return([]domain.LogRecord{*suite.pendingRecord()}, nil).Once()

	filter := portsrepo.LogListFilter{OwnerID: "bob"}
	records, err := suite.service.List(ctx, studentPrincipal("alice", "PHYS"), filter)

	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *LogServiceTestSuite) TestList_SuperAdminUnscoped() {
	ctx := context.Background()
	suite.mockLogRepo.On("FindLogs", ctx,
		domain.MatchAllDepartments(),
		mock.AnythingOfType("repositories.LogListFilter"),
	).Return([]domain.LogRecord{}, nil).Once()

	records, err := suite.service.List(ctx, adminPrincipal("root", domain.RoleSuperAdmin, domain.DepartmentAll), portsrepo.LogListFilter{})

	suite.Require().NoError(err)
	suite.NotNil(records)
}

func (suite *LogServiceTestSuite) TestList_ClampsLimit() {
	ctx := context.Background()
	suite.mockLogRepo.On("FindLogs", ctx,
		domain.MatchDepartment("PHYS"),
		mock.MatchedBy(func(f portsrepo.LogListFilter) bool { return f.Limit == 100 }),
	).Return([]domain.LogRecord{}, nil).Once()

	_, err := suite.service.List(ctx, adminPrincipal("phys-admin", domain.RoleDepartmentAdmin, "PHYS"), portsrepo.LogListFilter{Limit: 5000})

	suite.Require().NoError(err)
	suite.mockLogRepo.AssertExpectations(suite.T())
}

// --- GetLog ---

func (suite *LogServiceTestSuite) TestGetLog_OwnerReads() {
	ctx := context.Background()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(suite.pendingRecord(), nil).Once()

	record, err := suite.service.GetLog(ctx, studentPrincipal("alice", "PHYS"), "log-1")

	suite.Require().NoError(err)
	suite.Equal("log-1", record.LogID)
}

func (suite *LogServiceTestSuite) TestGetLog_OutOfScopeForbidden() {
	ctx := context.Background()
	suite.mockLogRepo.On("FindLogByID", ctx, "log-1").Return(suite.pendingRecord(), nil).Once()

	record, err := suite.service.GetLog(ctx, adminPrincipal("chem-admin", domain.RoleDepartmentAdmin, "CHEM"), "log-1")

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LogServiceTestSuite))
}
