package services_test

import (
	"context"
	"testing"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CredentialServiceTestSuite struct {
	suite.Suite
	mockCredRepo *MockCredentialRepository
	service      portssvc.CredentialSvcFacade
}

func (suite *CredentialServiceTestSuite) SetupTest() {
	suite.mockCredRepo = new(MockCredentialRepository)
	suite.service = services.NewCredentialService(suite.mockCredRepo, nil)
}

func (suite *CredentialServiceTestSuite) TestVerify_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-1")
	suite.Require().NoError(err)

	stored := &domain.Credential{
		PrincipalKind:      domain.KindStudent,
		PrincipalID:        "alice",
		PasswordHash:       hash,
		MustChangePassword: true,
	}
	suite.mockCredRepo.On("FindCredential", ctx, domain.KindStudent, "alice").Return(stored, nil).Once()

	cred, err := suite.service.Verify(ctx, domain.KindStudent, "alice", "correct-horse-1")

	suite.Require().NoError(err)
	suite.True(cred.MustChangePassword)
	suite.mockCredRepo.AssertExpectations(suite.T())
}

func (suite *CredentialServiceTestSuite) TestVerify_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse-1")
	suite.Require().NoError(err)

	stored := &domain.Credential{PrincipalKind: domain.KindStudent, PrincipalID: "alice", PasswordHash: hash}
	suite.mockCredRepo.On("FindCredential", ctx, domain.KindStudent, "alice").Return(stored, nil).Once()

	cred, err := suite.service.Verify(ctx, domain.KindStudent, "alice", "wrong-password1")

	suite.Require().Error(err)
	suite.Nil(cred)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockCredRepo.AssertExpectations(suite.T())
}

func (suite *CredentialServiceTestSuite) TestVerify_UnknownPrincipalLooksLikeWrongPassword() {
	ctx := context.Background()
	suite.mockCredRepo.On("FindCredential", ctx, domain.KindAdmin, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	cred, err := suite.service.Verify(ctx, domain.KindAdmin, "ghost", "whatever1")

	suite.Require().Error(err)
	suite.Nil(cred)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockCredRepo.AssertExpectations(suite.T())
}

func (suite *CredentialServiceTestSuite) TestSetPassword_Success() {
	ctx := context.Background()
	suite.mockCredRepo.On("UpdatePasswordHash", ctx, domain.KindStudent, "alice", mock.MatchedBy(func(hash string) bool {
		return hash != "new-password-9" && utils.CheckPasswordHash("new-password-9", hash)
	})).Return(nil).Once()

	err := suite.service.SetPassword(ctx, domain.KindStudent, "alice", "new-password-9")

	suite.Require().NoError(err)
	suite.mockCredRepo.AssertExpectations(suite.T())
}

func (suite *CredentialServiceTestSuite) TestSetPassword_WeakPasswordRejectedBeforeStore() {
	ctx := context.Background()

	err := suite.service.SetPassword(ctx, domain.KindStudent, "alice", "short")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrWeakPassword)
	suite.mockCredRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CredentialServiceTestSuite) TestSetPassword_NoDigitRejected() {
	ctx := context.Background()

	err := suite.service.SetPassword(ctx, domain.KindAdmin, "root", "allletters")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrWeakPassword)
}

func (suite *CredentialServiceTestSuite) TestSetPassword_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockCredRepo.On("UpdatePasswordHash", ctx, domain.KindStudent, "alice", mock.AnythingOfType("string")).Return(expectedErr).Once()

	err := suite.service.SetPassword(ctx, domain.KindStudent, "alice", "new-password-9")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockCredRepo.AssertExpectations(suite.T())
}

func TestCredentialServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialServiceTestSuite))
}
