package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VerificationTokenServiceTestSuite struct {
	suite.Suite
	mockTokenRepo *MockTokenRepository
	service       portssvc.VerificationTokenSvcFacade
}

func (suite *VerificationTokenServiceTestSuite) SetupTest() {
	suite.mockTokenRepo = new(MockTokenRepository)
	suite.service = services.NewVerificationTokenService(suite.mockTokenRepo)
}

func (suite *VerificationTokenServiceTestSuite) TestIssuePair_StoresHashesNotValues() {
	ctx := context.Background()
	var savedApprove, savedReject domain.VerificationToken

	suite.mockTokenRepo.On("SavePair", ctx,
		mock.AnythingOfType("domain.VerificationToken"),
		mock.AnythingOfType("domain.VerificationToken"),
	).Run(func(args mock.Arguments) {
		savedApprove = args.Get(1).(domain.VerificationToken)
		savedReject = args.Get(2).(domain.VerificationToken)
	}).Return(nil).Once()

	pair, err := suite.service.IssuePair(ctx, "log-1")

	suite.Require().NoError(err)
	suite.Equal("log-1", pair.LogID)
	suite.NotEmpty(pair.ApproveToken)
	suite.NotEmpty(pair.RejectToken)
	suite.NotEqual(pair.ApproveToken, pair.RejectToken)

	// The store only ever sees hashes.
	suite.Equal(domain.ActionApprove, savedApprove.Action)
	suite.Equal(domain.ActionReject, savedReject.Action)
	suite.Equal(utils.HashToken(pair.ApproveToken), savedApprove.TokenHash)
	suite.Equal(utils.HashToken(pair.RejectToken), savedReject.TokenHash)
	suite.NotEqual(pair.ApproveToken, savedApprove.TokenHash)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *VerificationTokenServiceTestSuite) TestIssuePair_AlreadyIssued() {
	ctx := context.Background()
	suite.mockTokenRepo.On("SavePair", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrAlreadyIssued).Once()

	pair, err := suite.service.IssuePair(ctx, "log-1")

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrAlreadyIssued)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *VerificationTokenServiceTestSuite) TestResolve_RoundTrip() {
	ctx := context.Background()
	value := "some-opaque-value"
	stored := &domain.VerificationToken{
		TokenHash: utils.HashToken(value),
		LogID:     "log-1",
		Action:    domain.ActionReject,
	}
	suite.mockTokenRepo.On("FindByHash", ctx, utils.HashToken(value)).Return(stored, nil).Once()

	resolution, err := suite.service.Resolve(ctx, value)

	suite.Require().NoError(err)
	suite.Equal("log-1", resolution.LogID)
	suite.Equal(domain.ActionReject, resolution.Action)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *VerificationTokenServiceTestSuite) TestResolve_UnknownToken() {
	ctx := context.Background()
	suite.mockTokenRepo.On("FindByHash", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrTokenNotFound).Once()

	resolution, err := suite.service.Resolve(ctx, "guessed-value")

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrTokenNotFound)
}

func (suite *VerificationTokenServiceTestSuite) TestResolve_ConsumedToken() {
	ctx := context.Background()
	value := "used-value"
	stored := &domain.VerificationToken{
		TokenHash: utils.HashToken(value),
		LogID:     "log-1",
		Action:    domain.ActionApprove,
		Consumed:  true,
	}
	suite.mockTokenRepo.On("FindByHash", ctx, utils.HashToken(value)).Return(stored, nil).Once()

	resolution, err := suite.service.Resolve(ctx, value)

	suite.Require().Error(err)
	suite.Nil(resolution)
	suite.ErrorIs(err, apperrors.ErrTokenConsumed)
}

func (suite *VerificationTokenServiceTestSuite) TestConsume_InvalidatesWholePair() {
	ctx := context.Background()
	value := "approve-value"
	stored := &domain.VerificationToken{
		TokenHash: utils.HashToken(value),
		LogID:     "log-1",
		Action:    domain.ActionApprove,
	}
	suite.mockTokenRepo.On("FindByHash", ctx, utils.HashToken(value)).Return(stored, nil).Once()
	suite.mockTokenRepo.On("ConsumePair", ctx, "log-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.Consume(ctx, value)

	suite.Require().NoError(err)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func (suite *VerificationTokenServiceTestSuite) TestConsume_LosesRace() {
	ctx := context.Background()
	value := "reject-value"
	stored := &domain.VerificationToken{
		TokenHash: utils.HashToken(value),
		LogID:     "log-1",
		Action:    domain.ActionReject,
	}
	suite.mockTokenRepo.On("FindByHash", ctx, utils.HashToken(value)).Return(stored, nil).Once()
	suite.mockTokenRepo.On("ConsumePair", ctx, "log-1", mock.AnythingOfType("time.Time")).Return(apperrors.ErrTokenConsumed).Once()

	err := suite.service.Consume(ctx, value)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTokenConsumed)
}

func (suite *VerificationTokenServiceTestSuite) TestPurgeOlderThan() {
	ctx := context.Background()
	maxAge := 90 * 24 * time.Hour

	suite.mockTokenRepo.On("DeleteOlderThan", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		expected := time.Now().Add(-maxAge)
		return cutoff.After(expected.Add(-time.Minute)) && cutoff.Before(expected.Add(time.Minute))
	})).Return(int64(3), nil).Once()

	removed, err := suite.service.PurgeOlderThan(ctx, maxAge)

	suite.Require().NoError(err)
	suite.Equal(int64(3), removed)
	suite.mockTokenRepo.AssertExpectations(suite.T())
}

func TestVerificationTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationTokenServiceTestSuite))
}
