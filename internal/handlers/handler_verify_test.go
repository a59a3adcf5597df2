package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/WeeklyLogs/weekly_log_app/internal/handlers"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LogService ---

type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) Submit(ctx context.Context, p domain.Principal, content, periodKey string) (*portssvc.SubmitResult, error) {
	args := m.Called(ctx, p, content, periodKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SubmitResult), args.Error(1)
}

func (m *MockLogService) ApplyToken(ctx context.Context, tokenValue string) (*domain.LogRecord, error) {
	args := m.Called(ctx, tokenValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LogRecord), args.Error(1)
}

func (m *MockLogService) List(ctx context.Context, p domain.Principal, filter portsrepo.LogListFilter) ([]domain.LogRecord, error) {
	args := m.Called(ctx, p, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LogRecord), args.Error(1)
}

func (m *MockLogService) GetLog(ctx context.Context, p domain.Principal, logID string) (*domain.LogRecord, error) {
	args := m.Called(ctx, p, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LogRecord), args.Error(1)
}

var _ portssvc.LogSvcFacade = (*MockLogService)(nil)

// --- Test Suite ---

type VerifyHandlerTestSuite struct {
	suite.Suite
	mockLogService *MockLogService
	router         *gin.Engine
}

func (suite *VerifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLogService = new(MockLogService)

	// IsProduction skips the swagger setup; the session-backed routes are
	// registered but never hit by these tests.
	cfg := &config.Config{IsProduction: true}
	services := &portssvc.ServiceContainer{Log: suite.mockLogService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *VerifyHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *VerifyHandlerTestSuite) TestVerify_Success() {
	decidedAt := time.Now()
	record := &domain.LogRecord{
		LogID:     "log-1",
		PeriodKey: "2026-W10",
		State:     domain.LogStateApproved,
		DecidedAt: &decidedAt,
	}
	suite.mockLogService.On("ApplyToken", mock.Anything, "raw-token").Return(record, nil).Once()

	w := suite.get("/verify?token=raw-token")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VerifyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("recorded", resp.Result)
	suite.Equal("2026-W10", resp.PeriodKey)
	suite.Equal("approved", resp.State)
	suite.mockLogService.AssertExpectations(suite.T())
}

func (suite *VerifyHandlerTestSuite) TestVerify_MissingToken() {
	w := suite.get("/verify")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLogService.AssertNotCalled(suite.T(), "ApplyToken")
}

func (suite *VerifyHandlerTestSuite) TestVerify_UnknownToken() {
	suite.mockLogService.On("ApplyToken", mock.Anything, "nope").Return(nil, apperrors.ErrTokenNotFound).Once()

	w := suite.get("/verify?token=nope")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *VerifyHandlerTestSuite) TestVerify_ConsumedTokenGone() {
	suite.mockLogService.On("ApplyToken", mock.Anything, "used").Return(nil, apperrors.ErrTokenConsumed).Once()

	w := suite.get("/verify?token=used")

	suite.Equal(http.StatusGone, w.Code)
}

func (suite *VerifyHandlerTestSuite) TestVerify_DecidedRecordGone() {
	suite.mockLogService.On("ApplyToken", mock.Anything, "stale").Return(nil, apperrors.ErrInvalidState).Once()

	w := suite.get("/verify?token=stale")

	suite.Equal(http.StatusGone, w.Code)
}

func TestVerifyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VerifyHandlerTestSuite))
}
