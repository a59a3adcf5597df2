package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/apperrors"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const defaultListLimit = 20
const maxListLimit = 100

// logService implements the LogSvcFacade. It owns the record state machine
// and mediates every transition through the token service and every read
// through the access evaluator.
type logService struct {
	BaseService
	logRepo        portsrepo.LogRepositoryFacade
	studentRepo    portsrepo.StudentRepositoryFacade
	supervisorRepo portsrepo.SupervisorRepositoryFacade
	tokens         portssvc.VerificationTokenSvcFacade
	access         portssvc.AccessSvcFacade
	mailer         portssvc.VerificationMailer
	appBaseURL     string
}

// NewLogService creates a new log lifecycle service. appBaseURL is the
// externally reachable prefix embedded into verification links.
func NewLogService(
	logRepo portsrepo.LogRepositoryFacade,
	studentRepo portsrepo.StudentRepositoryFacade,
	supervisorRepo portsrepo.SupervisorRepositoryFacade,
	tokens portssvc.VerificationTokenSvcFacade,
	access portssvc.AccessSvcFacade,
	mailer portssvc.VerificationMailer,
	appBaseURL string,
) portssvc.LogSvcFacade {
	return &logService{
		logRepo:        logRepo,
		studentRepo:    studentRepo,
		supervisorRepo: supervisorRepo,
		tokens:         tokens,
		access:         access,
		mailer:         mailer,
		appBaseURL:     strings.TrimRight(appBaseURL, "/"),
	}
}

var _ portssvc.LogSvcFacade = (*logService)(nil)

// Submit creates a pending record for the student's period, issues the token
// pair and dispatches the verification mail. The duplicate-period check and
// the insert are one atomic unit in the repository, so concurrent
// double-submission yields exactly one record.
func (s *logService) Submit(ctx context.Context, p domain.Principal, content, periodKey string) (*portssvc.SubmitResult, error) {
	if p.Kind != domain.KindStudent {
		return nil, apperrors.ErrForbidden
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: log content is empty", apperrors.ErrValidation)
	}
	if periodKey == "" {
		periodKey = domain.CurrentPeriodKey(time.Now())
	}

	student, err := s.studentRepo.FindStudentByUsername(ctx, p.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load submitting student")
		return nil, err
	}

	record := domain.LogRecord{
		LogID: uuid.NewString(),
		// Department is stamped from the owning student, never from input.
		OwnerID:    student.Username,
		Department: student.Department,
		PeriodKey:  periodKey,
		Content:    content,
		State:      domain.LogStatePending,
		CreatedAt:  time.Now(),
	}

	if err := s.logRepo.SaveLog(ctx, record); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicatePeriod) {
			s.LogError(ctx, err, "Failed to save log record",
				slog.String("period_key", periodKey))
		}
		return nil, err
	}

	pair, err := s.tokens.IssuePair(ctx, record.LogID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue verification tokens",
			slog.String("log_id", record.LogID))
		return nil, err
	}

	if err := s.supervisorRepo.UpsertSupervisor(ctx, domain.Supervisor{
		Email:     student.SupervisorEmail,
		Name:      supervisorNameFromEmail(student.SupervisorEmail),
		CreatedAt: time.Now(),
	}); err != nil {
		// Registry bookkeeping only; the submission stands.
		s.LogWarn(ctx, "Failed to upsert supervisor",
			slog.String("error", err.Error()))
	}

	emailSent := true
	mail := portssvc.VerificationMail{
		Recipient:    student.SupervisorEmail,
		StudentName:  student.Name,
		StudentEmail: student.Email,
		PeriodKey:    record.PeriodKey,
		Content:      record.Content,
		ApproveLink:  s.verifyLink(pair.ApproveToken),
		RejectLink:   s.verifyLink(pair.RejectToken),
	}
	if err := s.mailer.SendVerificationRequest(ctx, mail); err != nil {
		// The record and its tokens stand; the mail can be re-sent out of
		// band and the links stay valid until consumed.
		emailSent = false
		s.LogError(ctx, err, "Failed to dispatch verification mail",
			slog.String("log_id", record.LogID))
	}

	s.LogInfo(ctx, "Log submitted",
		slog.String("log_id", record.LogID),
		slog.String("period_key", record.PeriodKey),
		slog.Bool("email_sent", emailSent))
	return &portssvc.SubmitResult{Record: &record, EmailSent: emailSent}, nil
}

// ApplyToken resolves the token, consumes the pair and applies the
// transition. It is deliberately reachable without a session; its safety
// rests on token unguessability plus single-use consumption.
func (s *logService) ApplyToken(ctx context.Context, tokenValue string) (*domain.LogRecord, error) {
	resolution, err := s.tokens.Resolve(ctx, tokenValue)
	if err != nil {
		return nil, err
	}

	record, err := s.logRepo.FindLogByID(ctx, resolution.LogID)
	if err != nil {
		s.LogError(ctx, err, "Token resolved to missing log record",
			slog.String("log_id", resolution.LogID))
		return nil, err
	}
	// A stale unconsumed token must not look valid after an out-of-band
	// transition.
	if record.State != domain.LogStatePending {
		return nil, apperrors.ErrInvalidState
	}

	// Winner election: exactly one concurrent caller consumes the pair.
	if err := s.tokens.Consume(ctx, tokenValue); err != nil {
		return nil, err
	}

	decidedAt := time.Now()
	target := resolution.Action.TargetState()
	if err := s.logRepo.TransitionFromPending(ctx, record.LogID, target, decidedAt); err != nil {
		// The pending guard on the update defends against an out-of-band
		// transition racing between the state check and the consume.
		s.LogError(ctx, err, "Failed to apply verified transition",
			slog.String("log_id", record.LogID),
			slog.String("target_state", string(target)))
		return nil, err
	}

	record.State = target
	record.DecidedAt = &decidedAt
	s.LogInfo(ctx, "Log verification applied",
		slog.String("log_id", record.LogID),
		slog.String("state", string(target)))
	return record, nil
}

// List returns records inside the principal's scope filter, created_at
// descending. Students additionally see only their own records.
func (s *logService) List(ctx context.Context, p domain.Principal, filter portsrepo.LogListFilter) ([]domain.LogRecord, error) {
	scope := s.access.ScopeFilter(p)
	if p.Kind == domain.KindStudent {
		filter.OwnerID = p.ID
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	records, err := s.logRepo.FindLogs(ctx, scope, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list log records")
		return nil, err
	}
	if records == nil {
		records = []domain.LogRecord{}
	}
	return records, nil
}

// GetLog returns one record if the principal may read it. An out-of-scope
// record fails with ErrForbidden, which the presentation layer renders
// exactly like a missing record.
func (s *logService) GetLog(ctx context.Context, p domain.Principal, logID string) (*domain.LogRecord, error) {
	record, err := s.logRepo.FindLogByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if !s.access.CanRead(p, *record) {
		return nil, apperrors.ErrForbidden
	}
	return record, nil
}

func (s *logService) verifyLink(tokenValue string) string {
	return s.appBaseURL + "/verify?token=" + url.QueryEscape(tokenValue)
}

func supervisorNameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
