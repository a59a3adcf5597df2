package services

import (
	"context"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
)

// SubmitResult is the outcome of a log submission. EmailSent is false when
// the verification mail could not be dispatched; the record and its token
// pair are kept either way.
type SubmitResult struct {
	Record    *domain.LogRecord
	EmailSent bool
}

// LogSvcFacade owns the log record state machine. Transitions out of pending
// happen exclusively through ApplyToken.
type LogSvcFacade interface {
	// Submit creates a pending record for the student and period, issues the
	// verification token pair and hands the links to the mail dispatcher.
	// Fails with apperrors.ErrForbidden for non-student principals and
	// apperrors.ErrDuplicatePeriod for a repeated period.
	Submit(ctx context.Context, p domain.Principal, content, periodKey string) (*SubmitResult, error)
	// ApplyToken is the one deliberately unauthenticated operation: it
	// resolves the token, consumes the pair and moves the record to the
	// token's terminal state. Fails with apperrors.ErrTokenNotFound,
	// apperrors.ErrTokenConsumed or apperrors.ErrInvalidState.
	ApplyToken(ctx context.Context, tokenValue string) (*domain.LogRecord, error)
	// List returns records inside the principal's scope filter, created_at
	// descending.
	List(ctx context.Context, p domain.Principal, filter portsrepo.LogListFilter) ([]domain.LogRecord, error)
	// GetLog returns one record if the principal may read it. Out-of-scope
	// records fail with apperrors.ErrForbidden, which handlers present
	// identically to apperrors.ErrNotFound.
	GetLog(ctx context.Context, p domain.Principal, logID string) (*domain.LogRecord, error)
}

// VerificationMail is the payload handed to the mail dispatcher after a
// successful submission. Each link embeds one raw token value; the dispatcher
// has no access to token state.
type VerificationMail struct {
	Recipient    string
	StudentName  string
	StudentEmail string
	PeriodKey    string
	Content      string
	ApproveLink  string
	RejectLink   string
}

// VerificationMailer is the outbound email collaborator. Delivery transport
// is outside the core.
type VerificationMailer interface {
	SendVerificationRequest(ctx context.Context, mail VerificationMail) error
}
