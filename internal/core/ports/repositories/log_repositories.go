package repositories

import (
	"context"
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// LogListFilter narrows a scoped log listing. The department scope itself is
// carried separately in a domain.DepartmentFilter and is never optional.
type LogListFilter struct {
	OwnerID   string
	PeriodKey string
	State     domain.LogState
	Limit     int
	Offset    int
}

// LogRepositoryFacade defines persistence operations for log records.
type LogRepositoryFacade interface {
	// SaveLog inserts a new pending record. Returns
	// apperrors.ErrDuplicatePeriod when a record already exists for the
	// owner and period; the uniqueness check and the insert are one atomic
	// unit.
	SaveLog(ctx context.Context, record domain.LogRecord) error
	// FindLogByID returns the record or apperrors.ErrNotFound.
	FindLogByID(ctx context.Context, logID string) (*domain.LogRecord, error)
	// FindLogs lists records inside the department scope, created_at
	// descending.
	FindLogs(ctx context.Context, scope domain.DepartmentFilter, filter LogListFilter) ([]domain.LogRecord, error)
	// TransitionFromPending sets the record to a terminal state only if it
	// is still pending. Returns apperrors.ErrInvalidState otherwise.
	TransitionFromPending(ctx context.Context, logID string, to domain.LogState, decidedAt time.Time) error
}
