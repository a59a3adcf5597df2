package dto

import (
	"time"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// SubmitLogRequest is a student's submission for one reporting period.
// PeriodKey is optional; the current ISO week is used when omitted.
type SubmitLogRequest struct {
	PeriodKey string `json:"periodKey" binding:"omitempty,periodkey"`
	Content   string `json:"content" binding:"required,max=10000"`
}

// LogResponse is the external representation of a log record.
type LogResponse struct {
	LogID      string     `json:"logID"`
	OwnerID    string     `json:"ownerID"`
	Department string     `json:"department"`
	PeriodKey  string     `json:"periodKey"`
	Content    string     `json:"content"`
	State      string     `json:"state"`
	CreatedAt  time.Time  `json:"createdAt"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`
}

// SubmitLogResponse wraps the created record plus the email dispatch outcome.
type SubmitLogResponse struct {
	Log       LogResponse `json:"log"`
	EmailSent bool        `json:"emailSent"`
}

// ListLogsParams defines query parameters for listing logs.
type ListLogsParams struct {
	PeriodKey string `form:"periodKey" binding:"omitempty,periodkey"`
	State     string `form:"state" binding:"omitempty,oneof=pending approved rejected"`
	Limit     int    `form:"limit,default=20"`
	Offset    int    `form:"offset,default=0"`
}

// ListLogsResponse wraps the list of logs.
type ListLogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

// VerifyResponse reports the outcome of a verification link click.
type VerifyResponse struct {
	Result    string `json:"result"`
	PeriodKey string `json:"periodKey,omitempty"`
	State     string `json:"state,omitempty"`
}

// ToLogResponse converts a domain.LogRecord to its DTO.
func ToLogResponse(record *domain.LogRecord) LogResponse {
	return LogResponse{
		LogID:      record.LogID,
		OwnerID:    record.OwnerID,
		Department: record.Department,
		PeriodKey:  record.PeriodKey,
		Content:    record.Content,
		State:      string(record.State),
		CreatedAt:  record.CreatedAt,
		DecidedAt:  record.DecidedAt,
	}
}

// ToListLogsResponse converts a slice of domain.LogRecord to the list DTO.
func ToListLogsResponse(records []domain.LogRecord) ListLogsResponse {
	responses := make([]LogResponse, len(records))
	for i := range records {
		responses[i] = ToLogResponse(&records[i])
	}
	return ListLogsResponse{Logs: responses}
}
