package domain

import (
	"fmt"
	"time"
)

// LogState is the verification state of a log record.
type LogState string

const (
	LogStatePending  LogState = "pending"
	LogStateApproved LogState = "approved"
	LogStateRejected LogState = "rejected"
)

// IsTerminal reports whether no further transition is permitted.
func (s LogState) IsTerminal() bool {
	return s == LogStateApproved || s == LogStateRejected
}

// LogRecord is a student's status log for one reporting period. At most one
// record exists per (OwnerID, PeriodKey). The state machine is
// pending → approved | rejected, driven exclusively by verification tokens.
type LogRecord struct {
	LogID      string     `json:"logID"`
	OwnerID    string     `json:"ownerID"`
	Department string     `json:"department"`
	PeriodKey  string     `json:"periodKey"`
	Content    string     `json:"content"`
	State      LogState   `json:"state"`
	CreatedAt  time.Time  `json:"createdAt"`
	DecidedAt  *time.Time `json:"decidedAt,omitempty"`
}

// CurrentPeriodKey returns the ISO-week period key for t, e.g. "2024-W01".
func CurrentPeriodKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
