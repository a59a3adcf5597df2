package models

import "time"

// Log is the database representation of a log record.
type Log struct {
	LogID           string     `db:"log_id"`
	StudentUsername string     `db:"student_username"`
	Department      string     `db:"department"`
	PeriodKey       string     `db:"period_key"`
	Content         string     `db:"content"`
	State           string     `db:"state"`
	CreatedAt       time.Time  `db:"created_at"`
	DecidedAt       *time.Time `db:"decided_at"`
}
