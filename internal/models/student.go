package models

import "time"

// Student is the database representation of a student account. The credential
// columns live on the same row; only the credential repository reads them.
type Student struct {
	Username           string `db:"username"`
	Name               string `db:"name"`
	Email              string `db:"email"`
	SupervisorEmail    string `db:"supervisor_email"`
	Department         string `db:"department"`
	PasswordHash       string `db:"password_hash"`
	MustChangePassword bool   `db:"must_change_password"`
	AuditFields
}

// AuditFields holds standard audit columns shared by account tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
