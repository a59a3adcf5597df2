package models

// Admin is the database representation of an admin account.
type Admin struct {
	Username           string `db:"username"`
	Name               string `db:"name"`
	Email              string `db:"email"`
	Department         string `db:"department"`
	Role               string `db:"role"`
	PasswordHash       string `db:"password_hash"`
	MustChangePassword bool   `db:"must_change_password"`
	AuditFields
}
