package models

import "time"

// VerificationToken is the database representation of a verification token.
// Only the SHA-256 hash of the token value is stored.
type VerificationToken struct {
	TokenHash  string     `db:"token_hash"`
	LogID      string     `db:"log_id"`
	Action     string     `db:"action"`
	Consumed   bool       `db:"consumed"`
	CreatedAt  time.Time  `db:"created_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
}
