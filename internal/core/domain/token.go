package domain

import "time"

// VerificationAction is the pending decision a token carries.
type VerificationAction string

const (
	ActionApprove VerificationAction = "approve"
	ActionReject  VerificationAction = "reject"
)

// TargetState returns the terminal log state the action produces.
func (a VerificationAction) TargetState() LogState {
	if a == ActionApprove {
		return LogStateApproved
	}
	return LogStateRejected
}

// VerificationToken is a single-use capability bound to one log record and
// one action. Only the SHA-256 hash of the token value is ever stored; the
// raw value exists only inside the emailed link. Consuming either token of a
// pair permanently invalidates both.
type VerificationToken struct {
	TokenHash  string             `json:"-"`
	LogID      string             `json:"logID"`
	Action     VerificationAction `json:"action"`
	Consumed   bool               `json:"consumed"`
	CreatedAt  time.Time          `json:"createdAt"`
	ConsumedAt *time.Time         `json:"consumedAt,omitempty"`
}

// TokenPair holds the raw (unhashed) token values for a freshly issued pair.
// The pair is returned exactly once, for embedding into the verification
// links, and is never recoverable afterwards.
type TokenPair struct {
	LogID        string `json:"logID"`
	ApproveToken string `json:"-"`
	RejectToken  string `json:"-"`
}

// TokenResolution is the outcome of resolving a raw token value.
type TokenResolution struct {
	LogID  string             `json:"logID"`
	Action VerificationAction `json:"action"`
}
