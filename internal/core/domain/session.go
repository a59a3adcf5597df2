package domain

import "time"

// SessionContext names one of the two disjoint session namespaces. A session
// issued in one context never satisfies a check in the other.
type SessionContext string

const (
	ContextStudent SessionContext = "student"
	ContextAdmin   SessionContext = "admin"
)

// Session is a live authenticated session for one context.
type Session struct {
	SessionID string         `json:"sessionID"`
	Context   SessionContext `json:"context"`
	Principal Principal      `json:"principal"`
	IssuedAt  time.Time      `json:"issuedAt"`
}
