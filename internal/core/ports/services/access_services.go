package services

import (
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
)

// AccessSvcFacade centralizes every role and department decision. All read,
// write and listing paths must route through it; no caller re-implements
// scoping inline.
type AccessSvcFacade interface {
	// ScopeFilter derives the department filter applied to listings: match
	// all for super admins, the principal's own department otherwise.
	ScopeFilter(p domain.Principal) domain.DepartmentFilter
	// CanRead reports whether the principal may read the record: students
	// only their own, department admins only their department, super admins
	// everything.
	CanRead(p domain.Principal, record domain.LogRecord) bool
	// CanWrite applies the same scoping rule to create/update operations.
	// State transitions are not writable through any principal; they happen
	// only via verification tokens.
	CanWrite(p domain.Principal, record domain.LogRecord) bool
	// CanProvisionAdmin is true only for super admins.
	CanProvisionAdmin(p domain.Principal) bool
}
