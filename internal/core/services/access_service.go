package services

import (
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
)

// accessService implements the AccessSvcFacade as pure functions of
// (principal, record). Centralizing the department check here means listing,
// reading and writing all enforce the same isolation rule; no call site
// re-derives scope on its own.
type accessService struct{}

// NewAccessService creates the access control evaluator.
func NewAccessService() portssvc.AccessSvcFacade {
	return &accessService{}
}

var _ portssvc.AccessSvcFacade = (*accessService)(nil)

// ScopeFilter derives the department filter for listings.
func (s *accessService) ScopeFilter(p domain.Principal) domain.DepartmentFilter {
	if p.IsSuperAdmin() {
		return domain.MatchAllDepartments()
	}
	return domain.MatchDepartment(p.Department)
}

// CanRead reports whether the principal may read the record.
func (s *accessService) CanRead(p domain.Principal, record domain.LogRecord) bool {
	switch p.Kind {
	case domain.KindStudent:
		return record.OwnerID == p.ID
	case domain.KindAdmin:
		return s.ScopeFilter(p).Matches(record.Department)
	default:
		return false
	}
}

// CanWrite applies the same scoping rule as CanRead to create/update
// operations. State is not writable through any principal: transitions
// happen only inside the log lifecycle manager via verification tokens.
func (s *accessService) CanWrite(p domain.Principal, record domain.LogRecord) bool {
	return s.CanRead(p, record)
}

// CanProvisionAdmin is true only for super admins.
func (s *accessService) CanProvisionAdmin(p domain.Principal) bool {
	return p.IsSuperAdmin()
}
