package mapping

import (
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/WeeklyLogs/weekly_log_app/internal/models"
)

// ToModelAdmin converts a domain.Admin to its database model.
func ToModelAdmin(d domain.Admin) models.Admin {
	return models.Admin{
		Username:    d.Username,
		Name:        d.Name,
		Email:       d.Email,
		Department:  d.Department,
		Role:        string(d.Role),
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainAdmin converts a models.Admin to its domain entity.
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		Username:    m.Username,
		Name:        m.Name,
		Email:       m.Email,
		Department:  m.Department,
		Role:        domain.AdminRole(m.Role),
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainAdminSlice converts a slice of models.Admin.
func ToDomainAdminSlice(ms []models.Admin) []domain.Admin {
	ds := make([]domain.Admin, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdmin(m)
	}
	return ds
}
