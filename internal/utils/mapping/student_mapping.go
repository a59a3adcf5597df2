package mapping

import (
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/WeeklyLogs/weekly_log_app/internal/models"
)

// ToModelStudent converts a domain.Student to its database model. The
// credential columns are filled by the caller.
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		Username:        d.Username,
		Name:            d.Name,
		Email:           d.Email,
		SupervisorEmail: d.SupervisorEmail,
		Department:      d.Department,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

// ToDomainStudent converts a models.Student to its domain entity. Credential
// columns are deliberately not carried over.
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		Username:        m.Username,
		Name:            m.Name,
		Email:           m.Email,
		SupervisorEmail: m.SupervisorEmail,
		Department:      m.Department,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToDomainStudentSlice converts a slice of models.Student.
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}
