package mapping

import (
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	"github.com/WeeklyLogs/weekly_log_app/internal/models"
)

// ToModelLog converts a domain.LogRecord to its database model.
func ToModelLog(d domain.LogRecord) models.Log {
	return models.Log{
		LogID:           d.LogID,
		StudentUsername: d.OwnerID,
		Department:      d.Department,
		PeriodKey:       d.PeriodKey,
		Content:         d.Content,
		State:           string(d.State),
		CreatedAt:       d.CreatedAt,
		DecidedAt:       d.DecidedAt,
	}
}

// ToDomainLog converts a models.Log to its domain entity.
func ToDomainLog(m models.Log) domain.LogRecord {
	return domain.LogRecord{
		LogID:      m.LogID,
		OwnerID:    m.StudentUsername,
		Department: m.Department,
		PeriodKey:  m.PeriodKey,
		Content:    m.Content,
		State:      domain.LogState(m.State),
		CreatedAt:  m.CreatedAt,
		DecidedAt:  m.DecidedAt,
	}
}

// ToDomainLogSlice converts a slice of models.Log.
func ToDomainLogSlice(ms []models.Log) []domain.LogRecord {
	ds := make([]domain.LogRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLog(m)
	}
	return ds
}

// ToModelVerificationToken converts a domain.VerificationToken to its
// database model.
func ToModelVerificationToken(d domain.VerificationToken) models.VerificationToken {
	return models.VerificationToken{
		TokenHash:  d.TokenHash,
		LogID:      d.LogID,
		Action:     string(d.Action),
		Consumed:   d.Consumed,
		CreatedAt:  d.CreatedAt,
		ConsumedAt: d.ConsumedAt,
	}
}

// ToDomainVerificationToken converts a models.VerificationToken to its domain
// entity.
func ToDomainVerificationToken(m models.VerificationToken) domain.VerificationToken {
	return domain.VerificationToken{
		TokenHash:  m.TokenHash,
		LogID:      m.LogID,
		Action:     domain.VerificationAction(m.Action),
		Consumed:   m.Consumed,
		CreatedAt:  m.CreatedAt,
		ConsumedAt: m.ConsumedAt,
	}
}
