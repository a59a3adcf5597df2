package pgsql

import (
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CredentialRepo: newPgxCredentialRepository(dbPool),
		StudentRepo:    newPgxStudentRepository(dbPool),
		AdminRepo:      newPgxAdminRepository(dbPool),
		SupervisorRepo: newPgxSupervisorRepository(dbPool),
		LogRepo:        newPgxLogRepository(dbPool),
		TokenRepo:      newPgxVerificationTokenRepository(dbPool),
	}
}
