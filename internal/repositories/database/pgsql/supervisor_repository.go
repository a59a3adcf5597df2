package pgsql

import (
	"context"
	"fmt"

	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portsrepo "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupervisorRepository struct {
	BaseRepository
}

func newPgxSupervisorRepository(db *pgxpool.Pool) portsrepo.SupervisorRepositoryFacade {
	return &PgxSupervisorRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SupervisorRepositoryFacade = (*PgxSupervisorRepository)(nil)

// UpsertSupervisor registers the supervisor on first reference. An existing
// row keeps its original name and timestamp.
func (r *PgxSupervisorRepository) UpsertSupervisor(ctx context.Context, supervisor domain.Supervisor) error {
	query := `
		INSERT INTO supervisors (email, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, supervisor.Email, supervisor.Name, supervisor.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert supervisor: %w", err)
	}
	return nil
}
