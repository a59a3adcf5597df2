package jobs

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// purgeRunTimeout bounds a single purge run.
const purgeRunTimeout = 5 * time.Minute

// TokenPurgeJob periodically removes stale verification tokens.
type TokenPurgeJob struct {
	cron   *cron.Cron
	tokens portssvc.VerificationTokenSvcFacade
	maxAge time.Duration
	logger *slog.Logger
}

// NewTokenPurgeJob creates the purge scheduler. Tokens older than maxAge are
// removed on every run, provided their record no longer needs them.
func NewTokenPurgeJob(tokens portssvc.VerificationTokenSvcFacade, maxAge time.Duration, logger *slog.Logger) *TokenPurgeJob {
	return &TokenPurgeJob{
		cron:   cron.New(),
		tokens: tokens,
		maxAge: maxAge,
		logger: logger,
	}
}

// Start registers the purge on the given cron schedule and starts the
// scheduler in its own goroutine.
func (j *TokenPurgeJob) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, j.run)
	if err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("Token purge job scheduled", slog.String("schedule", schedule))
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *TokenPurgeJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *TokenPurgeJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeRunTimeout)
	defer cancel()

	removed, err := j.tokens.PurgeOlderThan(ctx, j.maxAge)
	if err != nil {
		j.logger.Error("Token purge run failed", slog.String("error", err.Error()))
		return
	}
	j.logger.Info("Token purge run finished", slog.Int64("removed", removed))
}
