package jobs

import (
	"context"
	"log/slog"
	"time"

	"ecommerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob manages the scheduled cancellation of stale orders.
// Orders that have been awaiting payment longer than the configured age
// are cancelled to release them from the payment pipeline.
type StaleOrderJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewStaleOrderJob creates a new job for cancelling stale orders.
// The schedule is a six-field cron expression; maxAge defines how long an
// order may sit in awaiting-payment before it is considered stale.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order cancellation job on its configured schedule.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
