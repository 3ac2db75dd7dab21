package jobs

import (
	"context"
	"log/slog"

	"orderlifecycle/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Redeliverer runs one redelivery pass.
type Redeliverer interface {
	Handle(ctx context.Context, cmd commands.RedeliverEventsCommand) (commands.RedeliveryReport, error)
}

// RedeliveryJob retries parked lifecycle messages on a cron schedule.
type RedeliveryJob struct {
	handler  Redeliverer
	schedule string
	cmd      commands.RedeliverEventsCommand
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRedeliveryJob creates the job. schedule is a six-field cron expression
// (seconds first); cmd carries the batch size and attempt limit for every run.
func NewRedeliveryJob(
	handler Redeliverer,
	schedule string,
	cmd commands.RedeliverEventsCommand,
	logger *slog.Logger,
) *RedeliveryJob {
	return &RedeliveryJob{
		handler:  handler,
		schedule: schedule,
		cmd:      cmd,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "redelivery_job"),
	}
}

// Start registers the run and starts the scheduler.
func (j *RedeliveryJob) Start() error {
	_, err := j.cron.AddJob(j.schedule, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(
		cron.FuncJob(func() { j.Run(context.Background()) }),
	))
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Redelivery job started", "schedule", j.schedule)
	return nil
}

// Run performs a single pass. Quiet passes are not logged.
func (j *RedeliveryJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Redelivery job failed", "error", err)
		return
	}

	if report == (commands.RedeliveryReport{}) {
		return
	}

	j.logger.InfoContext(ctx, "Redelivery pass finished",
		"delivered", report.Delivered,
		"rescheduled", report.Rescheduled,
		"deadLettered", report.DeadLettered,
	)
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *RedeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Redelivery job stopped")
}
