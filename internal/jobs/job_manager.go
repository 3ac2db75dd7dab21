package jobs

import (
	"fmt"
	"log/slog"

	"orderlifecycle/internal/core/application/usecases/commands"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	redeliveryJob *RedeliveryJob
}

// NewJobManager wires the redelivery job to its handler.
func NewJobManager(
	redeliverHandler Redeliverer,
	schedule string,
	redeliverCmd commands.RedeliverEventsCommand,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		redeliveryJob: NewRedeliveryJob(redeliverHandler, schedule, redeliverCmd, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.redeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start redelivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.redeliveryJob.Stop()
}
