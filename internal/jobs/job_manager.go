package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	eventRelayJob *EventRelayJob
	logger        *slog.Logger
}

func NewJobManager(eventRelayJob *EventRelayJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		eventRelayJob: eventRelayJob,
		logger:        logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.eventRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start event relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully. Queued events are relayed before it returns.
func (jm *JobManager) StopAll() {
	jm.eventRelayJob.Stop()
}
