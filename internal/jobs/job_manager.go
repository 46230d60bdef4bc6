package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryWatchdogJob *DeliveryWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	staleDeliveriesHandler queries.GetStaleDeliveriesQueryHandler,
	watchdogThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryWatchdogJob: NewDeliveryWatchdogJob(staleDeliveriesHandler, watchdogThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryWatchdogJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryWatchdogJob.Stop()
}
