package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordersapp/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderCancellationJob *StaleOrderCancellationJob
}

// NewJobManager creates a job manager. A zero staleOrderTTL disables the
// stale-order sweep entirely.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	staleOrderTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}

	if staleOrderTTL > 0 {
		jm.staleOrderCancellationJob = NewStaleOrderCancellationJob(cancelStaleOrdersHandler, staleOrderTTL, logger)
	}

	return jm
}

// StartAll starts every configured job.
func (jm *JobManager) StartAll() error {
	if jm.staleOrderCancellationJob != nil {
		if err := jm.staleOrderCancellationJob.Start(); err != nil {
			return fmt.Errorf("failed to start stale order cancellation job: %w", err)
		}
	}

	return nil
}

// StopAll stops every running job.
func (jm *JobManager) StopAll() {
	if jm.staleOrderCancellationJob != nil {
		jm.staleOrderCancellationJob.Stop()
	}
}
