package jobs

import (
	"fmt"
	"log/slog"

	"fanstore/internal/core/application/usecases/queries"
	"fanstore/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	salesReportJob *SalesReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	salesReportHandler queries.GetSalesReportQueryHandler,
	email ports.EmailSender,
	adminEmail string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		salesReportJob: NewSalesReportJob(salesReportHandler, email, adminEmail, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.salesReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start sales report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.salesReportJob.Stop()
}
