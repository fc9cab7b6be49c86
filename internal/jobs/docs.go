// Package jobs provides scheduled background tasks for the store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. SalesReportJob - Runs daily at 06:00 UTC to email the previous day's
// sales summary to the configured admin address
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(salesReportHandler, emailSender, adminEmail, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report run is logged and retried at the next schedule; failed job
// starts stop any already running jobs.
package jobs
