// Package jobs provides scheduled background tasks for the order management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the back office.
//
// # Available Jobs
//
// 1. StaleOrderJob - Cancels orders that have been awaiting payment longer than the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, "0 */5 * * * *", 24*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stale order job uses a six-field cron expression (seconds included),
// so "0 */5 * * * *" runs at the top of every fifth minute.
//
// # Error Handling
//
// - Cancellation failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
