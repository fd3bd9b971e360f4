// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. DispatchJob - Runs every five seconds to match waiting deliveries with available riders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
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
// The dispatch job uses the cron expression "*/5 * * * * *" which means it runs
// every five seconds. Matching is contention-tolerant, so a sweep that loses a
// rider to a concurrent booking simply leaves the delivery for the next tick.
//
// # Error Handling
//
// - Expected matching outcomes (no candidate, rider taken meanwhile) are logged at debug level
// - Sweep-level failures (database unavailable) are logged as errors and retried on the next tick
package jobs
