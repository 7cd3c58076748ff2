// Package jobs provides scheduled background tasks for the dine-in engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot guarantee alone.
//
// # Available Jobs
//
// 1. OccupancyReconciliationJob - Runs every minute to repair tables whose
// occupancy status has diverged from the presence of an active order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager over the shared database handle
//	jobManager := jobs.NewJobManager(db, logger)
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
// The reconciliation job uses the cron expression "* * * * *" (every
// minute). The request path keeps the table/order pair consistent
// transactionally; the sweep only catches drift from crashes or manual
// database edits, so a minute of lag is acceptable.
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; repaired
// rows are logged as warnings because each one indicates earlier drift.
package jobs
