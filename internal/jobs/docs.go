// Package jobs provides scheduled background tasks for the fulfilment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfilment service.
//
// # Available Jobs
//
// 1. DegradedOrderReportJob - Runs every minute to report orders that were
// finalized on a fallback path (collaborator failure or unresolvable
// replacement). The pipeline absorbs those failures silently, so this report
// is what keeps them visible to operators.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(degradedOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
package jobs
