// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, staleOrderTTL, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is StaleOrderCancellationJob, which runs once a minute
// and cancels CREATED orders older than the configured time-to-live. Setting
// the TTL to zero disables it.
package jobs
