// Package jobs provides scheduled background tasks for the lifecycle service.
//
// Jobs use github.com/robfig/cron/v3 with second-level cron expressions.
//
// # Available Jobs
//
// RedeliveryJob retries lifecycle messages that were parked after a failed publish.
// Each run hands one RedeliverEventsCommand to the handler; entries that run out of
// attempts go to the dead-letter queue.
//
// # Usage
//
//	cmd, err := commands.NewRedeliverEventsCommand(100, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	jobManager := jobs.NewJobManager(redeliverHandler, "*/30 * * * * *", cmd, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and the next run tries again. Overlapping runs are skipped.
package jobs
