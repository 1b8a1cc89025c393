// Package jobs provides scheduled background tasks for the orders service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// EventRelayJob drains the domain event queue into the configured publisher
// (log, Kafka or RabbitMQ). It runs every second by default; the schedule is
// configurable with EVENT_RELAY_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayJob, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Publish failures are logged and counted. Events are advisory: a failed event is
// not retried and does not affect the order it describes.
package jobs
