// Package jobs provides scheduled background tasks for the catalog service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CatalogRefreshJob - periodically reloads the catalog working set from
// the backend so long-lived views converge with the server state
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(catalog, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and leaves the previous working set untouched;
// the next tick retries. Failed job starts return an error to the caller.
package jobs
