package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"tourcatalog/internal/core/application/store"
)

// CatalogRefreshJob periodically reloads the catalog working set so
// long-lived admin views converge with the backend between user-triggered
// loads. A reload is a full cache replacement, the same operation a view
// activation performs.
type CatalogRefreshJob struct {
	catalog  *store.CatalogStore
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates a refresh job on the given cron schedule
// (six-field expression with seconds, e.g. "0 */5 * * * *").
func NewCatalogRefreshJob(catalog *store.CatalogStore, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog:  catalog,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

// Start begins the scheduled refresh.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.catalog.Load(ctx); err != nil {
			// A failed refresh keeps the previous working set; the next
			// tick or the next view activation tries again.
			j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled refresh.
func (j *CatalogRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
