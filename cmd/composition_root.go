package cmd

import (
	"log/slog"

	"tourcatalog/internal/adapters/out/backendapi"
	"tourcatalog/internal/adapters/out/pdf"
	"tourcatalog/internal/adapters/out/session"
	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/application/usecases/commands"
	"tourcatalog/internal/core/application/usecases/queries"
	"tourcatalog/internal/jobs"
)

type CompositionRoot struct {
	config Config

	backendClient *backendapi.Client
	catalog       *store.CatalogStore
	sessions      *session.FileProvider
	renderer      *pdf.Renderer
}

func NewCompositionRoot(config Config) CompositionRoot {
	backendClient := backendapi.NewClient(config.BackendBaseURL, nil)

	return CompositionRoot{
		config:        config,
		backendClient: backendClient,
		catalog:       store.NewCatalogStore(backendClient),
		sessions:      session.NewFileProvider(config.SessionFile),
		renderer:      pdf.NewRenderer(),
	}
}

func (c *CompositionRoot) Catalog() *store.CatalogStore {
	return c.catalog
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() commands.UpdatePackageCommandHandler {
	return commands.NewUpdatePackageCommandHandler(c.backendClient, c.catalog)
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.backendClient, c.catalog)
}

func (c *CompositionRoot) CreatePurchasePackageCommandHandler(logger *slog.Logger) commands.PurchasePackageCommandHandler {
	return commands.NewPurchasePackageCommandHandler(c.sessions, c.backendClient, c.catalog, logger)
}

func (c *CompositionRoot) CreateSearchPackagesQueryHandler() queries.SearchPackagesQueryHandler {
	return queries.NewSearchPackagesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.sessions, c.backendClient)
}

func (c *CompositionRoot) CreateExportPackagesReportQueryHandler() queries.ExportPackagesReportQueryHandler {
	return queries.NewExportPackagesReportQueryHandler(c.catalog, c.renderer)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.catalog, c.config.CatalogRefreshSchedule, logger)
}
