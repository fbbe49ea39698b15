package queries

import (
	"context"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/domain/services"
	"tourcatalog/internal/core/ports"
)

const (
	reportTitle    = "Tour Packages"
	reportFilename = "packages.pdf"
)

// ExportPackagesReportQueryHandler renders the catalog report through the
// ReportRenderer port. The view is derived with the same CatalogSearch
// service the listing uses, and rendering is deterministic for a given view.
type ExportPackagesReportQueryHandler struct {
	catalog  *store.CatalogStore
	search   services.CatalogSearch
	renderer ports.ReportRenderer
}

// NewExportPackagesReportQueryHandler creates a handler for report exports.
func NewExportPackagesReportQueryHandler(
	catalog *store.CatalogStore,
	renderer ports.ReportRenderer,
) ExportPackagesReportQueryHandler {
	return ExportPackagesReportQueryHandler{
		catalog:  catalog,
		search:   services.NewCatalogSearch(),
		renderer: renderer,
	}
}

// Handle renders the report document for the query's scoped view.
func (h ExportPackagesReportQueryHandler) Handle(
	_ context.Context,
	query ExportPackagesReportQuery,
) (ExportPackagesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportPackagesReportQueryResponse{}, err
	}

	view := h.search.Filter(h.catalog.Packages(), query.Term())

	content, err := h.renderer.Render(reportTitle, view)
	if err != nil {
		return ExportPackagesReportQueryResponse{}, err
	}

	return ExportPackagesReportQueryResponse{
		Filename: reportFilename,
		Content:  content,
	}, nil
}
