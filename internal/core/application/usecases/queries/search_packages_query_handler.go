package queries

import (
	"context"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/domain/services"
)

// SearchPackagesQueryHandler filters the catalog working set.
// Purely derived: the cached list is never mutated, and re-filtering a result
// with the same term yields the same sequence.
type SearchPackagesQueryHandler struct {
	catalog *store.CatalogStore
	search  services.CatalogSearch
}

// NewSearchPackagesQueryHandler creates a handler for catalog searches.
func NewSearchPackagesQueryHandler(catalog *store.CatalogStore) SearchPackagesQueryHandler {
	return SearchPackagesQueryHandler{
		catalog: catalog,
		search:  services.NewCatalogSearch(),
	}
}

// Handle executes the search against the current working set snapshot.
func (h SearchPackagesQueryHandler) Handle(
	_ context.Context,
	query SearchPackagesQuery,
) ([]SearchPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matched := h.search.Filter(h.catalog.Packages(), query.Term())

	response := make([]SearchPackagesQueryResponse, len(matched))
	for i, pkg := range matched {
		response[i] = SearchPackagesQueryResponse{
			ID:          pkg.ID(),
			Name:        pkg.Name(),
			Description: pkg.Description(),
			Price:       pkg.Price(),
		}
	}
	return response, nil
}
