// Package queries contains read-only operations over the working set and the
// backend. Query handlers never mutate state; they derive views.
package queries

import (
	"errors"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/pkg/guard"
)

var ErrSearchPackagesQueryIsNotConstructed = errors.New(
	"SearchPackagesQuery must be created via NewSearchPackagesQuery constructor",
)

// SearchPackagesQuery filters the loaded catalog by a search term.
// The empty term returns the full working set in original order.
type SearchPackagesQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchPackagesQuery creates a search over the working set.
// Every term is valid, including the empty one.
func NewSearchPackagesQuery(term string) SearchPackagesQuery {
	return SearchPackagesQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchPackagesQuery) Validate() error {
	return q.guard.Validate(ErrSearchPackagesQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchPackagesQuery) Term() string {
	return q.term
}

// SearchPackagesQueryResponse is one catalog row of a search result.
type SearchPackagesQueryResponse struct {
	ID          kernel.ID
	Name        string
	Description string
	Price       kernel.Price
}
