package services

import (
	"strings"

	"tourcatalog/internal/core/domain/model/tour"
)

// CatalogSearch is a domain service that filters a catalog view by a search
// term.
//
// Matching rules:
//   - A package matches when its name or description contains the term as a
//     case-insensitive substring
//   - The empty term matches every package
//   - Result order preserves catalog order
//
// Filter is purely derived: the input slice is never mutated, so repeated
// application to its own output yields the same sequence.
type CatalogSearch struct{}

// NewCatalogSearch creates a CatalogSearch instance.
func NewCatalogSearch() CatalogSearch {
	return CatalogSearch{}
}

// Filter returns the packages matching term, in original order.
func (CatalogSearch) Filter(packages []*tour.Package, term string) []*tour.Package {
	needle := strings.ToLower(term)

	matched := make([]*tour.Package, 0, len(packages))
	for _, pkg := range packages {
		if needle == "" ||
			strings.Contains(strings.ToLower(pkg.Name()), needle) ||
			strings.Contains(strings.ToLower(pkg.Description()), needle) {
			matched = append(matched, pkg)
		}
	}
	return matched
}
