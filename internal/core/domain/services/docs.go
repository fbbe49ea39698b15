// Package services provides stateless domain services for the catalog.
//
// The package includes:
//   - CatalogSearch: pure, order-preserving filtering of a catalog view by a
//     case-insensitive search term
//
// Domain services hold logic that does not belong to a single aggregate and
// never touch infrastructure.
package services
