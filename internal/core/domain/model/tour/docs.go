// Package tour provides the catalog side of the domain model: the Package
// entity and the partial Update value used for admin edits.
//
// Key business rules:
//   - Packages carry a backend-assigned identifier, a required name, an
//     optional description, and a non-negative price
//   - Catalog mutations are expressed as immutable copies (Package.Apply),
//     never in-place edits, so snapshots handed to readers stay stable
//   - Partial updates merge field-level: fields absent from an Update are
//     left untouched
package tour
