package queries

import (
	"errors"

	"tourcatalog/internal/pkg/guard"
)

var ErrExportPackagesReportQueryIsNotConstructed = errors.New(
	"ExportPackagesReportQuery must be created via NewExportPackagesReportQuery constructor",
)

// ExportPackagesReportQuery produces the downloadable catalog report for the
// working set, scoped by the same search term as the catalog listing. The
// handler filters the snapshot itself, so a report for a term always covers
// exactly the packages a search for that term would show.
type ExportPackagesReportQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewExportPackagesReportQuery creates an export scoped by the search term.
// The empty term exports the whole working set.
func NewExportPackagesReportQuery(term string) ExportPackagesReportQuery {
	return ExportPackagesReportQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ExportPackagesReportQuery) Validate() error {
	return q.guard.Validate(ErrExportPackagesReportQueryIsNotConstructed)
}

// Term returns the search term scoping the report.
func (q ExportPackagesReportQuery) Term() string {
	return q.term
}

// ExportPackagesReportQueryResponse is the rendered report artifact.
// The filename is deterministic; content bytes are a complete document.
type ExportPackagesReportQueryResponse struct {
	Filename string
	Content  []byte
}
