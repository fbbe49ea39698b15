package ports

import "tourcatalog/internal/core/domain/model/tour"

// ReportRenderer produces the downloadable catalog report document.
// Rendering is deterministic: the same input sequence yields the same bytes.
type ReportRenderer interface {
	// Render lays out the given packages, in input order, under the title.
	// The renderer works only on the view it is handed; it has no access to
	// the full catalog.
	Render(title string, packages []*tour.Package) ([]byte, error)
}
