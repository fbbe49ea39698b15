// Package pdf implements the catalog report renderer on go-pdf/fpdf.
package pdf

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/pkg/errs"
)

// Layout constants in millimeters on an A4 portrait page. Each package
// occupies a 30-unit block starting at 30; inside a block the name sits at
// the base offset, the description at +7, the price at +14, and the
// separator rule at +20.
const (
	marginLeft  = 20.0
	marginRight = 190.0
	titleY      = 20.0

	blockStart  = 30.0
	blockHeight = 30.0
	descOffset  = 7.0
	priceOffset = 14.0
	ruleOffset  = 20.0

	// pageLimit is the largest block base offset that still fits; blocks
	// past it continue on a fresh page, restarting at blockStart.
	pageLimit = 250.0
)

// Renderer produces the downloadable catalog report.
//
// Output is byte-deterministic: document timestamps are pinned, so the same
// package sequence always renders to the same bytes.
type Renderer struct{}

// NewRenderer creates a report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the packages in input order under the title.
func (r *Renderer) Render(title string, packages []*tour.Package) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	pinned := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	doc.SetCreationDate(pinned)
	doc.SetModificationDate(pinned)

	doc.AddPage()
	doc.SetFont("Helvetica", "", 18)
	doc.Text(marginLeft, titleY, title)

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(100, 100, 100)

	y := blockStart
	for _, pkg := range packages {
		if y > pageLimit {
			doc.AddPage()
			y = blockStart
		}

		doc.Text(marginLeft, y, "Package Name: "+pkg.Name())
		doc.Text(marginLeft, y+descOffset, "Description: "+pkg.Description())
		doc.Text(marginLeft, y+priceOffset, "Price: $"+pkg.Price().String())
		doc.Line(marginLeft, y+ruleOffset, marginRight, y+ruleOffset)

		y += blockHeight
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("report document", err)
	}
	return buf.Bytes(), nil
}
