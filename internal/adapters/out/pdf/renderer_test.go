package pdf_test

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourcatalog/internal/adapters/out/pdf"
	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/tour"
)

func makePackage(t *testing.T, id, name, description, price string) *tour.Package {
	t.Helper()
	pkgID, err := kernel.NewID(id)
	require.NoError(t, err)
	p, err := kernel.PriceFromString(price)
	require.NoError(t, err)
	pkg, err := tour.NewPackage(pkgID, name, description, p)
	require.NoError(t, err)
	return pkg
}

func sampleView(t *testing.T) []*tour.Package {
	t.Helper()
	return []*tour.Package{
		makePackage(t, "1", "Beach Tour", "Sun and sand", "200"),
		makePackage(t, "2", "Mountain Trek", "High altitude hiking", "349.5"),
	}
}

// contentText inflates every flate-compressed stream in the document and
// concatenates the results, exposing the page drawing operators as text.
func contentText(t *testing.T, doc []byte) string {
	t.Helper()

	var text bytes.Buffer
	rest := doc
	for {
		start := bytes.Index(rest, []byte("stream\n"))
		if start < 0 {
			break
		}
		rest = rest[start+len("stream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		require.GreaterOrEqual(t, end, 0)

		reader, err := zlib.NewReader(bytes.NewReader(rest[:end]))
		rest = rest[end+len("endstream"):]
		if err != nil {
			continue
		}
		inflated, err := io.ReadAll(reader)
		require.NoError(t, err)
		text.Write(inflated)
	}
	return text.String()
}

func TestRenderer_Layout(t *testing.T) {
	// Coordinates below are in points: y mm on an A4 page lands at
	// (297 - y) * 72 / 25.4, x mm at x * 72 / 25.4.
	renderer := pdf.NewRenderer()

	content, err := renderer.Render("Tour Packages", sampleView(t))
	require.NoError(t, err)
	page := contentText(t, content)

	t.Run("package blocks start at 30 unit vertical steps", func(t *testing.T) {
		// First block at y=30, second at y=60.
		assert.Contains(t, page, "756.85 Td (Package Name: Beach Tour)")
		assert.Contains(t, page, "671.81 Td (Package Name: Mountain Trek)")
	})

	t.Run("description and price sit at +7 and +14 within the block", func(t *testing.T) {
		assert.Contains(t, page, "737.01 Td (Description: Sun and sand)")
		assert.Contains(t, page, "717.17 Td (Price: $200)")
	})

	t.Run("separator rule runs from 20 to 190 at +20", func(t *testing.T) {
		assert.Contains(t, page, "56.69 700.16 m 538.58 700.16 l S")
	})

	t.Run("title is drawn at the top left", func(t *testing.T) {
		// (20, 20) mm.
		assert.Contains(t, page, "56.69 785.20 Td (Tour Packages)")
	})
}

func TestRenderer_Render(t *testing.T) {
	t.Run("produces a pdf document", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		content, err := renderer.Render("Tour Packages", sampleView(t))

		require.NoError(t, err)
		require.NotEmpty(t, content)
		assert.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run("empty view renders a title-only document", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		content, err := renderer.Render("Tour Packages", nil)

		require.NoError(t, err)
		require.NotEmpty(t, content)
		assert.Equal(t, "%PDF", string(content[:4]))
	})

	t.Run("deterministic for the same view", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		first, err := renderer.Render("Tour Packages", sampleView(t))
		require.NoError(t, err)
		second, err := renderer.Render("Tour Packages", sampleView(t))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different views render different documents", func(t *testing.T) {
		renderer := pdf.NewRenderer()

		full, err := renderer.Render("Tour Packages", sampleView(t))
		require.NoError(t, err)
		partial, err := renderer.Render("Tour Packages", sampleView(t)[:1])
		require.NoError(t, err)

		assert.NotEqual(t, full, partial)
	})

	t.Run("long catalogs span multiple pages", func(t *testing.T) {
		view := make([]*tour.Package, 0, 12)
		for range 12 {
			view = append(view, sampleView(t)[0])
		}
		renderer := pdf.NewRenderer()

		long, err := renderer.Render("Tour Packages", view)
		require.NoError(t, err)
		short, err := renderer.Render("Tour Packages", view[:2])
		require.NoError(t, err)

		// Eight 30 mm blocks fit on a page; twelve packages need a second one.
		assert.Greater(t, len(long), len(short))
	})
}
