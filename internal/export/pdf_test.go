package export

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer captures the HTML handed to the rendering step.
type stubRenderer struct {
	html string
}

func (r *stubRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	r.html = html
	return []byte("%PDF-stub"), nil
}

func TestPDFExportUsesRenderer(t *testing.T) {
	renderer := &stubRenderer{}
	exporter := NewPDFExporter(renderer)

	artifact, err := exporter.Export(fullDocument())
	require.NoError(t, err)

	assert.Equal(t, "pdf", artifact.Format)
	assert.Equal(t, "Sarah Johnson.pdf", artifact.Filename)
	assert.Equal(t, []byte("%PDF-stub"), artifact.Data)
	assert.Contains(t, renderer.html, "Sarah Johnson")
}

func TestRenderHTMLPositionsBlocks(t *testing.T) {
	blocks := []TextBlock{
		{Text: "Title & More", X: 20, Y: 20, FontSize: 20, Bold: true, Page: 1},
		{Text: "second page", X: 20, Y: 20, FontSize: 10, Page: 2},
	}

	page := RenderHTML(blocks)

	assert.Equal(t, 2, strings.Count(page, `<div class="page">`))
	assert.Contains(t, page, "left:20.0mm;top:20.0mm;font-size:20.0pt;font-weight:bold")
	assert.Contains(t, page, "Title &amp; More")
	assert.Contains(t, page, "second page")
}
