package export

import (
	"context"
	"fmt"
	"html"
	"strings"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// Renderer turns a standalone HTML page into PDF bytes. The chromedp
// implementation lives in render.go; tests substitute their own.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter produces the paginated rendition. The layout pass is pure and
// carries all positioning; the renderer only has to print absolutely
// positioned text onto A4 pages.
type PDFExporter struct {
	renderer Renderer
}

// NewPDFExporter creates the paginated exporter. A nil renderer defaults to
// headless Chrome.
func NewPDFExporter(renderer Renderer) *PDFExporter {
	if renderer == nil {
		renderer = NewChromeRenderer()
	}
	return &PDFExporter{renderer: renderer}
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Export lays the document out and renders it to PDF bytes.
func (e *PDFExporter) Export(doc resume.Document) (Artifact, error) {
	blocks := Layout(doc)
	page := RenderHTML(blocks)

	data, err := e.renderer.RenderHTMLToPDF(context.Background(), page)
	if err != nil {
		return Artifact{}, errors.NewIOError(errors.ErrCodeRenderUnavailable,
			"Failed to render PDF", err)
	}

	return Artifact{
		Format:   "pdf",
		Filename: baseFilename(doc) + ".pdf",
		Data:     data,
	}, nil
}

// RenderHTML converts positioned text blocks into a standalone HTML page,
// one absolutely positioned div per block inside fixed A4 page containers.
func RenderHTML(blocks []TextBlock) string {
	pages := 1
	for _, b := range blocks {
		if b.Page > pages {
			pages = b.Page
		}
	}

	perPage := make(map[int][]TextBlock, pages)
	for _, b := range blocks {
		perPage[b.Page] = append(perPage[b.Page], b)
	}

	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 0; }
  body { margin: 0; font-family: Helvetica, Arial, sans-serif; }
  .page { position: relative; width: 210mm; height: 297mm; page-break-after: always; overflow: hidden; }
  .page:last-child { page-break-after: auto; }
  .block { position: absolute; white-space: nowrap; }
</style>
</head>
<body>
`)

	for page := 1; page <= pages; page++ {
		sb.WriteString(`<div class="page">` + "\n")
		for _, b := range perPage[page] {
			weight := "normal"
			if b.Bold {
				weight = "bold"
			}
			fmt.Fprintf(&sb,
				`<div class="block" style="left:%.1fmm;top:%.1fmm;font-size:%.1fpt;font-weight:%s">%s</div>`+"\n",
				b.X, b.Y, b.FontSize, weight, html.EscapeString(b.Text))
		}
		sb.WriteString("</div>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
