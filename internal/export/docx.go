package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// Paragraph styles of the styled rendition.
const (
	StyleHeading1 = "Heading1"
	StyleHeading2 = "Heading2"
	StyleNormal   = "Normal"
)

// Run is a styled span of text within a block.
type Run struct {
	Text string
	Bold bool
}

// Block is one paragraph of the styled rendition.
type Block struct {
	Style string
	Runs  []Run
}

func heading1(text string) Block {
	return Block{Style: StyleHeading1, Runs: []Run{{Text: text}}}
}

func heading2(text string) Block {
	return Block{Style: StyleHeading2, Runs: []Run{{Text: text}}}
}

func paragraph(text string) Block {
	return Block{Style: StyleNormal, Runs: []Run{{Text: text}}}
}

func boldParagraph(text string) Block {
	return Block{Style: StyleNormal, Runs: []Run{{Text: text, Bold: true}}}
}

var blank = Block{Style: StyleNormal}

// Blocks computes the styled rendition of a document as a flat paragraph
// list. Like Layout it is pure; empty sections are omitted and entries keep
// their stored order.
func Blocks(doc resume.Document) []Block {
	blocks := []Block{
		heading1(doc.PersonalInfo.FullName),
		paragraph(fmt.Sprintf("%s | %s | %s",
			doc.PersonalInfo.Email, doc.PersonalInfo.Phone, doc.PersonalInfo.Location)),
		blank,
	}

	if doc.Summary != "" {
		blocks = append(blocks,
			heading2("Professional Summary"),
			paragraph(doc.Summary),
			blank)
	}

	if len(doc.Experience) > 0 {
		blocks = append(blocks, heading2("Work Experience"))
		for _, exp := range doc.Experience {
			blocks = append(blocks,
				boldParagraph(fmt.Sprintf("%s at %s", exp.Position, exp.Company)),
				paragraph(resume.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)),
				paragraph(exp.Description),
				blank)
		}
	}

	if len(doc.Education) > 0 {
		blocks = append(blocks, heading2("Education"))
		for _, edu := range doc.Education {
			blocks = append(blocks,
				boldParagraph(degreeLine(edu)),
				paragraph(edu.Institution),
				paragraph(resume.FormatDateRange(edu.StartDate, edu.EndDate, false)))
			if edu.GPA != "" {
				blocks = append(blocks, paragraph("GPA: "+edu.GPA))
			}
			blocks = append(blocks, blank)
		}
	}

	if len(doc.Skills) > 0 {
		blocks = append(blocks, heading2("Skills"))
		for _, group := range groupSkills(doc.Skills) {
			blocks = append(blocks, Block{Style: StyleNormal, Runs: []Run{
				{Text: group.category + ": ", Bold: true},
				{Text: group.joined},
			}})
		}
		blocks = append(blocks, blank)
	}

	if len(doc.Projects) > 0 {
		blocks = append(blocks, heading2("Projects"))
		for _, proj := range doc.Projects {
			blocks = append(blocks, boldParagraph(proj.Name))
			if len(proj.Technologies) > 0 {
				blocks = append(blocks, paragraph(strings.Join(proj.Technologies, ", ")))
			}
			blocks = append(blocks, paragraph(proj.Description), blank)
		}
	}

	if len(doc.Certifications) > 0 {
		blocks = append(blocks, heading2("Certifications"))
		for _, cert := range doc.Certifications {
			blocks = append(blocks,
				boldParagraph(fmt.Sprintf("%s - %s", cert.Name, cert.Issuer)),
				paragraph(certDateLine(cert)),
				blank)
		}
	}

	return blocks
}

// DOCXExporter produces the styled rendition as a minimal OOXML package:
// content types, package relationships, and the document part.
type DOCXExporter struct{}

// NewDOCXExporter creates the styled exporter.
func NewDOCXExporter() *DOCXExporter {
	return &DOCXExporter{}
}

func (e *DOCXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

// Export computes the block list and packages it as a .docx file.
func (e *DOCXExporter) Export(doc resume.Document) (Artifact, error) {
	data, err := packageDOCX(Blocks(doc))
	if err != nil {
		return Artifact{}, errors.NewInternalError(errors.ErrCodeExportFailed,
			"Failed to package document", err)
	}

	return Artifact{
		Format:   "docx",
		Filename: baseFilename(doc) + ".docx",
		Data:     data,
	}, nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func packageDOCX(blocks []Block) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", documentXML(blocks)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentXML(blocks []Block) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	sb.WriteString("<w:body>\n")

	for _, block := range blocks {
		sb.WriteString("<w:p>")
		if block.Style != StyleNormal {
			fmt.Fprintf(&sb, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, block.Style)
		}
		for _, run := range block.Runs {
			sb.WriteString("<w:r>")
			if run.Bold {
				sb.WriteString("<w:rPr><w:b/></w:rPr>")
			}
			fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(run.Text))
			sb.WriteString("</w:r>")
		}
		sb.WriteString("</w:p>\n")
	}

	sb.WriteString("</w:body>\n</w:document>\n")
	return sb.String()
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
