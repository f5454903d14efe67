package export

import (
	"fmt"
	"strings"

	"resumecraft/internal/resume"
)

// Page geometry in millimeters. Content spans leftMargin..leftMargin+contentWidth;
// a cursor past pageBreakY starts a new page.
const (
	leftMargin   = 20.0
	topMargin    = 20.0
	contentWidth = 170.0
	pageBreakY   = 277.0
)

// ptToMM converts a font size in points to millimeters.
const ptToMM = 0.352778

// TextBlock is one absolutely positioned line of the paginated rendition.
type TextBlock struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Bold     bool
	Page     int
}

// charBudget approximates how many characters fit on one content line at the
// given font size, assuming an average glyph width of half the font size.
func charBudget(fontSize float64) int {
	return int(contentWidth / (fontSize * 0.5 * ptToMM))
}

// wrap greedily word-wraps text into lines that fit the content width at the
// given font size. A single word longer than the budget gets its own line.
func wrap(text string, fontSize float64) []string {
	budget := charBudget(fontSize)
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) <= budget {
				line += " " + word
			} else {
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// pager tracks the vertical cursor and the current page while blocks are
// emitted top to bottom.
type pager struct {
	page   int
	y      float64
	blocks []TextBlock
}

func newPager() *pager {
	return &pager{page: 1, y: topMargin}
}

// place emits one block at the cursor, breaking to a new page first when the
// cursor has run past the printable area.
func (p *pager) place(text string, fontSize float64, bold bool) {
	if p.y > pageBreakY {
		p.page++
		p.y = topMargin
	}
	p.blocks = append(p.blocks, TextBlock{
		Text:     text,
		X:        leftMargin,
		Y:        p.y,
		FontSize: fontSize,
		Bold:     bold,
		Page:     p.page,
	})
}

func (p *pager) advance(delta float64) {
	p.y += delta
}

// placeWrapped emits wrapped lines with the given per-line advance and
// returns how many lines were placed.
func (p *pager) placeWrapped(text string, fontSize, lineAdvance float64) int {
	lines := wrap(text, fontSize)
	for _, line := range lines {
		p.place(line, fontSize, false)
		p.advance(lineAdvance)
	}
	return len(lines)
}

// Layout computes the paginated rendition of a document as positioned text
// blocks. It is pure: same document, same blocks. Sections appear in the
// fixed order with empty sections omitted entirely, entries in stored order.
func Layout(doc resume.Document) []TextBlock {
	p := newPager()

	p.place(doc.PersonalInfo.FullName, 20, true)
	p.advance(10)

	p.place(doc.PersonalInfo.Email, 12, false)
	p.advance(6)
	p.place(doc.PersonalInfo.Phone, 12, false)
	p.advance(6)
	p.place(doc.PersonalInfo.Location, 12, false)
	p.advance(15)

	if doc.Summary != "" {
		p.place("Professional Summary", 16, true)
		p.advance(8)
		p.placeWrapped(doc.Summary, 11, 5)
		p.advance(10)
	}

	if len(doc.Experience) > 0 {
		p.place("Work Experience", 16, true)
		p.advance(8)
		for _, exp := range doc.Experience {
			p.place(fmt.Sprintf("%s at %s", exp.Position, exp.Company), 12, true)
			p.advance(6)
			p.place(resume.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current), 10, false)
			p.advance(6)
			p.placeWrapped(exp.Description, 10, 4)
			p.advance(8)
		}
	}

	if len(doc.Education) > 0 {
		p.place("Education", 16, true)
		p.advance(8)
		for _, edu := range doc.Education {
			p.place(degreeLine(edu), 12, true)
			p.advance(6)
			p.place(edu.Institution, 10, false)
			p.advance(6)
			p.place(resume.FormatDateRange(edu.StartDate, edu.EndDate, false), 10, false)
			p.advance(6)
			if edu.GPA != "" {
				p.place("GPA: "+edu.GPA, 10, false)
				p.advance(6)
			}
			p.advance(4)
		}
	}

	if len(doc.Skills) > 0 {
		p.place("Skills", 16, true)
		p.advance(8)
		for _, group := range groupSkills(doc.Skills) {
			p.place(group.category, 12, true)
			p.advance(6)
			p.placeWrapped(group.joined, 10, 4)
			p.advance(4)
		}
	}

	if len(doc.Projects) > 0 {
		p.place("Projects", 16, true)
		p.advance(8)
		for _, proj := range doc.Projects {
			p.place(proj.Name, 12, true)
			p.advance(6)
			if len(proj.Technologies) > 0 {
				p.place(strings.Join(proj.Technologies, ", "), 10, false)
				p.advance(6)
			}
			p.placeWrapped(proj.Description, 10, 4)
			p.advance(8)
		}
	}

	if len(doc.Certifications) > 0 {
		p.place("Certifications", 16, true)
		p.advance(8)
		for _, cert := range doc.Certifications {
			p.place(fmt.Sprintf("%s - %s", cert.Name, cert.Issuer), 12, true)
			p.advance(6)
			p.place(certDateLine(cert), 10, false)
			p.advance(6)
			p.advance(4)
		}
	}

	return p.blocks
}

func degreeLine(edu resume.Education) string {
	if edu.Field == "" {
		return edu.Degree
	}
	return fmt.Sprintf("%s in %s", edu.Degree, edu.Field)
}

func certDateLine(cert resume.Certification) string {
	if cert.ExpiryDate == "" {
		return cert.Date
	}
	return fmt.Sprintf("%s (expires %s)", cert.Date, cert.ExpiryDate)
}

type skillGroup struct {
	category string
	joined   string
}

// groupSkills buckets skills by category, categories ordered by first
// appearance and skills kept in stored order within each bucket.
func groupSkills(skills []resume.Skill) []skillGroup {
	order := make([]string, 0)
	byCategory := make(map[string][]string)
	for _, skill := range skills {
		if _, seen := byCategory[skill.Category]; !seen {
			order = append(order, skill.Category)
		}
		byCategory[skill.Category] = append(byCategory[skill.Category],
			fmt.Sprintf("%s (%s)", skill.Name, skill.Level))
	}

	groups := make([]skillGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, skillGroup{
			category: category,
			joined:   strings.Join(byCategory[category], ", "),
		})
	}
	return groups
}
