package export

import (
	"strings"
	"testing"

	"resumecraft/internal/editor"
	"resumecraft/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findBlock(t *testing.T, blocks []TextBlock, text string) TextBlock {
	t.Helper()
	for _, block := range blocks {
		if block.Text == text {
			return block
		}
	}
	t.Fatalf("no block with text %q", text)
	return TextBlock{}
}

func hasBlock(blocks []TextBlock, text string) bool {
	for _, block := range blocks {
		if block.Text == text {
			return true
		}
	}
	return false
}

func TestLayoutBlankDocumentOmitsAllSections(t *testing.T) {
	blocks := Layout(resume.NewBlankDocument())

	// Header only: name plus three contact lines
	require.Len(t, blocks, 4)
	for _, heading := range []string{"Professional Summary", "Work Experience", "Education", "Skills", "Projects", "Certifications"} {
		assert.False(t, hasBlock(blocks, heading), "unexpected section %q in blank layout", heading)
	}
}

func TestLayoutHeaderGeometry(t *testing.T) {
	doc := resume.NewBlankDocument()
	doc.PersonalInfo.FullName = "Sarah Johnson"
	doc.PersonalInfo.Email = "sarah@example.com"

	blocks := Layout(doc)
	require.Len(t, blocks, 4)

	name := blocks[0]
	assert.Equal(t, "Sarah Johnson", name.Text)
	assert.Equal(t, 20.0, name.FontSize)
	assert.True(t, name.Bold)
	assert.Equal(t, leftMargin, name.X)
	assert.Equal(t, topMargin, name.Y)
	assert.Equal(t, 1, name.Page)

	email := blocks[1]
	assert.Equal(t, "sarah@example.com", email.Text)
	assert.Equal(t, 12.0, email.FontSize)
	assert.Equal(t, topMargin+10, email.Y)
}

func TestLayoutBlankToExperienceScenario(t *testing.T) {
	// Build up from blank the way an editing session would
	doc := resume.NewBlankDocument()

	exp := resume.NewExperience()
	exp.Position = "Engineer"
	exp.Company = "Acme"
	exp.StartDate = "2024-01"
	exp.Current = true
	exp.Description = "Shipped the widget service"
	doc.Experience = editor.Add(doc.Experience, exp)

	require.Len(t, doc.Experience, 1)
	assert.True(t, doc.Experience[0].Current)
	assert.Empty(t, doc.Experience[0].EndDate)

	blocks := Layout(doc)

	title := findBlock(t, blocks, "Engineer at Acme")
	assert.True(t, title.Bold)
	assert.Equal(t, 12.0, title.FontSize)

	dates := findBlock(t, blocks, "2024-01 - Present")
	assert.True(t, strings.HasSuffix(dates.Text, "- Present"))
	assert.True(t, hasBlock(blocks, "Work Experience"))
	assert.True(t, hasBlock(blocks, "Shipped the widget service"))
}

func TestLayoutSummaryWraps(t *testing.T) {
	doc := resume.NewBlankDocument()
	doc.Summary = strings.Repeat("enthusiastic engineer ", 20)

	blocks := Layout(doc)

	var summaryLines int
	for _, block := range blocks {
		if block.FontSize == 11 {
			summaryLines++
			budget := charBudget(11)
			assert.LessOrEqual(t, len(block.Text), budget)
		}
	}
	assert.Greater(t, summaryLines, 1, "long summary should wrap onto multiple lines")
}

func TestLayoutPageBreak(t *testing.T) {
	doc := resume.NewBlankDocument()
	for range 20 {
		exp := resume.NewExperience()
		exp.Position = "Engineer"
		exp.Company = "Acme"
		exp.StartDate = "2020-01"
		exp.EndDate = "2021-01"
		exp.Description = "Did the work"
		doc.Experience = editor.Add(doc.Experience, exp)
	}

	blocks := Layout(doc)

	lastPage := 0
	for _, block := range blocks {
		if block.Page > lastPage {
			lastPage = block.Page
		}
		assert.LessOrEqual(t, block.Y, pageBreakY+20, "cursor must reset after the page break line")
	}
	assert.Greater(t, lastPage, 1, "twenty experience entries must spill onto a second page")
}

func TestLayoutSkillsGroupedByCategory(t *testing.T) {
	doc := resume.NewBlankDocument()
	for _, spec := range []struct {
		name     string
		category string
		level    resume.Level
	}{
		{"Go", "Backend", resume.LevelExpert},
		{"React", "Frontend", resume.LevelAdvanced},
		{"PostgreSQL", "Backend", resume.LevelAdvanced},
	} {
		skill := resume.NewSkill()
		skill.Name = spec.name
		skill.Category = spec.category
		skill.Level = spec.level
		doc.Skills = editor.Add(doc.Skills, skill)
	}

	blocks := Layout(doc)

	assert.True(t, hasBlock(blocks, "Backend"))
	assert.True(t, hasBlock(blocks, "Frontend"))
	assert.True(t, hasBlock(blocks, "Go (Expert), PostgreSQL (Advanced)"))
	assert.True(t, hasBlock(blocks, "React (Advanced)"))
}

func TestGroupSkillsOrderedByFirstAppearance(t *testing.T) {
	skills := []resume.Skill{
		{ID: "1", Name: "Go", Level: resume.LevelExpert, Category: "Backend"},
		{ID: "2", Name: "React", Level: resume.LevelAdvanced, Category: "Frontend"},
		{ID: "3", Name: "SQL", Level: resume.LevelAdvanced, Category: "Backend"},
	}

	groups := groupSkills(skills)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].category)
	assert.Equal(t, "Frontend", groups[1].category)
	assert.Equal(t, "Go (Expert), SQL (Advanced)", groups[0].joined)
}

func TestDegreeLine(t *testing.T) {
	assert.Equal(t, "BS in Computer Science",
		degreeLine(resume.Education{Degree: "BS", Field: "Computer Science"}))
	assert.Equal(t, "BS", degreeLine(resume.Education{Degree: "BS"}))
}

func TestCertDateLine(t *testing.T) {
	assert.Equal(t, "2023-03",
		certDateLine(resume.Certification{Date: "2023-03"}))
	assert.Equal(t, "2023-03 (expires 2026-03)",
		certDateLine(resume.Certification{Date: "2023-03", ExpiryDate: "2026-03"}))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fontSize float64
		want     int
	}{
		{"empty text", "", 11, 0},
		{"short line", "hello world", 11, 1},
		{"blank paragraphs skipped", "a\n\n\nb", 11, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, wrap(tt.text, tt.fontSize), tt.want)
		})
	}
}
