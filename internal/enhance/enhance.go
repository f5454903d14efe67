// Package enhance is the gateway between resume fields and text enhancement
// backends. Providers turn a (section, content) request into a rewritten
// suggestion; sessions hold the suggestion until the caller accepts or rejects
// it. Nothing in this package writes to a document.
package enhance

import (
	"context"
	"strings"

	"resumecraft/internal/resume"
)

// Request is the wire shape of an enhancement call.
type Request struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// Response carries the rewritten text back to the caller.
type Response struct {
	EnhancedContent string `json:"enhanced_content"`
}

// Provider generates an enhanced rendition of one field's content.
type Provider interface {
	Enhance(ctx context.Context, req Request) (Response, error)
	Name() string
}

// Section names accepted by all providers. Unknown sections pass content
// through unchanged rather than failing.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionEducation  = "education"
)

// JoinSkills synthesizes the aggregate skills text submitted on behalf of the
// whole skills collection: skill names joined with commas, insertion order.
func JoinSkills(doc resume.Document) string {
	names := make([]string, 0, len(doc.Skills))
	for _, skill := range doc.Skills {
		names = append(names, skill.Name)
	}
	return strings.Join(names, ", ")
}
