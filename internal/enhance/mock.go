package enhance

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

// MockProvider rewrites content with deterministic heuristics: the same input
// always yields the same suggestion, keyed by an FNV hash of the text. It
// needs no network and is the default provider for local editing.
type MockProvider struct{}

// Ensure MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates the deterministic local provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Name() string { return "mock" }

var summaryPrefixes = []string{
	"Dynamic and results-driven",
	"Innovative and detail-oriented",
	"Highly motivated and experienced",
	"Strategic and analytical",
	"Creative and solution-focused",
}

var summaryImprovements = []string{
	"with a proven track record of delivering exceptional results",
	"demonstrating exceptional leadership and problem-solving capabilities",
	"with expertise in driving organizational growth and efficiency",
	"specializing in innovative solutions and strategic implementation",
	"with a passion for excellence and continuous improvement",
}

var experienceActionWords = []string{
	"Spearheaded", "Orchestrated", "Pioneered", "Optimized", "Streamlined",
	"Collaborated", "Implemented", "Developed", "Managed", "Led",
}

var experienceMetrics = []string{
	"resulting in 25% increased efficiency",
	"leading to $50K+ cost savings annually",
	"improving team productivity by 30%",
	"reducing processing time by 40%",
	"achieving 95% client satisfaction rate",
}

var skillCategoryOrder = []string{"Technical", "Leadership", "Communication"}

var skillPrefixes = map[string][]string{
	"Technical":     {"Advanced proficiency in", "Expert-level knowledge of", "Specialized expertise in"},
	"Leadership":    {"Proven leadership in", "Demonstrated excellence in", "Strategic management of"},
	"Communication": {"Exceptional communication skills in", "Professional proficiency in", "Advanced capabilities in"},
}

var educationSuffixes = []string{
	"with academic excellence and leadership recognition",
	"including relevant coursework in advanced topics",
	"with honors and distinguished academic performance",
	"complemented by practical project experience",
	"with focus on industry-relevant applications",
}

// pick indexes into options by hashing the text, which keeps the output
// stable across processes.
func pick(options []string, text string) string {
	h := fnv.New32a()
	h.Write([]byte(text))
	return options[int(h.Sum32())%len(options)]
}

// Enhance rewrites content per section. Unknown sections pass through
// unchanged.
func (m *MockProvider) Enhance(_ context.Context, req Request) (Response, error) {
	content := strings.TrimSpace(req.Content)

	var enhanced string
	switch strings.ToLower(req.Section) {
	case SectionSummary:
		enhanced = m.enhanceSummary(content)
	case SectionExperience:
		enhanced = m.enhanceExperience(content)
	case SectionSkills:
		enhanced = m.enhanceSkills(content)
	case SectionEducation:
		enhanced = m.enhanceEducation(content)
	default:
		enhanced = content
	}

	return Response{EnhancedContent: enhanced}, nil
}

func (m *MockProvider) enhanceSummary(content string) string {
	enhanced := content
	lower := strings.ToLower(content)
	hasPrefix := false
	for _, prefix := range summaryPrefixes {
		if strings.Contains(lower, strings.ToLower(prefix)) {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		enhanced = pick(summaryPrefixes, content) + " " + strings.ToLower(content)
	}
	return enhanced + " " + pick(summaryImprovements, content) + "."
}

func (m *MockProvider) enhanceExperience(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}

		enhanced := line
		hasAction := false
		for _, word := range experienceActionWords {
			if strings.Contains(line, word) {
				hasAction = true
				break
			}
		}
		if !hasAction {
			enhanced = pick(experienceActionWords, line) + " " + strings.ToLower(line)
		}
		if !strings.ContainsFunc(line, unicode.IsDigit) {
			enhanced += ", " + pick(experienceMetrics, line)
		}
		out = append(out, enhanced)
	}
	return strings.Join(out, "\n")
}

func (m *MockProvider) enhanceSkills(content string) string {
	raw := strings.ReplaceAll(content, "\n", ",")
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}

	out := make([]string, 0, len(skills))
	for i, skill := range skills {
		category := skillCategoryOrder[i%len(skillCategoryOrder)]
		out = append(out, pick(skillPrefixes[category], skill)+" "+skill)
	}
	return strings.Join(out, "\n")
}

func (m *MockProvider) enhanceEducation(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}
		out = append(out, line+" "+pick(educationSuffixes, line))
	}
	return strings.Join(out, "\n")
}
