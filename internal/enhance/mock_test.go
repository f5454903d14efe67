package enhance

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderDeterministic(t *testing.T) {
	provider := NewMockProvider()
	req := Request{Section: SectionSummary, Content: "Software engineer with five years of experience"}

	first, err := provider.Enhance(context.Background(), req)
	require.NoError(t, err)
	second, err := provider.Enhance(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.EnhancedContent, second.EnhancedContent)
	assert.NotEqual(t, req.Content, first.EnhancedContent)
}

func TestMockProviderSummary(t *testing.T) {
	provider := NewMockProvider()

	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionSummary, Content: "Software engineer"})
	require.NoError(t, err)

	// A prefix is prepended and an improvement clause appended
	assert.Contains(t, resp.EnhancedContent, "software engineer")
	assert.True(t, strings.HasSuffix(resp.EnhancedContent, "."))
	assert.Greater(t, len(resp.EnhancedContent), len("Software engineer"))
}

func TestMockProviderSummaryKeepsExistingPrefix(t *testing.T) {
	provider := NewMockProvider()
	content := "Dynamic and results-driven engineer"

	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionSummary, Content: content})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.EnhancedContent, content))
}

func TestMockProviderExperienceMetrics(t *testing.T) {
	provider := NewMockProvider()

	// No digits: an action word and a metric are added
	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionExperience, Content: "built the data pipeline"})
	require.NoError(t, err)
	assert.True(t, strings.ContainsAny(resp.EnhancedContent, "0123456789"),
		"expected a quantified metric to be appended")

	// A line that already has a number is left unquantified
	resp, err = provider.Enhance(context.Background(),
		Request{Section: SectionExperience, Content: "Led a team of 5 engineers"})
	require.NoError(t, err)
	assert.Equal(t, "Led a team of 5 engineers", resp.EnhancedContent)
}

func TestMockProviderExperienceKeepsBlankLines(t *testing.T) {
	provider := NewMockProvider()
	content := "built the pipeline\n\nshipped the dashboard"

	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionExperience, Content: content})
	require.NoError(t, err)

	lines := strings.Split(resp.EnhancedContent, "\n")
	require.Len(t, lines, 3)
	assert.Empty(t, lines[1])
}

func TestMockProviderSkills(t *testing.T) {
	provider := NewMockProvider()

	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionSkills, Content: "Go, SQL, Kubernetes"})
	require.NoError(t, err)

	lines := strings.Split(resp.EnhancedContent, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Go")
	assert.Contains(t, lines[1], "SQL")
	assert.Contains(t, lines[2], "Kubernetes")
}

func TestMockProviderEducation(t *testing.T) {
	provider := NewMockProvider()
	content := "BS in Computer Science"

	resp, err := provider.Enhance(context.Background(),
		Request{Section: SectionEducation, Content: content})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.EnhancedContent, content))
	assert.Greater(t, len(resp.EnhancedContent), len(content))
}

func TestMockProviderUnknownSectionPassesThrough(t *testing.T) {
	provider := NewMockProvider()

	resp, err := provider.Enhance(context.Background(),
		Request{Section: "hobbies", Content: "chess"})
	require.NoError(t, err)
	assert.Equal(t, "chess", resp.EnhancedContent)
}
