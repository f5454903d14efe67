package editor

import (
	"testing"

	"resumecraft/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAppends(t *testing.T) {
	collection := []resume.Experience{}

	first := resume.NewExperience()
	first.Company = "Acme"
	collection = Add(collection, first)

	second := resume.NewExperience()
	second.Company = "Globex"
	collection = Add(collection, second)

	require.Len(t, collection, 2)
	assert.Equal(t, "Acme", collection[0].Company)
	assert.Equal(t, "Globex", collection[1].Company)
}

func TestAddDoesNotAliasInput(t *testing.T) {
	original := []resume.Skill{resume.NewSkill()}
	grown := Add(original, resume.NewSkill())

	grown[0].Name = "mutated"
	assert.Empty(t, original[0].Name, "Add must not share the input's backing array")
}

func TestUpdatePreservesPosition(t *testing.T) {
	a, b, c := resume.NewProject(), resume.NewProject(), resume.NewProject()
	a.Name, b.Name, c.Name = "a", "b", "c"
	collection := []resume.Project{a, b, c}

	updated := Update(collection, b.ID, func(p resume.Project) resume.Project {
		p.Name = "b2"
		return p
	})

	require.Len(t, updated, 3)
	assert.Equal(t, []string{"a", "b2", "c"}, []string{updated[0].Name, updated[1].Name, updated[2].Name})
	assert.Equal(t, "b", collection[1].Name, "input collection must stay untouched")
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	entry := resume.NewCertification()
	collection := []resume.Certification{entry}

	updated := Update(collection, "nope", func(c resume.Certification) resume.Certification {
		c.Name = "changed"
		return c
	})

	assert.Equal(t, collection, updated)
}

func TestRemove(t *testing.T) {
	a, b, c := resume.NewEducation(), resume.NewEducation(), resume.NewEducation()
	collection := []resume.Education{a, b, c}

	shrunk := Remove(collection, b.ID)
	require.Len(t, shrunk, 2)
	assert.Equal(t, a.ID, shrunk[0].ID)
	assert.Equal(t, c.ID, shrunk[1].ID)

	unchanged := Remove(collection, "nope")
	assert.Equal(t, collection, unchanged)
}

func TestUpdateExperienceCurrentClearsEndDate(t *testing.T) {
	exp := resume.NewExperience()
	exp.EndDate = "2023-05"
	collection := []resume.Experience{exp}

	current := true
	updated := UpdateExperience(collection, exp.ID, ExperiencePatch{Current: &current})

	require.Len(t, updated, 1)
	assert.True(t, updated[0].Current)
	assert.Empty(t, updated[0].EndDate)
}

func TestUpdateExperienceEndDateClearsCurrent(t *testing.T) {
	exp := resume.NewExperience()
	exp.Current = true
	collection := []resume.Experience{exp}

	endDate := "2024-01"
	updated := UpdateExperience(collection, exp.ID, ExperiencePatch{EndDate: &endDate})

	require.Len(t, updated, 1)
	assert.False(t, updated[0].Current)
	assert.Equal(t, "2024-01", updated[0].EndDate)
}

func TestUpdateExperienceNilFieldsLeaveValues(t *testing.T) {
	exp := resume.NewExperience()
	exp.Company = "Acme"
	exp.Description = "Built things"
	collection := []resume.Experience{exp}

	position := "Engineer"
	updated := UpdateExperience(collection, exp.ID, ExperiencePatch{Position: &position})

	assert.Equal(t, "Acme", updated[0].Company)
	assert.Equal(t, "Built things", updated[0].Description)
	assert.Equal(t, "Engineer", updated[0].Position)
}

func TestUpdateSkillRejectsInvalidLevel(t *testing.T) {
	skill := resume.NewSkill()
	collection := []resume.Skill{skill}

	bad := resume.Level("Wizard")
	_, err := UpdateSkill(collection, skill.ID, SkillPatch{Level: &bad})
	require.Error(t, err)

	good := resume.LevelExpert
	updated, err := UpdateSkill(collection, skill.ID, SkillPatch{Level: &good})
	require.NoError(t, err)
	assert.Equal(t, resume.LevelExpert, updated[0].Level)
}

func TestUpdateProjectSplitsTechnologies(t *testing.T) {
	proj := resume.NewProject()
	collection := []resume.Project{proj}

	raw := "React,  Node.js ,, Mongo "
	updated := UpdateProject(collection, proj.ID, ProjectPatch{Technologies: &raw})

	assert.Equal(t, []string{"React", "Node.js", "Mongo"}, updated[0].Technologies)
}

func TestSplitTechnologies(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain list", "React,Node.js,Mongo", []string{"React", "Node.js", "Mongo"}},
		{"whitespace and empties", "React,  Node.js ,, Mongo ", []string{"React", "Node.js", "Mongo"}},
		{"duplicates kept", "Go,Go", []string{"Go", "Go"}},
		{"empty input", "", []string{}},
		{"only separators", " , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTechnologies(tt.raw))
		})
	}
}
