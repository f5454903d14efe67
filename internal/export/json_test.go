package export

import (
	"strings"
	"testing"

	"resumecraft/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() resume.Document {
	return resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Phone:    "(555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/sarahjohnson",
			Website:  "sarahjohnson.dev",
		},
		Summary: "Experienced software engineer with a passion for clean code.",
		Experience: []resume.Experience{{
			ID:          "1",
			Company:     "TechCorp Inc.",
			Position:    "Senior Software Engineer",
			StartDate:   "2021-03",
			Current:     true,
			Description: "Led development of microservices architecture",
			Location:    "San Francisco, CA",
		}},
		Education: []resume.Education{{
			ID:          "2",
			Institution: "UC Berkeley",
			Degree:      "Bachelor of Science",
			Field:       "Computer Science",
			StartDate:   "2013-08",
			EndDate:     "2017-05",
			GPA:         "3.8",
			Honors:      "Magna Cum Laude",
		}},
		Skills: []resume.Skill{{
			ID:       "3",
			Name:     "JavaScript",
			Level:    resume.LevelExpert,
			Category: "Programming",
		}},
		Projects: []resume.Project{{
			ID:           "4",
			Name:         "E-commerce Platform",
			Description:  "Full-stack e-commerce solution",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			StartDate:    "2023-01",
			EndDate:      "2023-06",
		}},
		Certifications: []resume.Certification{{
			ID:     "5",
			Name:   "AWS Certified Developer",
			Issuer: "Amazon Web Services",
			Date:   "2023-03",
		}},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := fullDocument()

	artifact, err := NewJSONExporter().Export(doc)
	require.NoError(t, err)
	assert.Equal(t, "json", artifact.Format)
	assert.True(t, strings.HasSuffix(artifact.Filename, ".json"))
	assert.Contains(t, artifact.Filename, "Sarah Johnson")

	restored, err := Import(artifact.Data)
	require.NoError(t, err)
	assert.Equal(t, doc, restored)
}

func TestJSONRoundTripBlankDocument(t *testing.T) {
	doc := resume.NewBlankDocument()

	artifact, err := NewJSONExporter().Export(doc)
	require.NoError(t, err)

	// Empty collections encode as [], not null
	assert.Contains(t, string(artifact.Data), `"experience": []`)

	restored, err := Import(artifact.Data)
	require.NoError(t, err)
	assert.Equal(t, doc, restored)
}

func TestJSONExportFilenameFallsBackForUnnamed(t *testing.T) {
	artifact, err := NewJSONExporter().Export(resume.NewBlankDocument())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(artifact.Filename, "resume_"))
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"missing sections", `{"personalInfo": {}}`},
		{"wrong collection type", `{"personalInfo": {}, "summary": "", "experience": {}, "education": [], "skills": [], "projects": [], "certifications": []}`},
		{"invalid skill level", `{"personalInfo": {}, "summary": "", "experience": [], "education": [], "skills": [{"id": "1", "name": "Go", "level": "Wizard", "category": "Programming"}], "projects": [], "certifications": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
