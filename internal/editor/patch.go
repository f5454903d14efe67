package editor

import (
	"fmt"

	"resumecraft/internal/errors"
	"resumecraft/internal/resume"
)

// Patch types carry partial field replacements. A nil field leaves the stored
// value untouched; a non-nil field replaces it, empty string included.

// ExperiencePatch is a partial update for one experience entry. Setting
// Current to true clears the end date; setting a non-empty EndDate clears
// Current. The editor enforces this, not the caller.
type ExperiencePatch struct {
	Company     *string
	Position    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
	Location    *string
}

// EducationPatch is a partial update for one education entry.
type EducationPatch struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
	GPA         *string
	Honors      *string
}

// SkillPatch is a partial update for one skill entry. Level is validated
// against the closed enum.
type SkillPatch struct {
	Name     *string
	Level    *resume.Level
	Category *string
}

// ProjectPatch is a partial update for one project entry. Technologies, when
// set, is the raw comma-separated string submitted by the editing
// collaborator and is normalized before storage.
type ProjectPatch struct {
	Name         *string
	Description  *string
	Technologies *string
	URL          *string
	GitHub       *string
	StartDate    *string
	EndDate      *string
}

// CertificationPatch is a partial update for one certification entry.
type CertificationPatch struct {
	Name       *string
	Issuer     *string
	Date       *string
	URL        *string
	ExpiryDate *string
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// UpdateExperience applies a partial update to the matching entry. The
// current/endDate exclusivity rule is applied after the plain field
// replacements so the two effects of a single call stay consistent.
func UpdateExperience(collection []resume.Experience, id string, patch ExperiencePatch) []resume.Experience {
	return Update(collection, id, func(exp resume.Experience) resume.Experience {
		setString(&exp.Company, patch.Company)
		setString(&exp.Position, patch.Position)
		setString(&exp.StartDate, patch.StartDate)
		setString(&exp.Description, patch.Description)
		setString(&exp.Location, patch.Location)
		if patch.Current != nil {
			exp.Current = *patch.Current
			if exp.Current {
				exp.EndDate = ""
			}
		}
		if patch.EndDate != nil {
			exp.EndDate = *patch.EndDate
			if exp.EndDate != "" {
				exp.Current = false
			}
		}
		return exp
	})
}

// UpdateEducation applies a partial update to the matching entry.
func UpdateEducation(collection []resume.Education, id string, patch EducationPatch) []resume.Education {
	return Update(collection, id, func(edu resume.Education) resume.Education {
		setString(&edu.Institution, patch.Institution)
		setString(&edu.Degree, patch.Degree)
		setString(&edu.Field, patch.Field)
		setString(&edu.StartDate, patch.StartDate)
		setString(&edu.EndDate, patch.EndDate)
		setString(&edu.GPA, patch.GPA)
		setString(&edu.Honors, patch.Honors)
		return edu
	})
}

// UpdateSkill applies a partial update to the matching entry. An invalid
// proficiency level rejects the whole patch and leaves the collection
// unchanged.
func UpdateSkill(collection []resume.Skill, id string, patch SkillPatch) ([]resume.Skill, error) {
	if patch.Level != nil && !patch.Level.Valid() {
		return collection, errors.NewValidationError(errors.ErrCodeInvalidLevel,
			fmt.Sprintf("invalid skill level: %s", *patch.Level), nil)
	}
	return Update(collection, id, func(skill resume.Skill) resume.Skill {
		setString(&skill.Name, patch.Name)
		if patch.Level != nil {
			skill.Level = *patch.Level
		}
		setString(&skill.Category, patch.Category)
		return skill
	}), nil
}

// UpdateProject applies a partial update to the matching entry, normalizing
// the technologies string into the stored ordered list.
func UpdateProject(collection []resume.Project, id string, patch ProjectPatch) []resume.Project {
	return Update(collection, id, func(proj resume.Project) resume.Project {
		setString(&proj.Name, patch.Name)
		setString(&proj.Description, patch.Description)
		setString(&proj.URL, patch.URL)
		setString(&proj.GitHub, patch.GitHub)
		setString(&proj.StartDate, patch.StartDate)
		setString(&proj.EndDate, patch.EndDate)
		if patch.Technologies != nil {
			proj.Technologies = SplitTechnologies(*patch.Technologies)
		}
		return proj
	})
}

// UpdateCertification applies a partial update to the matching entry.
func UpdateCertification(collection []resume.Certification, id string, patch CertificationPatch) []resume.Certification {
	return Update(collection, id, func(cert resume.Certification) resume.Certification {
		setString(&cert.Name, patch.Name)
		setString(&cert.Issuer, patch.Issuer)
		setString(&cert.Date, patch.Date)
		setString(&cert.URL, patch.URL)
		setString(&cert.ExpiryDate, patch.ExpiryDate)
		return cert
	})
}
