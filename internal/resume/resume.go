// Package resume defines the canonical in-memory representation of a resume
// document: one PersonalInfo value, one summary string, and five ordered entry
// collections. Entries carry identifiers stamped at construction time; the
// collections themselves preserve insertion order and are never re-sorted here.
package resume

import (
	"github.com/google/uuid"
)

// PersonalInfo is the contact header of a document. It is a value object with
// no identity of its own and is replaced wholesale on edit.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedIn"`
	Website  string `json:"website"`
}

// Experience is one work history entry. Current and EndDate are mutually
// exclusive: a current position has an empty end date.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Education is one education entry. GPA and Honors are optional free text and
// are not validated by the model.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

// Level is the closed proficiency enum for skills.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelExpert       Level = "Expert"
)

// Levels lists the valid proficiency levels in ascending order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Valid reports whether the level is one of the four enum values.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// SkillCategories is the fixed suggestion list for skill grouping. Category is
// open text; this list only seeds the editing collaborator's picker.
var SkillCategories = []string{
	"Programming", "Frontend", "Backend", "Database", "Cloud", "DevOps",
	"Mobile", "Design", "Project Management", "Other",
}

// Skill is one skill entry. Category is an unconstrained grouping key.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    Level  `json:"level"`
	Category string `json:"category"`
}

// Project is one project entry. Technologies keeps insertion order and allows
// duplicates.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// Certification is one certification entry. Expiry is derived at query time,
// never stored.
type Certification struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	URL        string `json:"url,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// Document is the root aggregate and the unit of save/export.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// NewBlankDocument returns the blank-template document: empty personal info,
// empty summary, five empty collections. Slices are non-nil so the structured
// export always encodes them as [] rather than null.
func NewBlankDocument() Document {
	return Document{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Certifications: []Certification{},
	}
}

// newID stamps a fresh entry identifier. Collision-free within a document
// lifetime is all the model promises.
func newID() string {
	return uuid.NewString()
}

// NewExperience returns an empty experience entry with a fresh identifier.
func NewExperience() Experience {
	return Experience{ID: newID()}
}

// NewEducation returns an empty education entry with a fresh identifier.
func NewEducation() Education {
	return Education{ID: newID()}
}

// NewSkill returns a skill entry with a fresh identifier and the default
// level and category.
func NewSkill() Skill {
	return Skill{
		ID:       newID(),
		Level:    LevelIntermediate,
		Category: "Programming",
	}
}

// NewProject returns an empty project entry with a fresh identifier.
func NewProject() Project {
	return Project{ID: newID(), Technologies: []string{}}
}

// NewCertification returns an empty certification entry with a fresh identifier.
func NewCertification() Certification {
	return Certification{ID: newID()}
}

// EntryID implementations let the generic editor operate over all five
// collections uniformly.

func (e Experience) EntryID() string    { return e.ID }
func (e Education) EntryID() string     { return e.ID }
func (s Skill) EntryID() string         { return s.ID }
func (p Project) EntryID() string       { return p.ID }
func (c Certification) EntryID() string { return c.ID }
