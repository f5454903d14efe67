package resume

import (
	"testing"
	"time"
)

func TestLevelValid(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{LevelBeginner, true},
		{LevelIntermediate, true},
		{LevelAdvanced, true},
		{LevelExpert, true},
		{Level("expert"), false},
		{Level("Master"), false},
		{Level(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.Valid(); got != tt.want {
				t.Errorf("Level(%q).Valid() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewBlankDocument(t *testing.T) {
	doc := NewBlankDocument()

	if doc.PersonalInfo != (PersonalInfo{}) {
		t.Errorf("expected empty personal info, got %+v", doc.PersonalInfo)
	}
	if doc.Summary != "" {
		t.Errorf("expected empty summary, got %q", doc.Summary)
	}

	// Collections must be non-nil so the structured export encodes [] not null
	if doc.Experience == nil || len(doc.Experience) != 0 {
		t.Error("expected empty non-nil experience collection")
	}
	if doc.Education == nil || len(doc.Education) != 0 {
		t.Error("expected empty non-nil education collection")
	}
	if doc.Skills == nil || len(doc.Skills) != 0 {
		t.Error("expected empty non-nil skills collection")
	}
	if doc.Projects == nil || len(doc.Projects) != 0 {
		t.Error("expected empty non-nil projects collection")
	}
	if doc.Certifications == nil || len(doc.Certifications) != 0 {
		t.Error("expected empty non-nil certifications collection")
	}
}

func TestConstructorsStampIdentifiers(t *testing.T) {
	seen := map[string]bool{}
	ids := []string{
		NewExperience().ID,
		NewEducation().ID,
		NewSkill().ID,
		NewProject().ID,
		NewCertification().ID,
		NewExperience().ID,
	}

	for _, id := range ids {
		if id == "" {
			t.Fatal("constructor produced an empty identifier")
		}
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
}

func TestNewSkillDefaults(t *testing.T) {
	skill := NewSkill()
	if skill.Level != LevelIntermediate {
		t.Errorf("expected default level %q, got %q", LevelIntermediate, skill.Level)
	}
	if skill.Category != "Programming" {
		t.Errorf("expected default category Programming, got %q", skill.Category)
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"current position", "2022-03", "", true, "2022-03 - Present"},
		{"current overrides end date", "2022-03", "2023-01", true, "2022-03 - Present"},
		{"finished position", "2019-06", "2021-02", false, "2019-06 - 2021-02"},
		{"empty dates", "", "", false, " - "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateRange(tt.start, tt.end, tt.current); got != tt.want {
				t.Errorf("FormatDateRange(%q, %q, %v) = %q, want %q",
					tt.start, tt.end, tt.current, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-06", true},
		{"2024-06-15", true},
		{"2024", true},
		{"June 2024", false},
		{"", false},
		{"not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, ok := ParseDate(tt.input); ok != tt.ok {
				t.Errorf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func TestCertificationExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   bool
	}{
		{"no expiry date never expires", "", false},
		{"future expiry", "2026-01", false},
		{"past expiry", "2024-12", true},
		{"unparsable expiry never expires", "someday", false},
		{"year-only past expiry", "2023", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := Certification{Name: "Cert", ExpiryDate: tt.expiry}
			if got := cert.Expired(now); got != tt.want {
				t.Errorf("Expired(%v) with expiry %q = %v, want %v", now, tt.expiry, got, tt.want)
			}
		})
	}
}
