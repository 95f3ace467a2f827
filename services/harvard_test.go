package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumearchitect/models"
)

func TestHarvardTemplateHeader(t *testing.T) {
	tests := []struct {
		name     string
		resume   *models.Resume
		expected string
	}{
		{
			name: "full name",
			resume: &models.Resume{
				PersonalInfo: models.PersonalInfo{FirstName: "John", LastName: "Doe"},
			},
			expected: "# John Doe",
		},
		{
			name: "first name only",
			resume: &models.Resume{
				PersonalInfo: models.PersonalInfo{FirstName: "John"},
			},
			expected: "# John",
		},
		{
			name:     "empty name falls back to placeholder",
			resume:   &models.Resume{},
			expected: "# Your Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := HarvardTemplate(tt.resume)
			lines := strings.Split(output, "\n")
			assert.Equal(t, tt.expected, lines[0])
		})
	}
}

func TestHarvardTemplateContactPlaceholder(t *testing.T) {
	output := HarvardTemplate(&models.Resume{})
	assert.Contains(t, output, "Location • Email • Phone")
}

func TestHarvardTemplateContactOrder(t *testing.T) {
	resume := &models.Resume{
		PersonalInfo: models.PersonalInfo{
			Email:    "j@x.com",
			Phone:    "555-0100",
			Location: "Boston, MA",
			Website:  "jdoe.dev",
			LinkedIn: "linkedin.com/in/jdoe",
		},
	}
	output := HarvardTemplate(resume)
	assert.Contains(t, output, "Boston, MA • j@x.com • 555-0100 • linkedin.com/in/jdoe • jdoe.dev")
}

func TestHarvardTemplateOmitsEmptySections(t *testing.T) {
	output := HarvardTemplate(&models.Resume{Summary: "A summary."})

	assert.NotContains(t, output, "## Education")
	assert.NotContains(t, output, "## Experience")
	assert.NotContains(t, output, "## Skills")
	assert.NotContains(t, output, "## Certifications")
	assert.NotContains(t, output, "## Languages")
	assert.NotContains(t, output, "## Projects")
	assert.Contains(t, output, "## Summary\nA summary.")
}

func TestHarvardTemplateSkipsEntriesWithoutKeyField(t *testing.T) {
	resume := &models.Resume{
		Experience: []models.ExperienceEntry{
			{ID: "1", Title: "Ghost Title"},
			{ID: "2", Company: "Acme", Title: "Engineer"},
		},
		Education: []models.EducationEntry{
			{ID: "3", Degree: "B.S."},
		},
	}
	output := HarvardTemplate(resume)

	assert.NotContains(t, output, "Ghost Title")
	assert.Contains(t, output, "### Acme")
	// The education entry has no institution, so the heading appears but
	// the entry itself is skipped.
	assert.NotContains(t, output, "B.S.")
}

func TestHarvardTemplateEmptyAchievementPlaceholder(t *testing.T) {
	resume := &models.Resume{
		Experience: []models.ExperienceEntry{
			{ID: "1", Company: "Acme", Achievements: []string{""}},
		},
	}
	output := HarvardTemplate(resume)
	assert.NotContains(t, output, "- ")
}

func TestHarvardTemplateIdempotent(t *testing.T) {
	resume := &models.Resume{
		PersonalInfo: models.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "j@x.com"},
		Summary:      "Engineer.",
		Skills:       []string{"SQL", "Go"},
		Experience: []models.ExperienceEntry{
			{ID: "1", Company: "Acme", Title: "Engineer", StartDate: "2020", EndDate: "Present",
				Achievements: []string{"Did a thing"}},
		},
	}

	first := HarvardTemplate(resume)
	second := HarvardTemplate(resume)
	assert.Equal(t, first, second)
}

func TestHarvardTemplateJaneDoeScenario(t *testing.T) {
	resume := &models.Resume{
		PersonalInfo: models.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "j@x.com"},
		Skills:       []string{"SQL", "Go"},
	}
	output := HarvardTemplate(resume)

	assert.Contains(t, output, "# Jane Doe")
	assert.Contains(t, output, "j@x.com")
	assert.Contains(t, output, "## Skills\nSQL, Go")
	assert.NotContains(t, output, "## Experience")
	assert.NotContains(t, output, "## Education")
}

func TestHarvardTemplateEducationDetails(t *testing.T) {
	resume := &models.Resume{
		Education: []models.EducationEntry{
			{
				ID:           "1",
				Institution:  "Stanford University",
				Degree:       "M.S.",
				FieldOfStudy: "Computer Science",
				StartDate:    "2016",
				EndDate:      "2018",
				GPA:          "3.9",
				Achievements: []string{"Graduated with honors"},
			},
		},
	}
	output := HarvardTemplate(resume)

	assert.Contains(t, output, "### Stanford University")
	assert.Contains(t, output, "M.S. in Computer Science | 2016 - 2018")
	assert.Contains(t, output, "GPA: 3.9")
	assert.Contains(t, output, "- Graduated with honors")
}

func TestHarvardTemplateOptionalSections(t *testing.T) {
	resume := &models.Resume{
		Certifications: []models.CertificationEntry{
			{Name: "AWS Solutions Architect", Issuer: "Amazon", Date: "2023"},
			{Name: "", Issuer: "Skipped"},
		},
		Languages: []models.LanguageEntry{
			{Name: "Spanish", Proficiency: "Fluent"},
		},
		Projects: []models.ProjectEntry{
			{Name: "Side Project", Description: "A tool.", Technologies: []string{"Go", "Postgres"}, URL: "https://example.com"},
		},
	}
	output := HarvardTemplate(resume)

	assert.Contains(t, output, "- AWS Solutions Architect | Amazon | 2023")
	assert.NotContains(t, output, "Skipped")
	assert.Contains(t, output, "- Spanish: Fluent")
	assert.Contains(t, output, "### Side Project")
	assert.Contains(t, output, "Technologies: Go, Postgres")
	assert.Contains(t, output, "URL: https://example.com")
}

func TestHarvardTemplateTrailingWhitespaceTrimmed(t *testing.T) {
	output := HarvardTemplate(&models.Resume{Skills: []string{"Go"}})
	assert.Equal(t, strings.TrimRight(output, " \t\n"), output)
}
