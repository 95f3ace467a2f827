package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumearchitect/models"
)

func improverTestResume() *models.Resume {
	return &models.Resume{
		PersonalInfo: models.PersonalInfo{FirstName: "Jane", LastName: "Doe", Email: "j@x.com"},
		Skills:       []string{"SQL", "Go"},
		Experience: []models.ExperienceEntry{
			{ID: "1", Company: "Acme", Title: "Engineer", Achievements: []string{"Shipped billing"}},
		},
	}
}

// goodGeneration is long enough and names the required sections.
var goodGeneration = "# Jane Doe\nj@x.com\n\n## Summary\nBackend engineer.\n\n## Experience\n### Acme\nEngineer | 2020 - Present\n- Shipped the billing system and cut invoice latency in half\n\n## Education\n### MIT\nB.S. | 2012 - 2016\n\n## Skills\nGo, SQL, Postgres"

func TestGenerateImprovedResumeSuccess(t *testing.T) {
	server := newStubServer(t, goodGeneration)
	defer server.Close()

	improver := NewResumeImprover(newTestClient(server.URL))
	content, fallback := improver.GenerateImprovedResume(context.Background(), improverTestResume(), "Backend role")

	assert.False(t, fallback)
	assert.Equal(t, goodGeneration, content)
}

func TestGenerateImprovedResumeFallsBackOnShortContent(t *testing.T) {
	// 50 characters: well under the minimum accepted generation length.
	server := newStubServer(t, strings.Repeat("x", 50))
	defer server.Close()

	resume := improverTestResume()
	improver := NewResumeImprover(newTestClient(server.URL))
	content, fallback := improver.GenerateImprovedResume(context.Background(), resume, "Backend role")

	assert.True(t, fallback)
	assert.Equal(t, HarvardTemplate(resume), content)
}

func TestGenerateImprovedResumeFallsBackOnMissingSections(t *testing.T) {
	server := newStubServer(t, strings.Repeat("professional filler text. ", 20))
	defer server.Close()

	resume := improverTestResume()
	improver := NewResumeImprover(newTestClient(server.URL))
	content, fallback := improver.GenerateImprovedResume(context.Background(), resume, "")

	assert.True(t, fallback)
	assert.Equal(t, HarvardTemplate(resume), content)
}

func TestGenerateImprovedResumeFallsBackOnMissingCredential(t *testing.T) {
	client := NewCohereClientWithEndpoint(&staticCredentials{}, "http://127.0.0.1:1", "command")

	resume := improverTestResume()
	improver := NewResumeImprover(client)
	content, fallback := improver.GenerateImprovedResume(context.Background(), resume, "")

	assert.True(t, fallback)
	assert.Equal(t, HarvardTemplate(resume), content)
}

func TestGenerateImprovedResumeFallsBackOnNetworkError(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	resume := improverTestResume()
	improver := NewResumeImprover(client)
	content, fallback := improver.GenerateImprovedResume(context.Background(), resume, "")

	assert.True(t, fallback)
	assert.Equal(t, HarvardTemplate(resume), content)
}
