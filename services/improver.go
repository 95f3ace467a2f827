package services

import (
	"context"
	"strings"

	"resumearchitect/models"
	"resumearchitect/utils"
)

// minGeneratedLength is the shortest generation accepted as a usable
// resume; anything shorter is rejected as a truncated or refused answer.
const minGeneratedLength = 200

var requiredSections = []string{"experience", "education", "skills"}

// ResumeImprover rewrites a resume against a job description via the
// generation API, falling back to the deterministic Harvard template on
// any failure so the caller always receives usable markdown.
type ResumeImprover struct {
	client *CohereClient
}

func NewResumeImprover(client *CohereClient) *ResumeImprover {
	return &ResumeImprover{client: client}
}

// GenerateImprovedResume returns improved resume markdown and whether the
// template fallback was used. One API attempt, no retries; the underlying
// error is logged, never surfaced.
func (s *ResumeImprover) GenerateImprovedResume(ctx context.Context, r *models.Resume, jobDescription string) (string, bool) {
	content, err := s.tryGenerate(ctx, r, jobDescription)
	if err != nil {
		utils.LogWarn("AI resume generation failed, falling back to template", err.Error())
		return HarvardTemplate(r), true
	}
	return content, false
}

func (s *ResumeImprover) tryGenerate(ctx context.Context, r *models.Resume, jobDescription string) (string, error) {
	prompt := BuildImprovementPrompt(r, jobDescription)

	text, err := s.client.Generate(ctx, prompt, 2000, 0.3)
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(text)
	if len(content) < minGeneratedLength {
		return "", &ValidationError{Reason: "generated content too short"}
	}

	lower := strings.ToLower(content)
	hasSection := false
	for _, section := range requiredSections {
		if strings.Contains(lower, section) {
			hasSection = true
			break
		}
	}
	if !hasSection {
		return "", &ValidationError{Reason: "missing required sections"}
	}

	return content, nil
}
