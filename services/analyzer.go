package services

import (
	"context"
	"encoding/json"
	"regexp"

	"resumearchitect/models"
	"resumearchitect/utils"
)

var jsonObjectRegex = regexp.MustCompile(`(?s)\{.*\}`)

// AtsAnalyzer scores a resume against a job description through the
// generation API.
type AtsAnalyzer struct {
	client *CohereClient
}

func NewAtsAnalyzer(client *CohereClient) *AtsAnalyzer {
	return &AtsAnalyzer{client: client}
}

// AnalyzeResume asks the model for an ATS report and parses the first
// JSON object out of the generation text. Remote and credential failures
// propagate to the caller; an answer that cannot be parsed is replaced
// with a generic default report rather than failing the request.
func (s *AtsAnalyzer) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error) {
	prompt := BuildAnalysisPrompt(resumeText, jobDescription)

	text, err := s.client.Generate(ctx, prompt, 2500, 0.2)
	if err != nil {
		return nil, err
	}

	result, err := parseAnalysis(text)
	if err != nil {
		utils.LogWarn("unparseable analysis response, using default report", err.Error())
		return defaultAnalysisResult(), nil
	}
	return result, nil
}

func parseAnalysis(text string) (*models.AnalysisResult, error) {
	match := jsonObjectRegex.FindString(text)
	if match == "" {
		return nil, &ValidationError{Reason: "no JSON object in analysis response"}
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(match), &result); err != nil {
		return nil, &ValidationError{Reason: "malformed analysis JSON"}
	}
	return &result, nil
}

// defaultAnalysisResult is the canned report used when the model answers
// with something other than the requested JSON shape.
func defaultAnalysisResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Score: 75,
		Suggestions: models.AnalysisSuggestions{
			Keywords: models.KeywordSuggestions{
				Missing: []string{"key skills from job description"},
				Found:   []string{"existing skills from resume"},
			},
			Structure: models.CategorySuggestions{
				Issues:          []string{"Review resume structure"},
				Recommendations: []string{"Add more achievements"},
			},
			Formatting: models.CategorySuggestions{
				Issues:          []string{"Check formatting"},
				Recommendations: []string{"Ensure consistent format"},
			},
			Content: models.CategorySuggestions{
				Issues:          []string{"Review content"},
				Recommendations: []string{"Add specific examples"},
			},
		},
	}
}
