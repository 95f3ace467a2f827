package services

import (
	"encoding/json"
	"fmt"

	"resumearchitect/models"
)

// BuildAnalysisPrompt builds the ATS analysis prompt. The model is asked
// to answer with a single JSON object matching models.AnalysisResult.
func BuildAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) analyzer and HR professional with extensive experience in resume optimization.

Analyze this resume against the job description in extreme detail. Focus on:

1. DETAILED KEYWORD ANALYSIS:
   - Extract ALL keywords from the job description
   - Check for exact matches, partial matches, and semantic matches
   - Consider industry-specific terminologies and variations

2. SKILLS ASSESSMENT:
   - Technical skills alignment
   - Soft skills presence
   - Required certifications/qualifications
   - Experience level match

3. EXPERIENCE EVALUATION:
   - Role responsibilities alignment
   - Industry relevance
   - Achievement metrics
   - Leadership/management requirements

4. COMPREHENSIVE STRUCTURE ANALYSIS:
   - Section organization
   - Content hierarchy
   - Information flow
   - Professional formatting

5. DETAILED RECOMMENDATIONS:
   - Specific phrasing improvements
   - Missing critical experiences
   - Quantifiable achievements
   - Technical proficiency demonstrations

Resume:
%s

Job Description:
%s

Return your analysis as a JSON object with this structure:
{
  "score": [number between 1-100],
  "suggestions": {
    "keywords": {
      "missing": [array of missing keywords],
      "found": [array of found keywords]
    },
    "structure": {
      "issues": [array of structure issues],
      "recommendations": [array of recommendations]
    },
    "formatting": {
      "issues": [array of formatting issues],
      "recommendations": [array of recommendations]
    },
    "content": {
      "issues": [array of content issues],
      "recommendations": [array of recommendations]
    }
  }
}`, resumeText, jobDescription)
}

// BuildImprovementPrompt builds the resume rewrite prompt. The requested
// output format matches the Harvard renderer's section grammar so the
// generated markdown slots into the same export path.
func BuildImprovementPrompt(r *models.Resume, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = "General professional position"
	}

	recordJSON, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		recordJSON = []byte("{}")
	}

	return fmt.Sprintf(`Create a professional ATS-optimized resume using this data:

%s

Job Description:
%s

Instructions:
1. Format as a professional resume
2. Use strong action verbs
3. Include quantifiable achievements
4. Incorporate relevant keywords
5. Maintain chronological order
6. Use clear section headers

Format:
# [Full Name]
[Contact Info]

## Summary
[Professional summary]

## Experience
### [Company Name]
[Job Title] | [Dates]
- [Achievement/Responsibility]

## Education
### [Institution]
[Degree] | [Dates]

## Skills
[Key skills and technologies]

Ensure all content is professional and ATS-friendly.`, recordJSON, jobDescription)
}
