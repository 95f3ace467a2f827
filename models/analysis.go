package models

// AnalysisResult is the ATS match report produced for a resume against a
// job description. Score is 0-100.
type AnalysisResult struct {
	Score       int                 `json:"score"`
	Suggestions AnalysisSuggestions `json:"suggestions"`
}

type AnalysisSuggestions struct {
	Keywords   KeywordSuggestions  `json:"keywords"`
	Structure  CategorySuggestions `json:"structure"`
	Formatting CategorySuggestions `json:"formatting"`
	Content    CategorySuggestions `json:"content"`
}

type KeywordSuggestions struct {
	Missing []string `json:"missing"`
	Found   []string `json:"found"`
}

type CategorySuggestions struct {
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}
