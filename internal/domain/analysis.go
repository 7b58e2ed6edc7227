package domain

import "time"

// AnalysisResult is the structured outcome of one background analysis run.
// At most one exists per answer; a failed run leaves none.
type AnalysisResult struct {
	ID                     string
	UserID                 string
	AnswerID               string
	Strengths              string
	Weaknesses             string
	Values                 string
	ImprovementSuggestions string
	Relationships          map[string]string
	AnalyzedAt             time.Time
}
