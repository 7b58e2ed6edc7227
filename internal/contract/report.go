package contract

import (
	"time"

	"github.com/alexanderramin/journey/internal/insight"
)

type ReportRequest struct {
	UserID string
	Now    *time.Time
}

type CycleSummary struct {
	CycleSize        int
	AnsweredInCycle  int
	RemainingInCycle int
	NextPromptID     *int64
}

type RecentAnswer struct {
	AnswerID      string
	PromptContent string
	Content       string
	AnsweredAt    time.Time
}

type ReportResponse struct {
	GeneratedAt          time.Time
	TotalAnswers         int
	UniquePromptsCovered int
	// Streak is the displayed streak: zero once a day has been missed.
	Streak            int
	LastAnsweredAt    *time.Time
	TopKeywords       []insight.KeywordCount
	RelationshipHints []insight.RelationshipHint
	// RelationshipMap is RelationshipHints keyed by keyword.
	RelationshipMap map[string]string
	Highlights        []string
	Opportunities     []string
	RecentAnswers     []RecentAnswer
	Cycle             CycleSummary
}

// ProgressView is the stored progress record with the displayed streak.
type ProgressView struct {
	UserID             string
	TotalAnswers       int
	ConsecutiveDays    int
	CurrentStreak      int
	LastAnsweredDate   *time.Time
	SelfAwarenessLevel int
}
