package contract

import (
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

type SubmitAnswerRequest struct {
	UserID   string
	PromptID int64
	Content  string
	Now      *time.Time
}

func NewSubmitAnswerRequest(userID string, promptID int64, content string) SubmitAnswerRequest {
	return SubmitAnswerRequest{UserID: userID, PromptID: promptID, Content: content}
}

// PreviousAnswer is the user's most recent earlier answer to the same prompt.
type PreviousAnswer struct {
	AnswerID   string
	Content    string
	AnsweredAt time.Time
}

type SubmitAnswerResponse struct {
	AnswerID       string
	PreviousAnswer *PreviousAnswer
	SavedAt        time.Time
	// AnalysisQueued is false when the background analysis was dropped.
	AnalysisQueued bool
}

// AnswerHistoryRequest filters the history by prompt or by calendar day.
// PromptID wins when both are set.
type AnswerHistoryRequest struct {
	UserID   string
	Date     *time.Time
	PromptID *int64
	Limit    int
}

type AnswerHistoryEntry struct {
	AnswerID      string
	PromptID      int64
	PromptContent string
	Content       string
	AnsweredAt    time.Time
	Analysis      *domain.AnalysisResult
}

type AnswerHistoryResponse struct {
	Entries []AnswerHistoryEntry
}
