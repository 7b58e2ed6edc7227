package contract

import "github.com/alexanderramin/journey/internal/domain"

// TodayPromptRequest selects the user whose next prompt is computed. The
// position depends only on the answer count, never on the date.
type TodayPromptRequest struct {
	UserID string
}

// TodayPromptResponse carries the next prompt in the user's cycle. Prompt is
// nil when the catalog is empty or the computed position is missing.
type TodayPromptResponse struct {
	Prompt           *domain.Prompt
	PreviousAnswer   *PreviousAnswer
	AnsweredCount    int
	CycleSize        int
	AnsweredInCycle  int
	RemainingInCycle int
}
