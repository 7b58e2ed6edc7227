package scheduler

import "math"

// CyclePosition describes where a user stands in their prompt cycle.
type CyclePosition struct {
	// NextPromptIndex is the 1-based catalog position of the next prompt,
	// or nil when the catalog is empty.
	NextPromptIndex  *int
	CycleSize        int
	AnsweredInCycle  int
	RemainingInCycle int
}

// CycleSize scales the catalog to the user's plan length:
// max(1, round(catalogSize * planMonths / 12)). Plans shorter than a month
// count as one month. An empty catalog has no cycle.
func CycleSize(catalogSize, planMonths int) int {
	if catalogSize <= 0 {
		return 0
	}
	if planMonths < 1 {
		planMonths = 1
	}
	raw := int(math.Round(float64(catalogSize) * float64(planMonths) / 12.0))
	return max(1, raw)
}

// NextPrompt recomputes the cycle position from the total number of answers.
// There is no stored cursor, so concurrent sessions always agree on the
// position for a given count.
//
// Indexing wraps over the full catalog rather than the cycle: cycles longer
// than the catalog repeat prompts, shorter ones only touch a prefix of it.
func NextPrompt(catalogSize, planMonths, totalAnswered int) CyclePosition {
	size := CycleSize(catalogSize, planMonths)
	if size == 0 {
		return CyclePosition{}
	}
	if totalAnswered < 0 {
		totalAnswered = 0
	}

	answered := totalAnswered % size
	next := answered%catalogSize + 1

	// answered < size, so remaining is always in 1..size: a cycle that was
	// just completed reports the full size of the one about to start.
	return CyclePosition{
		NextPromptIndex:  &next,
		CycleSize:        size,
		AnsweredInCycle:  answered,
		RemainingInCycle: size - answered,
	}
}
