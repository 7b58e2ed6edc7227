package domain

import "time"

type PromptOrigin string

const (
	OriginSystem PromptOrigin = "system"
	OriginAdmin  PromptOrigin = "admin"
)

// Prompt is an immutable catalog entry. IDs are sequential starting at 1 so
// the cycle scheduler can address prompts by position.
type Prompt struct {
	ID        int64
	Content   string
	Origin    PromptOrigin
	CreatedAt time.Time
}
