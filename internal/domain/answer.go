package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyAnswer is returned when an answer has no content after trimming.
var ErrEmptyAnswer = errors.New("answer content is empty")

type Answer struct {
	ID        string
	UserID    string
	PromptID  int64
	Content   string
	CreatedAt time.Time
}

// Validate checks the answer carries the fields the pipeline depends on.
func (a *Answer) Validate() error {
	if strings.TrimSpace(a.Content) == "" {
		return ErrEmptyAnswer
	}
	return nil
}

// HistoryItem is an answer joined with the text of the prompt it responds to.
type HistoryItem struct {
	Answer        Answer
	PromptContent string
}
