package service

import (
	"errors"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

// requestNow resolves the clock for a request, defaulting to the local time.
// Calendar days are taken in the location of the returned time.
func requestNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

// isNotFound reports whether err is a repository miss.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func previousAnswerView(a *domain.Answer) *contract.PreviousAnswer {
	if a == nil {
		return nil
	}
	return &contract.PreviousAnswer{
		AnswerID:   a.ID,
		Content:    a.Content,
		AnsweredAt: a.CreatedAt,
	}
}

// answerTexts extracts the raw answer texts in the given order.
func answerTexts(items []domain.HistoryItem) []string {
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Answer.Content
	}
	return texts
}
