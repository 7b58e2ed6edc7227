package service

import (
	"context"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

type progressService struct {
	progress repository.ProgressRepo
	users    repository.UserRepo
}

func NewProgressService(progress repository.ProgressRepo, users repository.UserRepo) ProgressService {
	return &progressService{progress: progress, users: users}
}

// GetProgress returns the user's progress, or the initial record when the
// user has not answered yet.
func (s *progressService) GetProgress(ctx context.Context, userID string, now time.Time) (*contract.ProgressView, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	p, err := s.progress.Get(ctx, userID)
	if isNotFound(err) {
		p, err = domain.NewProgress(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return progressView(p, now), nil
}

func progressView(p *domain.Progress, now time.Time) *contract.ProgressView {
	return &contract.ProgressView{
		UserID:             p.UserID,
		TotalAnswers:       p.TotalAnswers,
		ConsecutiveDays:    p.ConsecutiveDays,
		CurrentStreak:      p.CurrentStreak(now),
		LastAnsweredDate:   p.LastAnsweredDate,
		SelfAwarenessLevel: p.SelfAwarenessLevel,
	}
}
