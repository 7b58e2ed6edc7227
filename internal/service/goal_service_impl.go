package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyIdeal is returned when a goal has no ideal-self description.
var ErrEmptyIdeal = errors.New("ideal person description is empty")

type goalService struct {
	goals repository.GoalRepo
	users repository.UserRepo
}

func NewGoalService(goals repository.GoalRepo, users repository.UserRepo) GoalService {
	return &goalService{goals: goals, users: users}
}

func (s *goalService) Set(ctx context.Context, g *domain.Goal) error {
	g.IdealPersonDescription = strings.TrimSpace(g.IdealPersonDescription)
	if g.IdealPersonDescription == "" {
		return ErrEmptyIdeal
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, g.UserID); err != nil {
		return err
	}

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetActive(ctx context.Context, userID string, day time.Time) (*domain.Goal, error) {
	g, err := s.goals.FindActive(ctx, userID, day)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (s *goalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}
