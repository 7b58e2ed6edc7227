package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/scheduler"
)

// ErrEmptyPrompt is returned when a prompt has no text.
var ErrEmptyPrompt = errors.New("prompt content is empty")

type promptService struct {
	prompts repository.PromptRepo
	users   repository.UserRepo
	answers repository.AnswerRepo
}

func NewPromptService(prompts repository.PromptRepo, users repository.UserRepo, answers repository.AnswerRepo) PromptService {
	return &promptService{prompts: prompts, users: users, answers: answers}
}

func (s *promptService) Create(ctx context.Context, content string, origin domain.PromptOrigin) (*domain.Prompt, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyPrompt
	}
	switch origin {
	case "":
		origin = domain.OriginSystem
	case domain.OriginSystem, domain.OriginAdmin:
	default:
		return nil, fmt.Errorf("unknown prompt origin %q", origin)
	}

	p := &domain.Prompt{Content: content, Origin: origin, CreatedAt: time.Now().UTC()}
	if err := s.prompts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *promptService) List(ctx context.Context) ([]*domain.Prompt, error) {
	return s.prompts.List(ctx)
}

// GetTodayPrompt recomputes the user's cycle position from their answer
// count. A position that does not resolve to a stored prompt yields a nil
// prompt, not an error.
func (s *promptService) GetTodayPrompt(ctx context.Context, req contract.TodayPromptRequest) (*contract.TodayPromptResponse, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.prompts.Count(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.answers.CountByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	pos := scheduler.NextPrompt(catalog, user.PlanMonths, total)
	resp := &contract.TodayPromptResponse{
		AnsweredCount:    total,
		CycleSize:        pos.CycleSize,
		AnsweredInCycle:  pos.AnsweredInCycle,
		RemainingInCycle: pos.RemainingInCycle,
	}
	if pos.NextPromptIndex == nil {
		return resp, nil
	}

	prompt, err := s.prompts.GetByID(ctx, int64(*pos.NextPromptIndex))
	if err != nil {
		if isNotFound(err) {
			return resp, nil
		}
		return nil, err
	}
	resp.Prompt = prompt

	prev, err := s.answers.FindLatestForPrompt(ctx, req.UserID, prompt.ID)
	switch {
	case err == nil:
		resp.PreviousAnswer = previousAnswerView(prev)
	case !isNotFound(err):
		return nil, err
	}
	return resp, nil
}
