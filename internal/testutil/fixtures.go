package testutil

import (
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/google/uuid"
)

// User options
type UserOption func(*domain.User)

func WithPlanMonths(m int) UserOption {
	return func(u *domain.User) {
		u.PlanMonths = m
	}
}

func NewTestUser(name string, opts ...UserOption) *domain.User {
	now := time.Now().UTC()
	u := &domain.User{
		ID:         uuid.New().String(),
		Name:       name,
		PlanMonths: domain.DefaultPlanMonths,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Prompt options
type PromptOption func(*domain.Prompt)

func WithOrigin(o domain.PromptOrigin) PromptOption {
	return func(p *domain.Prompt) {
		p.Origin = o
	}
}

// NewTestPrompt builds an unsaved prompt; the ID is assigned on insert.
func NewTestPrompt(content string, opts ...PromptOption) *domain.Prompt {
	p := &domain.Prompt{
		Content:   content,
		Origin:    domain.OriginSystem,
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Answer options
type AnswerOption func(*domain.Answer)

func WithAnsweredAt(t time.Time) AnswerOption {
	return func(a *domain.Answer) {
		a.CreatedAt = t.UTC()
	}
}

func NewTestAnswer(userID string, promptID int64, content string, opts ...AnswerOption) *domain.Answer {
	a := &domain.Answer{
		ID:        uuid.New().String(),
		UserID:    userID,
		PromptID:  promptID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalCreatedAt(t time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.CreatedAt = t.UTC()
		g.UpdatedAt = t.UTC()
	}
}

func NewTestGoal(userID string, start, end time.Time, ideal string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:                     uuid.New().String(),
		UserID:                 userID,
		StartDate:              domain.CivilDate(start),
		EndDate:                domain.CivilDate(end),
		IdealPersonDescription: ideal,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Analysis options
type AnalysisOption func(*domain.AnalysisResult)

func WithAnalyzedAt(t time.Time) AnalysisOption {
	return func(r *domain.AnalysisResult) {
		r.AnalyzedAt = t.UTC()
	}
}

func WithRelationships(m map[string]string) AnalysisOption {
	return func(r *domain.AnalysisResult) {
		r.Relationships = m
	}
}

func NewTestAnalysis(userID, answerID string, opts ...AnalysisOption) *domain.AnalysisResult {
	r := &domain.AnalysisResult{
		ID:                     uuid.New().String(),
		UserID:                 userID,
		AnswerID:               answerID,
		Strengths:              "Reflective",
		Weaknesses:             "Impatient",
		Values:                 "Family",
		ImprovementSuggestions: "Slow down",
		Relationships:          map[string]string{},
		AnalyzedAt:             time.Now().UTC(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}
