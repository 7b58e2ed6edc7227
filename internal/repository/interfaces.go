package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

// AnswerFilter narrows an answer listing. Date selects the calendar day
// containing it, in its own location. When both fields are set PromptID
// takes precedence and Date is ignored.
type AnswerFilter struct {
	Date     *time.Time
	PromptID *int64
	Limit    int
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdatePlanMonths(ctx context.Context, id string, months int) error
}

type PromptRepo interface {
	// Create inserts the prompt and assigns its sequential ID.
	Create(ctx context.Context, p *domain.Prompt) error
	GetByID(ctx context.Context, id int64) (*domain.Prompt, error)
	List(ctx context.Context) ([]*domain.Prompt, error)
	Count(ctx context.Context) (int, error)
}

type AnswerRepo interface {
	Create(ctx context.Context, a *domain.Answer) error
	GetByID(ctx context.Context, id string) (*domain.Answer, error)
	// FindLatestForPrompt returns the user's most recent answer to the prompt.
	FindLatestForPrompt(ctx context.Context, userID string, promptID int64) (*domain.Answer, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CountDistinctPrompts(ctx context.Context, userID string) (int, error)
	// ListHistory returns every answer of the user oldest first, joined with
	// the prompt text.
	ListHistory(ctx context.Context, userID string) ([]domain.HistoryItem, error)
	// ListByUser returns answers newest first, joined with the prompt text.
	ListByUser(ctx context.Context, userID string, f AnswerFilter) ([]domain.HistoryItem, error)
}

type ProgressRepo interface {
	Get(ctx context.Context, userID string) (*domain.Progress, error)
	Upsert(ctx context.Context, p *domain.Progress) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	// FindActive returns the most recently created goal whose window contains day.
	FindActive(ctx context.Context, userID string, day time.Time) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error)
}

type AnalysisRepo interface {
	Create(ctx context.Context, r *domain.AnalysisResult) error
	GetLatestByUser(ctx context.Context, userID string) (*domain.AnalysisResult, error)
	GetByAnswer(ctx context.Context, answerID string) (*domain.AnalysisResult, error)
	// ListByAnswers returns the results for the given answers keyed by answer ID.
	ListByAnswers(ctx context.Context, answerIDs []string) (map[string]*domain.AnalysisResult, error)
}
