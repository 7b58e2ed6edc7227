package service

import (
	"context"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/importer"
)

type UserService interface {
	Create(ctx context.Context, name string, planMonths int) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetPlanMonths(ctx context.Context, id string, months int) error
}

type PromptService interface {
	Create(ctx context.Context, content string, origin domain.PromptOrigin) (*domain.Prompt, error)
	List(ctx context.Context) ([]*domain.Prompt, error)
	GetTodayPrompt(ctx context.Context, req contract.TodayPromptRequest) (*contract.TodayPromptResponse, error)
}

type GoalService interface {
	Set(ctx context.Context, g *domain.Goal) error
	// GetActive returns nil, nil when no goal covers day.
	GetActive(ctx context.Context, userID string, day time.Time) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
}

type AnswerService interface {
	SubmitAnswer(ctx context.Context, req contract.SubmitAnswerRequest) (*contract.SubmitAnswerResponse, error)
	GetAnswerHistory(ctx context.Context, req contract.AnswerHistoryRequest) (*contract.AnswerHistoryResponse, error)
}

type AnalysisQueryService interface {
	// GetLatestAnalysis returns nil, nil when the user has no analysis yet.
	GetLatestAnalysis(ctx context.Context, userID string) (*domain.AnalysisResult, error)
	// GetAnalysisForAnswer returns nil, nil when the answer has not been
	// analyzed (yet).
	GetAnalysisForAnswer(ctx context.Context, answerID string) (*domain.AnalysisResult, error)
}

type ProgressService interface {
	GetProgress(ctx context.Context, userID string, now time.Time) (*contract.ProgressView, error)
}

type ReportService interface {
	GetReport(ctx context.Context, req contract.ReportRequest) (*contract.ReportResponse, error)
}

// AnalysisDispatcher schedules the detached analysis of a stored answer.
// Enqueue never blocks.
type AnalysisDispatcher interface {
	Enqueue(userID, answerID string) error
}

// ImportResult summarizes a catalog import.
type ImportResult struct {
	Added   []*domain.Prompt
	Skipped int
}

type ImportService interface {
	ImportCatalog(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCatalogFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error)
}
