package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/llm"
)

// ErrAnalysisDisabled is returned by the analysis service used when no
// language model is configured.
var ErrAnalysisDisabled = errors.New("analysis disabled")

// AnalysisService turns a user's answer history into structured insight.
type AnalysisService interface {
	// Analyze submits the full history (oldest first) and the optional active
	// goal to the model and parses its reply.
	Analyze(ctx context.Context, history []domain.HistoryItem, goal *domain.Goal) (*ParsedAnalysis, error)
}

type analysisService struct {
	client llm.LLMClient
}

// NewAnalysisService creates an AnalysisService backed by an LLM client.
func NewAnalysisService(client llm.LLMClient) AnalysisService {
	return &analysisService{client: client}
}

func (s *analysisService) Analyze(ctx context.Context, history []domain.HistoryItem, goal *domain.Goal) (*ParsedAnalysis, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   buildAnalysisPrompt(history, goal),
	})
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, fmt.Errorf("generating analysis: %w: empty reply", llm.ErrInvalidOutput)
	}

	parsed := ParseSections(resp.Text)
	return &parsed, nil
}

type disabledAnalysisService struct{}

// NewDisabledAnalysisService returns an AnalysisService that always fails
// with ErrAnalysisDisabled.
func NewDisabledAnalysisService() AnalysisService {
	return disabledAnalysisService{}
}

func (disabledAnalysisService) Analyze(context.Context, []domain.HistoryItem, *domain.Goal) (*ParsedAnalysis, error) {
	return nil, ErrAnalysisDisabled
}
