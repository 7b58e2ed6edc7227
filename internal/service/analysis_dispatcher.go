package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/dispatch"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/intelligence"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const analyzeJobName = "analyze-answer"

// analysisDispatcher runs answer analysis on a dispatch.Pool keyed by user,
// so results for one user are written in submission order.
type analysisDispatcher struct {
	pool     *dispatch.Pool
	answers  repository.AnswerRepo
	goals    repository.GoalRepo
	analyses repository.AnalysisRepo
	analyzer intelligence.AnalysisService
	logger   *zap.Logger
	now      func() time.Time
}

// DispatcherOption configures an AnalysisDispatcher.
type DispatcherOption func(*analysisDispatcher)

// WithClock sets the clock used for the active goal lookup and the dates in
// the analysis prompt. Its location decides the calendar day.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *analysisDispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

func NewAnalysisDispatcher(
	pool *dispatch.Pool,
	answers repository.AnswerRepo,
	goals repository.GoalRepo,
	analyses repository.AnalysisRepo,
	analyzer intelligence.AnalysisService,
	logger *zap.Logger,
	opts ...DispatcherOption,
) AnalysisDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &analysisDispatcher{
		pool:     pool,
		answers:  answers,
		goals:    goals,
		analyses: analyses,
		analyzer: analyzer,
		logger:   logger,
		now:      time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *analysisDispatcher) Enqueue(userID, answerID string) error {
	return d.pool.TrySubmit(dispatch.Job{
		Key:  userID,
		Name: analyzeJobName,
		Run: func(ctx context.Context) error {
			return d.analyze(ctx, userID, answerID)
		},
	})
}

// analyze is the detached job body. Errors are returned to the pool, which
// logs and discards them.
func (d *analysisDispatcher) analyze(ctx context.Context, userID, answerID string) error {
	history, err := d.answers.ListHistory(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading history for answer %s: %w", answerID, err)
	}

	now := d.now()
	for i := range history {
		history[i].Answer.CreatedAt = history[i].Answer.CreatedAt.In(now.Location())
	}
	goal, err := d.goals.FindActive(ctx, userID, now)
	if err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("loading active goal: %w", err)
		}
		goal = nil
	}

	parsed, err := d.analyzer.Analyze(ctx, history, goal)
	if errors.Is(err, intelligence.ErrAnalysisDisabled) {
		d.logger.Debug("analysis skipped", zap.String("answer", answerID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("analyzing answer %s: %w", answerID, err)
	}

	result := &domain.AnalysisResult{
		ID:                     uuid.New().String(),
		UserID:                 userID,
		AnswerID:               answerID,
		Strengths:              parsed.Strengths,
		Weaknesses:             parsed.Weaknesses,
		Values:                 parsed.Values,
		ImprovementSuggestions: parsed.Improvements,
		Relationships:          parsed.Relationships,
		AnalyzedAt:             d.now(),
	}
	if err := d.analyses.Create(ctx, result); err != nil {
		return err
	}

	d.logger.Info("analysis stored",
		zap.String("user", userID),
		zap.String("answer", answerID),
		zap.Int("history", len(history)),
		zap.Int("relationships", len(result.Relationships)))
	return nil
}
