package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/insight"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/alexanderramin/journey/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// recentAnswerCount is the number of newest answers shown in a report.
const recentAnswerCount = 5

type reportService struct {
	users    repository.UserRepo
	prompts  repository.PromptRepo
	answers  repository.AnswerRepo
	progress repository.ProgressRepo
	observer UseCaseObserver
}

func NewReportService(
	users repository.UserRepo,
	prompts repository.PromptRepo,
	answers repository.AnswerRepo,
	progress repository.ProgressRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		users:    users,
		prompts:  prompts,
		answers:  answers,
		progress: progress,
		observer: useCaseObserverOrNoop(observers),
	}
}

// GetReport gathers the user's data concurrently and runs the insight rules
// over it. The report is computed on demand and never stored.
func (s *reportService) GetReport(ctx context.Context, req contract.ReportRequest) (resp *contract.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": req.UserID},
		})
	}()

	now := requestNow(req.Now)

	var (
		user     *domain.User
		catalog  int
		history  []domain.HistoryItem
		distinct int
		progress *domain.Progress
		recent   []domain.HistoryItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.users.GetByID(gctx, req.UserID)
		return err
	})
	g.Go(func() (err error) {
		catalog, err = s.prompts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		history, err = s.answers.ListHistory(gctx, req.UserID)
		return err
	})
	g.Go(func() (err error) {
		distinct, err = s.answers.CountDistinctPrompts(gctx, req.UserID)
		return err
	})
	g.Go(func() error {
		p, err := s.progress.Get(gctx, req.UserID)
		if isNotFound(err) {
			p, err = domain.NewProgress(req.UserID), nil
		}
		progress = p
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.answers.ListByUser(gctx, req.UserID, repository.AnswerFilter{Limit: recentAnswerCount})
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	texts := answerTexts(history)
	total := len(history)
	streak := progress.CurrentStreak(now)
	keywords := insight.ExtractKeywords(texts, insight.DefaultTopKeywords)
	hints := insight.RelationshipHints(texts)

	resp = &contract.ReportResponse{
		GeneratedAt:          now,
		TotalAnswers:         total,
		UniquePromptsCovered: distinct,
		Streak:               streak,
		TopKeywords:          keywords,
		RelationshipHints:    hints,
		RelationshipMap:      insight.HintMap(hints),
		Highlights:           insight.Highlights(keywords, hints, total, streak),
		Opportunities:        insight.Opportunities(keywords, hints, total),
		RecentAnswers:        make([]contract.RecentAnswer, 0, len(recent)),
		Cycle:                cycleSummary(scheduler.NextPrompt(catalog, user.PlanMonths, total)),
	}
	for _, it := range recent {
		resp.RecentAnswers = append(resp.RecentAnswers, contract.RecentAnswer{
			AnswerID:      it.Answer.ID,
			PromptContent: it.PromptContent,
			Content:       it.Answer.Content,
			AnsweredAt:    it.Answer.CreatedAt,
		})
	}
	if len(recent) > 0 {
		last := recent[0].Answer.CreatedAt
		resp.LastAnsweredAt = &last
	}
	return resp, nil
}

func cycleSummary(pos scheduler.CyclePosition) contract.CycleSummary {
	cs := contract.CycleSummary{
		CycleSize:        pos.CycleSize,
		AnsweredInCycle:  pos.AnsweredInCycle,
		RemainingInCycle: pos.RemainingInCycle,
	}
	if pos.NextPromptIndex != nil {
		id := int64(*pos.NextPromptIndex)
		cs.NextPromptID = &id
	}
	return cs
}
