package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/contract"
	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type answerService struct {
	answers    repository.AnswerRepo
	analyses   repository.AnalysisRepo
	uow        db.UnitOfWork
	dispatcher AnalysisDispatcher
	logger     *zap.Logger
	observer   UseCaseObserver
}

func NewAnswerService(
	answers repository.AnswerRepo,
	analyses repository.AnalysisRepo,
	uow db.UnitOfWork,
	dispatcher AnalysisDispatcher,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) AnswerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &answerService{
		answers:    answers,
		analyses:   analyses,
		uow:        uow,
		dispatcher: dispatcher,
		logger:     logger,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// SubmitAnswer stores the answer and advances the user's progress in one
// transaction, then hands the analysis to the dispatcher without waiting.
func (s *answerService) SubmitAnswer(ctx context.Context, req contract.SubmitAnswerRequest) (resp *contract.SubmitAnswerResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user":   req.UserID,
		"prompt": req.PromptID,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-answer",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := requestNow(req.Now)
	answer := &domain.Answer{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		PromptID:  req.PromptID,
		Content:   strings.TrimSpace(req.Content),
		CreatedAt: now,
	}
	if err = answer.Validate(); err != nil {
		return nil, err
	}

	var previous *domain.Answer
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txPrompts := repository.NewSQLitePromptRepo(tx)
		txAnswers := repository.NewSQLiteAnswerRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)

		if _, err := txUsers.GetByID(ctx, req.UserID); err != nil {
			return err
		}
		if _, err := txPrompts.GetByID(ctx, req.PromptID); err != nil {
			return err
		}

		prev, err := txAnswers.FindLatestForPrompt(ctx, req.UserID, req.PromptID)
		switch {
		case err == nil:
			previous = prev
		case !isNotFound(err):
			return err
		}

		if err := txAnswers.Create(ctx, answer); err != nil {
			return err
		}

		progress, err := txProgress.Get(ctx, req.UserID)
		if isNotFound(err) {
			progress, err = domain.NewProgress(req.UserID), nil
		}
		if err != nil {
			return err
		}
		progress.RecordAnswer(now)
		return txProgress.Upsert(ctx, progress)
	})
	if err != nil {
		return nil, fmt.Errorf("submitting answer: %w", err)
	}
	fields["answer"] = answer.ID

	queued := true
	if qErr := s.dispatcher.Enqueue(answer.UserID, answer.ID); qErr != nil {
		queued = false
		s.logger.Warn("analysis dropped",
			zap.String("user", answer.UserID),
			zap.String("answer", answer.ID),
			zap.Error(qErr))
	}
	fields["analysis_queued"] = queued

	return &contract.SubmitAnswerResponse{
		AnswerID:       answer.ID,
		PreviousAnswer: previousAnswerView(previous),
		SavedAt:        answer.CreatedAt,
		AnalysisQueued: queued,
	}, nil
}

// GetAnswerHistory lists answers newest first, each with its analysis when
// one has been stored.
func (s *answerService) GetAnswerHistory(ctx context.Context, req contract.AnswerHistoryRequest) (*contract.AnswerHistoryResponse, error) {
	items, err := s.answers.ListByUser(ctx, req.UserID, repository.AnswerFilter{
		Date:     req.Date,
		PromptID: req.PromptID,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("loading answer history: %w", err)
	}

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.Answer.ID
	}
	analyses, err := s.analyses.ListByAnswers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading analyses: %w", err)
	}

	entries := make([]contract.AnswerHistoryEntry, len(items))
	for i, it := range items {
		entries[i] = contract.AnswerHistoryEntry{
			AnswerID:      it.Answer.ID,
			PromptID:      it.Answer.PromptID,
			PromptContent: it.PromptContent,
			Content:       it.Answer.Content,
			AnsweredAt:    it.Answer.CreatedAt,
			Analysis:      analyses[it.Answer.ID],
		}
	}
	return &contract.AnswerHistoryResponse{Entries: entries}, nil
}
