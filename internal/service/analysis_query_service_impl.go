package service

import (
	"context"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

type analysisQueryService struct {
	analyses repository.AnalysisRepo
}

func NewAnalysisQueryService(analyses repository.AnalysisRepo) AnalysisQueryService {
	return &analysisQueryService{analyses: analyses}
}

func (s *analysisQueryService) GetLatestAnalysis(ctx context.Context, userID string) (*domain.AnalysisResult, error) {
	res, err := s.analyses.GetLatestByUser(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (s *analysisQueryService) GetAnalysisForAnswer(ctx context.Context, answerID string) (*domain.AnalysisResult, error) {
	res, err := s.analyses.GetByAnswer(ctx, answerID)
	if isNotFound(err) {
		return nil, nil
	}
	return res, err
}
