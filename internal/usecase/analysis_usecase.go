package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/usecase/dto"
)

// AnalysisUseCase строит текстовые сводки через внешний сервис генерации.
// Для каждой точки запуска поддерживается не более одного запроса
// одновременно: повторный вызов во время работы отклоняется.
type AnalysisUseCase struct {
	store     repository.StoreRepository
	narrative repository.NarrativeRepository
	logger    *zap.Logger

	mu             sync.Mutex
	marketRunning  bool
	surveysRunning map[string]bool
}

// NewAnalysisUseCase создает новый экземпляр AnalysisUseCase
func NewAnalysisUseCase(store repository.StoreRepository, narrative repository.NarrativeRepository, logger *zap.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		store:          store,
		narrative:      narrative,
		logger:         logger,
		surveysRunning: make(map[string]bool),
	}
}

// AnalyzeMarket формирует сводку по рынку целиком
func (uc *AnalysisUseCase) AnalyzeMarket(ctx context.Context) (*dto.AnalysisResponse, error) {
	uc.mu.Lock()
	if uc.marketRunning {
		uc.mu.Unlock()
		return nil, errors.ErrAnalysisInProgress
	}
	uc.marketRunning = true
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.marketRunning = false
		uc.mu.Unlock()
	}()

	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze market: %w", err)
	}
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze market: %w", err)
	}

	uc.logger.Info("Market analysis requested",
		zap.Int("parks", len(parks)),
		zap.Int("surveys", len(surveys)))

	text := uc.narrative.SummarizeMarket(ctx, parks, surveys)
	return &dto.AnalysisResponse{Text: text}, nil
}

// AnalyzeSurvey формирует разбор одной записи обследования в сравнении
// с предыдущей записью того же парка
func (uc *AnalysisUseCase) AnalyzeSurvey(ctx context.Context, surveyID string) (*dto.AnalysisResponse, error) {
	uc.mu.Lock()
	if uc.surveysRunning[surveyID] {
		uc.mu.Unlock()
		return nil, errors.ErrAnalysisInProgress
	}
	uc.surveysRunning[surveyID] = true
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		delete(uc.surveysRunning, surveyID)
		uc.mu.Unlock()
	}()

	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze survey: %w", err)
	}

	var record *domain.SurveyRecord
	for i := range surveys {
		if surveys[i].ID == surveyID {
			record = &surveys[i]
			break
		}
	}
	if record == nil {
		return nil, errors.ErrSurveyNotFound
	}

	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze survey: %w", err)
	}

	// Осиротевшая запись допустима: разбор строится без парка
	parkName := "Unknown park"
	for i := range parks {
		if parks[i].ID == record.ParkID {
			parkName = parks[i].Name
			break
		}
	}

	previous := domain.PreviousBefore(surveys, record)

	uc.logger.Info("Survey analysis requested",
		zap.String("survey_id", surveyID),
		zap.String("park", parkName),
		zap.Bool("has_previous", previous != nil))

	text := uc.narrative.AnalyzeEntry(ctx, parkName, *record, previous)
	return &dto.AnalysisResponse{Text: text}, nil
}
