package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/usecase/dto"
)

// SurveyUseCase обрабатывает бизнес-логику записей обследований
type SurveyUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger
}

// NewSurveyUseCase создает новый экземпляр SurveyUseCase
func NewSurveyUseCase(store repository.StoreRepository, logger *zap.Logger) *SurveyUseCase {
	return &SurveyUseCase{
		store:  store,
		logger: logger,
	}
}

// ListSurveys возвращает записи обследований. При непустом parkID - только
// записи парка, отсортированные новыми вперёд.
func (uc *SurveyUseCase) ListSurveys(ctx context.Context, parkID string) ([]domain.SurveyRecord, error) {
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	if parkID == "" {
		return surveys, nil
	}
	return domain.SurveysOfPark(surveys, parkID), nil
}

// GetSurvey возвращает запись по ID
func (uc *SurveyUseCase) GetSurvey(ctx context.Context, surveyID string) (*domain.SurveyRecord, error) {
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	for i := range surveys {
		if surveys[i].ID == surveyID {
			return &surveys[i], nil
		}
	}
	return nil, errors.ErrSurveyNotFound
}

// CreateSurvey создает запись обследования. Timestamp назначается здесь
// один раз и при дальнейших правках не меняется.
func (uc *SurveyUseCase) CreateSurvey(ctx context.Context, req dto.SurveyRequest) (*domain.SurveyRecord, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	parkExists := false
	for _, p := range parks {
		if p.ID == req.ParkID {
			parkExists = true
			break
		}
	}
	if !parkExists {
		return nil, errors.ErrParkNotFound
	}

	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}

	record := domain.SurveyRecord{
		ID:                uuid.NewString(),
		ParkID:            req.ParkID,
		BuildingID:        req.BuildingID,
		Date:              req.Date,
		OccupancyRate:     req.OccupancyRate,
		RentPrice:         req.RentPrice,
		Commission:        req.Commission,
		DeliveryStandard:  req.DeliveryStandard,
		ResponsiblePerson: req.ResponsiblePerson,
		Photos:            req.Photos,
		MarketAnalysis:    req.MarketAnalysis,
		SignificantEvents: req.SignificantEvents,
		Timestamp:         time.Now().UnixMilli(),
	}
	record.Sanitize()

	surveys = append(surveys, record)
	if err := uc.store.SaveSurveys(ctx, surveys); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}

	uc.logger.Info("Survey created",
		zap.String("survey_id", record.ID),
		zap.String("park_id", record.ParkID),
		zap.String("date", record.Date),
	)
	return &record, nil
}

// UpdateSurvey обновляет запись. Бизнес-дата правится свободно (в том числе
// задним числом, что пересчитывает исторические корзины), но исходный
// Timestamp создания сохраняется.
func (uc *SurveyUseCase) UpdateSurvey(ctx context.Context, surveyID string, req dto.SurveyRequest) (*domain.SurveyRecord, error) {
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("update survey: %w", err)
	}

	for i := range surveys {
		if surveys[i].ID != surveyID {
			continue
		}
		created := surveys[i].Timestamp

		surveys[i].ParkID = req.ParkID
		surveys[i].BuildingID = req.BuildingID
		surveys[i].Date = req.Date
		surveys[i].OccupancyRate = req.OccupancyRate
		surveys[i].RentPrice = req.RentPrice
		surveys[i].Commission = req.Commission
		surveys[i].DeliveryStandard = req.DeliveryStandard
		surveys[i].ResponsiblePerson = req.ResponsiblePerson
		surveys[i].Photos = req.Photos
		surveys[i].MarketAnalysis = req.MarketAnalysis
		surveys[i].SignificantEvents = req.SignificantEvents
		surveys[i].Timestamp = created
		surveys[i].Sanitize()

		if err := uc.store.SaveSurveys(ctx, surveys); err != nil {
			return nil, fmt.Errorf("update survey: %w", err)
		}

		uc.logger.Info("Survey updated", zap.String("survey_id", surveyID))
		return &surveys[i], nil
	}

	return nil, errors.ErrSurveyNotFound
}

// DeleteSurvey удаляет запись по ID
func (uc *SurveyUseCase) DeleteSurvey(ctx context.Context, surveyID string) error {
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}

	filtered := make([]domain.SurveyRecord, 0, len(surveys))
	found := false
	for _, s := range surveys {
		if s.ID == surveyID {
			found = true
			continue
		}
		filtered = append(filtered, s)
	}
	if !found {
		return errors.ErrSurveyNotFound
	}

	if err := uc.store.SaveSurveys(ctx, filtered); err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}

	uc.logger.Info("Survey deleted", zap.String("survey_id", surveyID))
	return nil
}
