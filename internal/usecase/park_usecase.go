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

// ParkUseCase обрабатывает бизнес-логику парков и корпусов
type ParkUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger
}

// NewParkUseCase создает новый экземпляр ParkUseCase
func NewParkUseCase(store repository.StoreRepository, logger *zap.Logger) *ParkUseCase {
	return &ParkUseCase{
		store:  store,
		logger: logger,
	}
}

// ListParks возвращает все парки
func (uc *ParkUseCase) ListParks(ctx context.Context) ([]domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parks: %w", err)
	}
	return parks, nil
}

// GetPark возвращает парк по ID
func (uc *ParkUseCase) GetPark(ctx context.Context, parkID string) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get park: %w", err)
	}
	for i := range parks {
		if parks[i].ID == parkID {
			return &parks[i], nil
		}
	}
	return nil, errors.ErrParkNotFound
}

// CreatePark создает новый парк. Корпусов у нового парка нет,
// поэтому стартовая площадь всегда нулевая.
func (uc *ParkUseCase) CreatePark(ctx context.Context, req dto.ParkRequest) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("create park: %w", err)
	}

	park := domain.Park{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Tags:        req.Tags,
		Buildings:   []domain.Building{},
		CreatedAt:   time.Now().UnixMilli(),
		IsOwnPark:   req.IsOwnPark,
	}
	park.RecalculateTotalArea()

	parks = append(parks, park)
	if err := uc.store.SaveParks(ctx, parks); err != nil {
		return nil, fmt.Errorf("create park: %w", err)
	}

	uc.logger.Info("Park created",
		zap.String("park_id", park.ID),
		zap.String("name", park.Name),
		zap.Bool("own", park.IsOwnPark),
	)
	return &park, nil
}

// UpdatePark обновляет атрибуты парка. Корпуса и момент создания
// сохраняются, площадь пересчитывается.
func (uc *ParkUseCase) UpdatePark(ctx context.Context, parkID string, req dto.ParkRequest) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("update park: %w", err)
	}

	for i := range parks {
		if parks[i].ID != parkID {
			continue
		}
		parks[i].Name = req.Name
		parks[i].Address = req.Address
		parks[i].Description = req.Description
		parks[i].Tags = req.Tags
		parks[i].IsOwnPark = req.IsOwnPark
		parks[i].RecalculateTotalArea()

		if err := uc.store.SaveParks(ctx, parks); err != nil {
			return nil, fmt.Errorf("update park: %w", err)
		}

		uc.logger.Info("Park updated", zap.String("park_id", parkID))
		return &parks[i], nil
	}

	return nil, errors.ErrParkNotFound
}

// DeletePark удаляет парк и каскадно все его записи обследований
func (uc *ParkUseCase) DeletePark(ctx context.Context, parkID string) error {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return fmt.Errorf("delete park: %w", err)
	}

	filtered := make([]domain.Park, 0, len(parks))
	found := false
	for _, p := range parks {
		if p.ID == parkID {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return errors.ErrParkNotFound
	}

	if err := uc.store.SaveParks(ctx, filtered); err != nil {
		return fmt.Errorf("delete park: %w", err)
	}

	// каскад: обследования удалённого парка зачищаются сразу,
	// чтобы не копить осиротевшие записи
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return fmt.Errorf("delete park surveys: %w", err)
	}
	remaining := make([]domain.SurveyRecord, 0, len(surveys))
	removed := 0
	for _, s := range surveys {
		if s.ParkID == parkID {
			removed++
			continue
		}
		remaining = append(remaining, s)
	}
	if removed > 0 {
		if err := uc.store.SaveSurveys(ctx, remaining); err != nil {
			return fmt.Errorf("delete park surveys: %w", err)
		}
	}

	uc.logger.Info("Park deleted",
		zap.String("park_id", parkID),
		zap.Int("cascaded_surveys", removed),
	)
	return nil
}

// AddBuilding добавляет корпус и пересчитывает площадь парка
func (uc *ParkUseCase) AddBuilding(ctx context.Context, parkID string, req dto.BuildingRequest) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("add building: %w", err)
	}

	for i := range parks {
		if parks[i].ID != parkID {
			continue
		}
		parks[i].Buildings = append(parks[i].Buildings, domain.Building{
			ID:   uuid.NewString(),
			Name: req.Name,
			Area: req.Area,
		})
		parks[i].RecalculateTotalArea()

		if err := uc.store.SaveParks(ctx, parks); err != nil {
			return nil, fmt.Errorf("add building: %w", err)
		}

		uc.logger.Info("Building added",
			zap.String("park_id", parkID),
			zap.Float64("area", req.Area),
		)
		return &parks[i], nil
	}

	return nil, errors.ErrParkNotFound
}

// UpdateBuilding обновляет корпус и пересчитывает площадь парка
func (uc *ParkUseCase) UpdateBuilding(ctx context.Context, parkID, buildingID string, req dto.BuildingRequest) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("update building: %w", err)
	}

	for i := range parks {
		if parks[i].ID != parkID {
			continue
		}
		idx := parks[i].FindBuilding(buildingID)
		if idx < 0 {
			return nil, errors.ErrBuildingNotFound
		}
		parks[i].Buildings[idx].Name = req.Name
		parks[i].Buildings[idx].Area = req.Area
		parks[i].RecalculateTotalArea()

		if err := uc.store.SaveParks(ctx, parks); err != nil {
			return nil, fmt.Errorf("update building: %w", err)
		}
		return &parks[i], nil
	}

	return nil, errors.ErrParkNotFound
}

// DeleteBuilding удаляет корпус и пересчитывает площадь парка
func (uc *ParkUseCase) DeleteBuilding(ctx context.Context, parkID, buildingID string) (*domain.Park, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete building: %w", err)
	}

	for i := range parks {
		if parks[i].ID != parkID {
			continue
		}
		idx := parks[i].FindBuilding(buildingID)
		if idx < 0 {
			return nil, errors.ErrBuildingNotFound
		}
		parks[i].Buildings = append(parks[i].Buildings[:idx], parks[i].Buildings[idx+1:]...)
		parks[i].RecalculateTotalArea()

		if err := uc.store.SaveParks(ctx, parks); err != nil {
			return nil, fmt.Errorf("delete building: %w", err)
		}
		return &parks[i], nil
	}

	return nil, errors.ErrParkNotFound
}
