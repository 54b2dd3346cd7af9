package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/usecase/dto"
)

// SettingsUseCase управляет настройками приложения
type SettingsUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger
}

// NewSettingsUseCase создает новый экземпляр SettingsUseCase
func NewSettingsUseCase(store repository.StoreRepository, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{store: store, logger: logger}
}

// GetSettings возвращает текущие настройки
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	settings, err := uc.store.LoadSettings(ctx)
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings сохраняет новые настройки
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, req *dto.SettingsRequest) (domain.AppSettings, error) {
	settings := domain.AppSettings{
		QuarterlyTarget: req.QuarterlyTarget,
	}

	if err := uc.store.SaveSettings(ctx, settings); err != nil {
		return domain.AppSettings{}, fmt.Errorf("update settings: %w", err)
	}

	uc.logger.Info("Settings updated", zap.Int("quarterly_target", settings.QuarterlyTarget))
	return settings, nil
}
