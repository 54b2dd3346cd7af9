package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
)

// BackupUseCase обслуживает экспорт, импорт и сброс данных
type BackupUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger
}

// NewBackupUseCase создает новый экземпляр BackupUseCase
func NewBackupUseCase(store repository.StoreRepository, logger *zap.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, logger: logger}
}

// Export возвращает полный снимок данных для выгрузки в файл
func (uc *BackupUseCase) Export(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := uc.store.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	uc.logger.Info("Data exported",
		zap.Int("parks", len(snapshot.Parks)),
		zap.Int("surveys", len(snapshot.Surveys)))
	return snapshot, nil
}

// Import заменяет все данные содержимым снимка
func (uc *BackupUseCase) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := uc.store.Import(ctx, snapshot); err != nil {
		return err
	}

	uc.logger.Info("Data imported",
		zap.Int("parks", len(snapshot.Parks)),
		zap.Int("surveys", len(snapshot.Surveys)))
	return nil
}

// Reset стирает все данные и заново выполняет посев
func (uc *BackupUseCase) Reset(ctx context.Context) error {
	if err := uc.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	uc.logger.Warn("All data reset to seed state")
	return nil
}
