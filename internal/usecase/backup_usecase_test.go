package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/usecase"
	"github.com/marketscope-service/internal/usecase/dto"
)

func TestBackupUseCase_ExportImport(t *testing.T) {
	store := newSeededStore(t)
	uc := usecase.NewBackupUseCase(store, zap.NewNop())
	ctx := context.Background()

	snapshot, err := uc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Parks, 3)
	assert.Len(t, snapshot.Surveys, 3)

	// импорт усечённого снимка полностью заменяет данные
	trimmed := &domain.Snapshot{
		Parks:    snapshot.Parks[:1],
		Surveys:  []domain.SurveyRecord{},
		Settings: domain.AppSettings{QuarterlyTarget: 9},
	}
	require.NoError(t, uc.Import(ctx, trimmed))

	parks, err := store.LoadParks(ctx)
	require.NoError(t, err)
	assert.Len(t, parks, 1)

	settings, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, settings.QuarterlyTarget)
}

func TestBackupUseCase_ImportRejectsInvalidSnapshot(t *testing.T) {
	store := newSeededStore(t)
	uc := usecase.NewBackupUseCase(store, zap.NewNop())

	err := uc.Import(context.Background(), &domain.Snapshot{})
	assert.ErrorIs(t, err, errors.ErrInvalidImport)
}

func TestSettingsUseCase(t *testing.T) {
	store := newSeededStore(t)
	uc := usecase.NewSettingsUseCase(store, zap.NewNop())
	ctx := context.Background()

	settings, err := uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, settings.QuarterlyTarget)

	updated, err := uc.UpdateSettings(ctx, &dto.SettingsRequest{QuarterlyTarget: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.QuarterlyTarget)

	settings, err = uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.QuarterlyTarget)
}
