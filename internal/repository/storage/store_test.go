package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/repository/memory"
	"github.com/marketscope-service/internal/repository/storage"
)

type storeFixture struct {
	kv    repository.KVRepository
	store repository.StoreRepository
}

func newTestStore(t *testing.T) (*storeFixture, context.Context) {
	t.Helper()
	kv := memory.NewKVRepository()
	store := storage.NewStore(kv, zap.NewNop(), "test", 3)
	return &storeFixture{kv: kv, store: store}, context.Background()
}

func TestStore_InitSeedsDefaults(t *testing.T) {
	f, ctx := newTestStore(t)

	require.NoError(t, f.store.Init(ctx))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	require.Len(t, parks, 3)
	assert.Equal(t, storage.OwnParkID, parks[0].ID)
	assert.True(t, parks[0].IsOwnPark)

	surveys, err := f.store.LoadSurveys(ctx)
	require.NoError(t, err)
	assert.Len(t, surveys, 3)
}

func TestStore_InitIsIdempotent(t *testing.T) {
	f, ctx := newTestStore(t)

	require.NoError(t, f.store.Init(ctx))
	require.NoError(t, f.store.Init(ctx))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	assert.Len(t, parks, 3)
}

func TestStore_InitMigratesMissingOwnPark(t *testing.T) {
	f, ctx := newTestStore(t)

	existing := []domain.Park{{ID: "legacy-1", Name: "Legacy Park"}}
	require.NoError(t, f.store.SaveParks(ctx, existing))

	require.NoError(t, f.store.Init(ctx))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	require.Len(t, parks, 2)
	assert.Equal(t, storage.OwnParkID, parks[0].ID)
	assert.Equal(t, "legacy-1", parks[1].ID)
}

func TestStore_InitKeepsExistingSurveys(t *testing.T) {
	f, ctx := newTestStore(t)

	require.NoError(t, f.store.SaveSurveys(ctx, []domain.SurveyRecord{
		{ID: "mine", ParkID: "legacy-1", Date: "2024-01-10"},
	}))

	require.NoError(t, f.store.Init(ctx))

	surveys, err := f.store.LoadSurveys(ctx)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, "mine", surveys[0].ID)
}

func TestStore_LoadParksDegradesOnMalformedPayload(t *testing.T) {
	f, ctx := newTestStore(t)

	require.NoError(t, f.kv.Set(ctx, "test:parks", []byte("{not json")))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	assert.Empty(t, parks)
}

func TestStore_LoadSanitizesRecords(t *testing.T) {
	f, ctx := newTestStore(t)

	zero := 0.0
	require.NoError(t, f.store.SaveSurveys(ctx, []domain.SurveyRecord{
		{ID: "s", ParkID: "p", Date: "2024-01-10", OccupancyRate: 150, RentPrice: &zero},
	}))

	surveys, err := f.store.LoadSurveys(ctx)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, float64(100), surveys[0].OccupancyRate)
	assert.Nil(t, surveys[0].RentPrice)
}

func TestStore_Settings(t *testing.T) {
	f, ctx := newTestStore(t)

	t.Run("default when absent", func(t *testing.T) {
		settings, err := f.store.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, settings.QuarterlyTarget)
	})

	t.Run("legacy monthly target migrates on load", func(t *testing.T) {
		require.NoError(t, f.kv.Set(ctx, "test:settings", []byte(`{"monthly_target":2}`)))

		settings, err := f.store.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, settings.QuarterlyTarget)
		assert.Zero(t, settings.MonthlyTarget)
	})

	t.Run("saved value round-trips", func(t *testing.T) {
		require.NoError(t, f.store.SaveSettings(ctx, domain.AppSettings{QuarterlyTarget: 7}))

		settings, err := f.store.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 7, settings.QuarterlyTarget)
	})

	t.Run("malformed payload falls back to default", func(t *testing.T) {
		require.NoError(t, f.kv.Set(ctx, "test:settings", []byte("oops")))

		settings, err := f.store.LoadSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, settings.QuarterlyTarget)
	})
}

func TestStore_ImportRejectsInvalidShape(t *testing.T) {
	f, ctx := newTestStore(t)
	require.NoError(t, f.store.Init(ctx))

	err := f.store.Import(ctx, &domain.Snapshot{Surveys: []domain.SurveyRecord{}})
	assert.ErrorIs(t, err, errors.ErrInvalidImport)

	err = f.store.Import(ctx, &domain.Snapshot{Parks: []domain.Park{}})
	assert.ErrorIs(t, err, errors.ErrInvalidImport)

	err = f.store.Import(ctx, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidImport)

	// отклонённый импорт не трогает данные
	parks, loadErr := f.store.LoadParks(ctx)
	require.NoError(t, loadErr)
	assert.Len(t, parks, 3)
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	f, ctx := newTestStore(t)
	require.NoError(t, f.store.Init(ctx))

	snapshot, err := f.store.Export(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Parks, 3)
	require.Len(t, snapshot.Surveys, 3)

	// очистить и восстановить из снимка
	require.NoError(t, f.store.SaveParks(ctx, []domain.Park{}))
	require.NoError(t, f.store.SaveSurveys(ctx, []domain.SurveyRecord{}))

	require.NoError(t, f.store.Import(ctx, snapshot))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	assert.Len(t, parks, 3)

	surveys, err := f.store.LoadSurveys(ctx)
	require.NoError(t, err)
	assert.Len(t, surveys, 3)
}

func TestStore_ResetReseeds(t *testing.T) {
	f, ctx := newTestStore(t)
	require.NoError(t, f.store.Init(ctx))

	require.NoError(t, f.store.SaveParks(ctx, []domain.Park{{ID: "only-one"}}))

	require.NoError(t, f.store.Reset(ctx))

	parks, err := f.store.LoadParks(ctx)
	require.NoError(t, err)
	require.Len(t, parks, 3)
	assert.Equal(t, storage.OwnParkID, parks[0].ID)
}
