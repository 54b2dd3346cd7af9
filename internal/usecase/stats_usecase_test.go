package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/repository/memory"
	"github.com/marketscope-service/internal/repository/storage"
	"github.com/marketscope-service/internal/usecase"
	"github.com/marketscope-service/internal/usecase/dto"
)

var statsNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newStatsStore(t *testing.T) repository.StoreRepository {
	t.Helper()
	ctx := context.Background()
	store := storage.NewStore(memory.NewKVRepository(), zap.NewNop(), "test", 3)

	parks := []domain.Park{
		{
			ID: "p-own", Name: "Own Park", IsOwnPark: true,
			Buildings: []domain.Building{{ID: "b1", Area: 50000}},
			CreatedAt: statsNow.AddDate(0, 0, -30).UnixMilli(),
		},
		{
			ID: "p-comp-1", Name: "Competitor One",
			Buildings: []domain.Building{{ID: "b2", Area: 40000}},
			CreatedAt: statsNow.AddDate(0, 0, -200).UnixMilli(),
		},
		{
			ID: "p-comp-2", Name: "Competitor Two",
			Buildings: []domain.Building{{ID: "b3", Area: 10000}},
			CreatedAt: statsNow.AddDate(0, 0, -200).UnixMilli(),
		},
	}
	require.NoError(t, store.SaveParks(ctx, parks))

	surveys := []domain.SurveyRecord{
		{
			ID: "s-own", ParkID: "p-own", Date: "2024-06-10",
			OccupancyRate: 90, RentPrice: floatPtr(5.0), Timestamp: 300,
			SignificantEvents: "New anchor tenant signed.",
		},
		{
			ID: "s-comp", ParkID: "p-comp-1", Date: "2024-05-20",
			OccupancyRate: 75, RentPrice: floatPtr(4.0), Timestamp: 200,
		},
		{
			ID: "s-old", ParkID: "p-comp-1", Date: "2023-11-01",
			OccupancyRate: 70, Timestamp: 100,
			SignificantEvents: "Road works started nearby.",
		},
		// осиротевшая запись: парк удалён, в ленту событий не попадает
		{
			ID: "s-orphan", ParkID: "p-gone", Date: "2024-06-01",
			OccupancyRate: 50, Timestamp: 400,
			SignificantEvents: "Should never be listed.",
		},
	}
	require.NoError(t, store.SaveSurveys(ctx, surveys))

	return store
}

func newStatsUseCase(t *testing.T) *usecase.StatsUseCase {
	t.Helper()
	return usecase.NewStatsUseCase(newStatsStore(t), zap.NewNop()).
		WithClock(func() time.Time { return statsNow })
}

func TestStatsUseCase_GetStats(t *testing.T) {
	uc := newStatsUseCase(t)
	ctx := context.Background()

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalParks)
	assert.Equal(t, 83, stats.AvgOccupancy) // (90+75)/2 = 82.5, округление вверх
	assert.Equal(t, "4.5", stats.AvgRentPrice)
	assert.Equal(t, float64(15000), stats.TotalVacancyArea)

	t.Run("freshness tiers", func(t *testing.T) {
		byPark := make(map[string]dto.ParkFreshness)
		for _, f := range stats.Freshness {
			byPark[f.ParkID] = f
		}

		assert.Equal(t, dto.FreshnessFresh, byPark["p-own"].Status)
		assert.Equal(t, dto.FreshnessTwoWeekStale, byPark["p-comp-1"].Status)
		assert.Equal(t, dto.FreshnessNoData, byPark["p-comp-2"].Status)

		require.Len(t, stats.StaleParks, 1)
		assert.Equal(t, "p-comp-2", stats.StaleParks[0].ParkID)
	})

	t.Run("new entrants within 90 days", func(t *testing.T) {
		require.Len(t, stats.NewEntrants, 1)
		assert.Equal(t, "p-own", stats.NewEntrants[0].ParkID)
	})

	t.Run("performance against competitor mean", func(t *testing.T) {
		require.NotNil(t, stats.Performance)
		assert.Equal(t, 15.0, stats.Performance.OccupancyDiff)
		assert.Equal(t, 1.0, stats.Performance.PriceDiff)
		assert.True(t, stats.Performance.OutperformingOccupancy)
		assert.True(t, stats.Performance.OutperformingPrice)
	})
}

func TestStatsUseCase_GetStats_EmptyCollections(t *testing.T) {
	store := storage.NewStore(memory.NewKVRepository(), zap.NewNop(), "test", 3)
	uc := usecase.NewStatsUseCase(store, zap.NewNop()).
		WithClock(func() time.Time { return statsNow })

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalParks)
	assert.Zero(t, stats.AvgOccupancy)
	assert.Equal(t, "0.0", stats.AvgRentPrice)
	assert.Zero(t, stats.TotalVacancyArea)
	assert.Nil(t, stats.Performance)
	assert.Empty(t, stats.Freshness)
}

func TestStatsUseCase_GetStats_NoPerformanceWithoutSingleOwnPark(t *testing.T) {
	ctx := context.Background()
	store := storage.NewStore(memory.NewKVRepository(), zap.NewNop(), "test", 3)

	require.NoError(t, store.SaveParks(ctx, []domain.Park{
		{ID: "a", Name: "Alpha", IsOwnPark: true},
		{ID: "b", Name: "Beta", IsOwnPark: true},
		{ID: "c", Name: "Gamma"},
	}))
	require.NoError(t, store.SaveSurveys(ctx, []domain.SurveyRecord{
		{ID: "s1", ParkID: "a", Date: "2024-06-01", OccupancyRate: 80, Timestamp: 1},
		{ID: "s2", ParkID: "c", Date: "2024-06-01", OccupancyRate: 70, Timestamp: 2},
	}))

	uc := usecase.NewStatsUseCase(store, zap.NewNop()).
		WithClock(func() time.Time { return statsNow })

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Nil(t, stats.Performance, "two flagged parks make the comparison ambiguous")
}

func TestStatsUseCase_GetCompliance(t *testing.T) {
	uc := newStatsUseCase(t)

	compliance, err := uc.GetCompliance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, compliance.QuarterlyTarget)
	require.Len(t, compliance.Entries, 3)

	byPark := make(map[string]dto.ComplianceEntry)
	for _, e := range compliance.Entries {
		byPark[e.ParkID] = e
	}

	own := byPark["p-own"]
	assert.Equal(t, 1, own.QuarterCount)
	assert.Equal(t, 1, own.MonthCount)
	assert.Equal(t, 33, own.CompletionPct)
	assert.Equal(t, 0.3, own.WeeklyFrequency)

	comp1 := byPark["p-comp-1"]
	assert.Equal(t, 1, comp1.QuarterCount)
	assert.Zero(t, comp1.MonthCount)

	comp2 := byPark["p-comp-2"]
	assert.Zero(t, comp2.QuarterCount)
	assert.Zero(t, comp2.CompletionPct)
	assert.Zero(t, comp2.WeeklyFrequency)
}

func TestStatsUseCase_GetRecentEvents(t *testing.T) {
	uc := newStatsUseCase(t)

	events, err := uc.GetRecentEvents(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 2)
	// новые первыми, осиротевшая запись исключена
	assert.Equal(t, "s-own", events[0].SurveyID)
	assert.True(t, events[0].OwnPark)
	assert.Equal(t, "s-old", events[1].SurveyID)

	for _, e := range events {
		assert.NotEqual(t, "s-orphan", e.SurveyID)
	}
}

func TestStatsUseCase_GetAvailableYears(t *testing.T) {
	uc := newStatsUseCase(t)

	years, err := uc.GetAvailableYears(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2024", "2023"}, years)
}
