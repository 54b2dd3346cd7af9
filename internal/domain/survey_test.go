package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSurveyRecord_ParsedDate(t *testing.T) {
	record := SurveyRecord{Date: "2024-03-05"}

	d, ok := record.ParsedDate()

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	record.Date = "05.03.2024"
	_, ok = record.ParsedDate()
	assert.False(t, ok)
}

func TestSurveyRecord_HasPrice(t *testing.T) {
	assert.False(t, (&SurveyRecord{}).HasPrice())
	assert.False(t, (&SurveyRecord{RentPrice: floatPtr(0)}).HasPrice())
	assert.True(t, (&SurveyRecord{RentPrice: floatPtr(4.2)}).HasPrice())
}

func TestSurveyRecord_Sanitize(t *testing.T) {
	t.Run("clamps occupancy to 0-100", func(t *testing.T) {
		low := SurveyRecord{OccupancyRate: -5}
		low.Sanitize()
		assert.Zero(t, low.OccupancyRate)

		high := SurveyRecord{OccupancyRate: 130}
		high.Sanitize()
		assert.Equal(t, float64(100), high.OccupancyRate)
	})

	t.Run("non-positive price becomes no quote", func(t *testing.T) {
		record := SurveyRecord{RentPrice: floatPtr(0)}
		record.Sanitize()
		assert.Nil(t, record.RentPrice)

		record = SurveyRecord{RentPrice: floatPtr(-1)}
		record.Sanitize()
		assert.Nil(t, record.RentPrice)

		record = SurveyRecord{RentPrice: floatPtr(3.8)}
		record.Sanitize()
		require.NotNil(t, record.RentPrice)
		assert.Equal(t, 3.8, *record.RentPrice)
	})

	t.Run("nil photos become empty slice", func(t *testing.T) {
		record := SurveyRecord{}
		record.Sanitize()
		assert.NotNil(t, record.Photos)
	})
}

func TestAppSettings_Migrate(t *testing.T) {
	t.Run("legacy monthly target converts to quarterly", func(t *testing.T) {
		settings := AppSettings{MonthlyTarget: 2}

		settings.Migrate()

		assert.Equal(t, 6, settings.QuarterlyTarget)
		assert.Zero(t, settings.MonthlyTarget)
	})

	t.Run("existing quarterly target wins", func(t *testing.T) {
		settings := AppSettings{QuarterlyTarget: 5, MonthlyTarget: 2}

		settings.Migrate()

		assert.Equal(t, 5, settings.QuarterlyTarget)
		assert.Zero(t, settings.MonthlyTarget)
	})

	t.Run("empty settings stay empty", func(t *testing.T) {
		var settings AppSettings

		settings.Migrate()

		assert.Zero(t, settings.QuarterlyTarget)
	})
}
