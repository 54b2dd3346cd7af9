package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("six months window", func(t *testing.T) {
		buckets := MonthlyBuckets(RangeSixMonths, now)

		require.Len(t, buckets, 6)
		assert.Equal(t, "2024-01", buckets[0].Label)
		assert.Equal(t, "2024-06", buckets[5].Label)
	})

	t.Run("one year window", func(t *testing.T) {
		buckets := MonthlyBuckets(RangeOneYear, now)

		require.Len(t, buckets, 13)
		assert.Equal(t, "2023-06", buckets[0].Label)
		assert.Equal(t, "2024-06", buckets[12].Label)
	})

	t.Run("year to date", func(t *testing.T) {
		buckets := MonthlyBuckets(RangeYearToDate, now)

		require.Len(t, buckets, 6)
		assert.Equal(t, "2024-01", buckets[0].Label)
	})

	t.Run("explicit year covers full calendar year", func(t *testing.T) {
		buckets := MonthlyBuckets("2023", now)

		require.Len(t, buckets, 12)
		assert.Equal(t, "1", buckets[0].Label)
		assert.Equal(t, "12", buckets[11].Label)
	})

	t.Run("bucket end is last day of month", func(t *testing.T) {
		buckets := MonthlyBuckets("2024", now)

		require.Len(t, buckets, 12)
		// 2024 високосный
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), buckets[1].End)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), buckets[11].End)
	})

	t.Run("unknown selector yields empty result", func(t *testing.T) {
		assert.Empty(t, MonthlyBuckets("3M", now))
		assert.Empty(t, MonthlyBuckets("", now))
		assert.Empty(t, MonthlyBuckets("24", now))
		assert.Empty(t, MonthlyBuckets("20245", now))
	})

	t.Run("bucket count is capped", func(t *testing.T) {
		// YTD в декабре дает 12 корзин, никакой селектор не выходит за предел
		december := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		buckets := MonthlyBuckets(RangeOneYear, december)

		assert.LessOrEqual(t, len(buckets), MaxTrendBuckets)
	})
}
