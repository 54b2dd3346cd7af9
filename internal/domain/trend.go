package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Селекторы диапазона дат для трендовых графиков.
// Помимо перечисленных допускается явный год в виде "2024".
const (
	RangeSixMonths  = "6M"
	RangeOneYear    = "1Y"
	RangeYearToDate = "YTD"
)

// Метрики трендового графика
const (
	MetricOccupancy = "occupancy"
	MetricPrice     = "price"
	MetricVacancy   = "vacancy"
)

// Охват трендового графика
const (
	ScopeIndividual = "individual" // отдельная серия на каждый парк
	ScopeMarket     = "market"     // агрегаты: конкуренты против собственного проекта
)

// MaxTrendBuckets ограничивает генерацию корзин: некорректный или
// перевёрнутый диапазон не должен зациклить вычисление
const MaxTrendBuckets = 24

// Bucket - один месячный период агрегации.
// End - последний день месяца, граница отсечения для разрешения записей.
type Bucket struct {
	Label string
	End   time.Time
}

// MonthlyBuckets превращает селектор диапазона в последовательность месячных
// корзин. Неизвестный селектор даёт пустой результат, не ошибку: график
// остаётся корректным, просто без данных.
//
//   - 6M:  с первого числа месяца 5 месяцев назад по сегодня
//   - 1Y:  с первого числа месяца 12 месяцев назад по сегодня
//   - YTD: с 1 января текущего года по сегодня
//   - явный год YYYY: с 1 января по 31 декабря этого года
func MonthlyBuckets(selector string, now time.Time) []Bucket {
	var start, end time.Time
	end = now
	yearScope := false

	switch selector {
	case RangeSixMonths:
		start = time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
	case RangeOneYear:
		start = time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, now.Location())
	case RangeYearToDate:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		year, err := strconv.Atoi(selector)
		if err != nil || len(selector) != 4 {
			return []Bucket{}
		}
		yearScope = true
		start = time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(year, 12, 31, 0, 0, 0, 0, now.Location())
	}

	buckets := make([]Bucket, 0, MaxTrendBuckets)
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	for !current.After(end) && len(buckets) < MaxTrendBuckets {
		endOfMonth := time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, current.Location()).AddDate(0, 0, -1)

		var label string
		if yearScope {
			label = strconv.Itoa(int(current.Month()))
		} else {
			label = fmt.Sprintf("%04d-%02d", current.Year(), int(current.Month()))
		}

		buckets = append(buckets, Bucket{Label: label, End: endOfMonth})
		current = current.AddDate(0, 1, 0)
	}

	return buckets
}
