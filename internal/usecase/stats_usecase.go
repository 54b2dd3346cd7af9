package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/usecase/dto"
)

// NewEntrantThresholdDays - порог "нового игрока" на рынке
const NewEntrantThresholdDays = 90

// StatsUseCase вычисляет сводную статистику рынка. Все вычисления -
// чистые функции от текущих коллекций: никакого кеша, который мог бы
// разойтись с данными.
type StatsUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger

	now func() time.Time
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(store repository.StoreRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock переопределяет источник текущего времени
func (uc *StatsUseCase) WithClock(now func() time.Time) *StatsUseCase {
	uc.now = now
	return uc
}

// GetStats возвращает сводную статистику на текущий момент
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	now := uc.now()
	resp := &dto.StatsResponse{
		TotalParks:   len(parks),
		AvgRentPrice: "0.0",
		Freshness:    make([]dto.ParkFreshness, 0, len(parks)),
		StaleParks:   make([]dto.ParkFreshness, 0),
		NewEntrants:  make([]dto.NewEntrant, 0),
	}

	var occSum float64
	var occCount int
	var priceSum float64
	var priceCount int
	var vacancySum float64

	for i := range parks {
		p := &parks[i]
		latest := domain.LatestAsOf(surveys, p.ID, now)

		if latest != nil {
			occSum += latest.OccupancyRate
			occCount++
			vacancySum += p.TotalArea * (100 - latest.OccupancyRate) / 100
			if latest.HasPrice() {
				priceSum += *latest.RentPrice
				priceCount++
			}
		}

		freshness := classifyFreshness(p, latest, now)
		resp.Freshness = append(resp.Freshness, freshness)
		if freshness.Status == dto.FreshnessCritical || freshness.Status == dto.FreshnessNoData {
			resp.StaleParks = append(resp.StaleParks, freshness)
		}

		if p.CreatedAt > 0 {
			ageDays := float64(now.UnixMilli()-p.CreatedAt) / float64(24*time.Hour.Milliseconds())
			if ageDays >= 0 && ageDays <= NewEntrantThresholdDays {
				resp.NewEntrants = append(resp.NewEntrants, dto.NewEntrant{
					ParkID:    p.ID,
					ParkName:  p.Name,
					CreatedAt: p.CreatedAt,
				})
			}
		}
	}

	if occCount > 0 {
		resp.AvgOccupancy = int(math.Round(occSum / float64(occCount)))
	}
	if priceCount > 0 {
		resp.AvgRentPrice = strconv.FormatFloat(priceSum/float64(priceCount), 'f', 1, 64)
	}
	resp.TotalVacancyArea = math.Round(vacancySum)
	resp.Performance = uc.performance(parks, surveys, now)

	return resp, nil
}

// classifyFreshness относит парк к ярусу свежести по дням с даты
// последней записи
func classifyFreshness(p *domain.Park, latest *domain.SurveyRecord, now time.Time) dto.ParkFreshness {
	f := dto.ParkFreshness{ParkID: p.ID, ParkName: p.Name}

	if latest == nil {
		f.Status = dto.FreshnessNoData
		return f
	}

	d, ok := latest.ParsedDate()
	if !ok {
		f.Status = dto.FreshnessNoData
		return f
	}

	days := int(math.Ceil(now.Sub(d).Hours() / 24))
	if days < 0 {
		days = 0
	}
	f.DaysSince = days
	f.LastDate = latest.Date

	switch {
	case days <= 7:
		f.Status = dto.FreshnessFresh
	case days <= 14:
		f.Status = dto.FreshnessWeekStale
	case days <= 30:
		f.Status = dto.FreshnessTwoWeekStale
	default:
		f.Status = dto.FreshnessCritical
	}
	return f
}

// performance сравнивает собственный проект со средним по конкурентам.
// Вычисляется только при ровно одном парке с флагом собственного проекта.
func (uc *StatsUseCase) performance(parks []domain.Park, surveys []domain.SurveyRecord, now time.Time) *dto.PerformanceStats {
	var own *domain.Park
	ownCount := 0
	for i := range parks {
		if parks[i].IsOwnPark {
			own = &parks[i]
			ownCount++
		}
	}
	if ownCount != 1 {
		return nil
	}

	ownLatest := domain.LatestAsOf(surveys, own.ID, now)
	if ownLatest == nil {
		return nil
	}

	var occSum, priceSum float64
	var occCount int
	for i := range parks {
		p := &parks[i]
		if p.IsOwnPark {
			continue
		}
		latest := domain.LatestAsOf(surveys, p.ID, now)
		if latest == nil {
			continue
		}
		occSum += latest.OccupancyRate
		if latest.RentPrice != nil {
			priceSum += *latest.RentPrice
		}
		occCount++
	}
	if occCount == 0 {
		return nil
	}

	ownPrice := 0.0
	if ownLatest.RentPrice != nil {
		ownPrice = *ownLatest.RentPrice
	}

	occDiff := ownLatest.OccupancyRate - occSum/float64(occCount)
	priceDiff := ownPrice - priceSum/float64(occCount)

	return &dto.PerformanceStats{
		OccupancyDiff:          math.Round(occDiff*10) / 10,
		PriceDiff:              math.Round(priceDiff*10) / 10,
		OutperformingOccupancy: occDiff > 0,
		OutperformingPrice:     priceDiff > 0,
	}
}

// GetCompliance возвращает выполнение квартальной квоты обследований
// по каждому парку
func (uc *StatsUseCase) GetCompliance(ctx context.Context) (*dto.ComplianceResponse, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get compliance: %w", err)
	}
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get compliance: %w", err)
	}
	settings, err := uc.store.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get compliance: %w", err)
	}

	now := uc.now()
	quarterStart := time.Date(now.Year(), (now.Month()-1)/3*3+1, 1, 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	fourWeeksAgo := now.AddDate(0, 0, -28)

	resp := &dto.ComplianceResponse{
		QuarterlyTarget: settings.QuarterlyTarget,
		Entries:         make([]dto.ComplianceEntry, 0, len(parks)),
	}

	for _, p := range parks {
		entry := dto.ComplianceEntry{ParkID: p.ID, ParkName: p.Name}

		var last28 int
		for _, s := range surveys {
			if s.ParkID != p.ID {
				continue
			}
			d, ok := s.ParsedDate()
			if !ok || d.After(now) {
				continue
			}
			if !d.Before(quarterStart) {
				entry.QuarterCount++
			}
			if !d.Before(monthStart) {
				entry.MonthCount++
			}
			if !d.Before(fourWeeksAgo) {
				last28++
			}
		}

		if settings.QuarterlyTarget > 0 {
			pct := int(math.Round(float64(entry.QuarterCount) / float64(settings.QuarterlyTarget) * 100))
			if pct > 100 {
				pct = 100
			}
			entry.CompletionPct = pct
		}
		entry.WeeklyFrequency = math.Round(float64(last28)/4*10) / 10

		resp.Entries = append(resp.Entries, entry)
	}

	return resp, nil
}

// GetRecentEvents возвращает до 10 последних значимых событий.
// Осиротевшие записи (парк удалён) в ленту не попадают.
func (uc *StatsUseCase) GetRecentEvents(ctx context.Context) ([]dto.EventEntry, error) {
	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	parksByID := make(map[string]*domain.Park, len(parks))
	for i := range parks {
		parksByID[parks[i].ID] = &parks[i]
	}

	withEvents := make([]domain.SurveyRecord, 0)
	for _, s := range surveys {
		if strings.TrimSpace(s.SignificantEvents) == "" {
			continue
		}
		if _, ok := parksByID[s.ParkID]; !ok {
			continue
		}
		withEvents = append(withEvents, s)
	}
	sort.Slice(withEvents, func(i, j int) bool {
		return withEvents[i].Timestamp > withEvents[j].Timestamp
	})
	if len(withEvents) > 10 {
		withEvents = withEvents[:10]
	}

	events := make([]dto.EventEntry, 0, len(withEvents))
	for _, s := range withEvents {
		park := parksByID[s.ParkID]
		events = append(events, dto.EventEntry{
			SurveyID: s.ID,
			ParkID:   s.ParkID,
			ParkName: park.Name,
			OwnPark:  park.IsOwnPark,
			Date:     s.Date,
			Text:     s.SignificantEvents,
		})
	}
	return events, nil
}

// GetAvailableYears возвращает годы, в которых есть записи обследований,
// по убыванию - для выпадающего списка архивных диапазонов
func (uc *StatsUseCase) GetAvailableYears(ctx context.Context) ([]string, error) {
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("get years: %w", err)
	}

	seen := make(map[int]struct{})
	for _, s := range surveys {
		if d, ok := s.ParsedDate(); ok {
			seen[d.Year()] = struct{}{}
		}
	}

	years := make([]string, 0, len(seen))
	for y := range seen {
		years = append(years, strconv.Itoa(y))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years, nil
}
