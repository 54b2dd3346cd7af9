package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/usecase/dto"
)

// TrendUseCase строит временные ряды для трендовых графиков: месячные
// корзины, разрешение "последняя запись на конец месяца" по каждому парку
// и агрегация по рынку
type TrendUseCase struct {
	store  repository.StoreRepository
	logger *zap.Logger

	// подменяется в тестах для детерминированного "сегодня"
	now func() time.Time
}

// NewTrendUseCase создает новый экземпляр TrendUseCase
func NewTrendUseCase(store repository.StoreRepository, logger *zap.Logger) *TrendUseCase {
	return &TrendUseCase{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock переопределяет источник текущего времени
func (uc *TrendUseCase) WithClock(now func() time.Time) *TrendUseCase {
	uc.now = now
	return uc
}

// BuildTrend строит данные трендового графика по запросу
func (uc *TrendUseCase) BuildTrend(ctx context.Context, req dto.TrendRequest) (*dto.TrendResponse, error) {
	switch req.Metric {
	case domain.MetricOccupancy, domain.MetricPrice, domain.MetricVacancy:
	default:
		return nil, errors.ErrInvalidMetric
	}
	switch req.Scope {
	case domain.ScopeIndividual, domain.ScopeMarket:
	default:
		return nil, errors.ErrInvalidRequest
	}

	parks, err := uc.store.LoadParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("build trend: %w", err)
	}
	surveys, err := uc.store.LoadSurveys(ctx)
	if err != nil {
		return nil, fmt.Errorf("build trend: %w", err)
	}

	buckets := domain.MonthlyBuckets(req.Range, uc.now())

	resp := &dto.TrendResponse{
		Range:  req.Range,
		Metric: req.Metric,
		Scope:  req.Scope,
		Points: make([]dto.TrendPoint, 0, len(buckets)),
	}

	if req.Scope == domain.ScopeIndividual {
		resp.Series = individualSeries(parks)
	} else {
		resp.Series = marketSeries(parks, req.Metric)
	}

	for _, bucket := range buckets {
		point := dto.TrendPoint{
			Bucket: bucket.Label,
			Values: make(map[string]float64),
		}

		// состояние каждого парка на конец месяца корзины
		resolved := make(map[string]*domain.SurveyRecord, len(parks))
		for _, p := range parks {
			if latest := domain.LatestAsOf(surveys, p.ID, bucket.End); latest != nil {
				resolved[p.ID] = latest
			}
		}

		if req.Scope == domain.ScopeIndividual {
			for _, p := range parks {
				record, ok := resolved[p.ID]
				if !ok {
					continue
				}
				if value, ok := metricValue(&p, record, req.Metric); ok {
					point.Values[p.ID] = value
				}
			}
		} else {
			aggregateMarket(&point, parks, resolved, req.Metric)
		}

		resp.Points = append(resp.Points, point)
	}

	uc.logger.Debug("Trend built",
		zap.String("range", req.Range),
		zap.String("metric", req.Metric),
		zap.String("scope", req.Scope),
		zap.Int("buckets", len(resp.Points)),
	)
	return resp, nil
}

// metricValue извлекает значение метрики из разрешённой записи.
// ok=false означает "нет данных" (например, цена не заявлена):
// точка опускается, а не приравнивается к нулю.
func metricValue(park *domain.Park, record *domain.SurveyRecord, metric string) (float64, bool) {
	switch metric {
	case domain.MetricOccupancy:
		return record.OccupancyRate, true
	case domain.MetricPrice:
		if !record.HasPrice() {
			return 0, false
		}
		return *record.RentPrice, true
	case domain.MetricVacancy:
		// нулевая база: при полной занятости или нулевой площади
		// вакансия равна нулю, это данные, а не их отсутствие
		return math.Round(park.TotalArea * (100 - record.OccupancyRate) / 100), true
	}
	return 0, false
}

func individualSeries(parks []domain.Park) []dto.TrendSeries {
	series := make([]dto.TrendSeries, 0, len(parks))
	for _, p := range parks {
		series = append(series, dto.TrendSeries{
			Key:  p.ID, // стабильный ключ: имена переименовываются
			Name: p.Name,
			Own:  p.IsOwnPark,
		})
	}
	return series
}

func marketSeries(parks []domain.Park, metric string) []dto.TrendSeries {
	hasOwn := false
	ownName := ""
	for _, p := range parks {
		if p.IsOwnPark {
			hasOwn = true
			if ownName == "" {
				ownName = p.Name
			}
		}
	}

	var compName, marketName string
	switch metric {
	case domain.MetricVacancy:
		compName = "Competitor total vacancy"
		marketName = "Market total vacancy"
	case domain.MetricPrice:
		compName = "Competitor average rent"
		marketName = "Market average rent"
	default:
		compName = "Competitor average occupancy"
		marketName = "Market average occupancy"
	}

	series := []dto.TrendSeries{{Key: "competitors", Name: compName}}
	if hasOwn {
		series = append(series, dto.TrendSeries{Key: "own", Name: ownName, Own: true})
	} else {
		// fallback отображения: без собственного проекта вторая серия
		// показывает рынок целиком и явно так называется
		series = append(series, dto.TrendSeries{Key: "market", Name: marketName})
	}
	return series
}

// aggregateMarket заполняет точку агрегатами: конкуренты одной серией,
// собственный проект (или рынок целиком, если такого нет) - второй
func aggregateMarket(point *dto.TrendPoint, parks []domain.Park, resolved map[string]*domain.SurveyRecord, metric string) {
	hasOwnPark := false
	for _, p := range parks {
		if p.IsOwnPark {
			hasOwnPark = true
			break
		}
	}

	var compSum, ownSum, allSum float64
	var compCount, ownCount, allCount int
	ownResolved := false

	for i := range parks {
		p := &parks[i]
		record, ok := resolved[p.ID]
		if !ok {
			continue
		}
		value, ok := metricValue(p, record, metric)
		if !ok {
			continue
		}

		allSum += value
		allCount++

		if p.IsOwnPark {
			ownResolved = true
			ownSum += value
			ownCount++
		} else {
			compSum += value
			compCount++
		}
	}

	if metric == domain.MetricVacancy {
		// вакансия суммируется, ноль - валидная база
		point.Values["competitors"] = compSum
		if hasOwnPark {
			if ownResolved {
				point.Values["own"] = ownSum
			}
		} else {
			point.Values["market"] = allSum
		}
		return
	}

	// occupancy/price: среднее с одной десятичной, 0 если никто не разрешился
	point.Values["competitors"] = round1(avgOrZero(compSum, compCount))
	if hasOwnPark {
		if ownResolved && ownCount > 0 {
			if ownCount == 1 {
				point.Values["own"] = ownSum
			} else {
				point.Values["own"] = round1(ownSum / float64(ownCount))
			}
		}
	} else {
		point.Values["market"] = round1(avgOrZero(allSum, allCount))
	}
}

func avgOrZero(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
