package dto

// TrendSeries - описание одной серии графика.
// Key стабилен при переименованиях: ID парка либо агрегатный ключ
// ("competitors", "own", "market").
type TrendSeries struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Own  bool   `json:"own,omitempty"`
}

// TrendPoint - одна месячная корзина. Отсутствие ключа в Values означает
// "нет данных", а не ноль.
type TrendPoint struct {
	Bucket string             `json:"bucket"`
	Values map[string]float64 `json:"values"`
}

// TrendResponse - данные трендового графика
type TrendResponse struct {
	Range  string        `json:"range"`
	Metric string        `json:"metric"`
	Scope  string        `json:"scope"`
	Series []TrendSeries `json:"series"`
	Points []TrendPoint  `json:"points"`
}

// Статусы свежести данных по парку
const (
	FreshnessFresh        = "fresh"          // <= 7 дней
	FreshnessWeekStale    = "week_stale"     // 8-14 дней
	FreshnessTwoWeekStale = "two_week_stale" // 15-30 дней
	FreshnessCritical     = "critical"       // > 30 дней
	FreshnessNoData       = "no_data"        // записей нет
)

// ParkFreshness - свежесть данных одного парка
type ParkFreshness struct {
	ParkID    string `json:"park_id"`
	ParkName  string `json:"park_name"`
	Status    string `json:"status"`
	DaysSince int    `json:"days_since,omitempty"`
	LastDate  string `json:"last_date,omitempty"`
}

// PerformanceStats - положение собственного проекта относительно среднего
// по конкурентам (знаковые разницы по последним записям)
type PerformanceStats struct {
	OccupancyDiff          float64 `json:"occupancy_diff"`
	PriceDiff              float64 `json:"price_diff"`
	OutperformingOccupancy bool    `json:"outperforming_occupancy"`
	OutperformingPrice     bool    `json:"outperforming_price"`
}

// NewEntrant - парк, появившийся в базе за последние 90 дней
type NewEntrant struct {
	ParkID    string `json:"park_id"`
	ParkName  string `json:"park_name"`
	CreatedAt int64  `json:"created_at"`
}

// StatsResponse - сводная статистика рынка на текущий момент
type StatsResponse struct {
	TotalParks       int               `json:"total_parks"`
	AvgOccupancy     int               `json:"avg_occupancy"`
	AvgRentPrice     string            `json:"avg_rent_price"` // одна десятичная, "0.0" если котировок нет
	TotalVacancyArea float64           `json:"total_vacancy_area"`
	Freshness        []ParkFreshness   `json:"freshness"`
	StaleParks       []ParkFreshness   `json:"stale_parks"`
	NewEntrants      []NewEntrant      `json:"new_entrants"`
	Performance      *PerformanceStats `json:"performance,omitempty"`
}

// ComplianceEntry - выполнение квоты обследований по одному парку
type ComplianceEntry struct {
	ParkID          string  `json:"park_id"`
	ParkName        string  `json:"park_name"`
	QuarterCount    int     `json:"quarter_count"`
	MonthCount      int     `json:"month_count"`
	CompletionPct   int     `json:"completion_pct"`
	WeeklyFrequency float64 `json:"weekly_frequency"` // записей в неделю за последние 28 дней
}

// ComplianceResponse - выполнение квартальной квоты по всем паркам
type ComplianceResponse struct {
	QuarterlyTarget int               `json:"quarterly_target"`
	Entries         []ComplianceEntry `json:"entries"`
}

// EventEntry - одно значимое событие из ленты
type EventEntry struct {
	SurveyID string `json:"survey_id"`
	ParkID   string `json:"park_id"`
	ParkName string `json:"park_name"`
	OwnPark  bool   `json:"own_park,omitempty"`
	Date     string `json:"date"`
	Text     string `json:"text"`
}

// AnalysisResponse - текст, полученный от сервиса генерации
type AnalysisResponse struct {
	Text string `json:"text"`
}
