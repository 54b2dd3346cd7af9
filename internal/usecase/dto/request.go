package dto

// ParkRequest - создание или обновление парка.
// Площадь не принимается: она всегда выводится из корпусов.
type ParkRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Address     string   `json:"address" validate:"required,max=500"`
	Description string   `json:"description" validate:"max=2000"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
	IsOwnPark   bool     `json:"is_own_park"`
}

// BuildingRequest - создание или обновление корпуса парка
type BuildingRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=200"`
	Area float64 `json:"area" validate:"gte=0"`
}

// SurveyRequest - создание или обновление записи обследования
type SurveyRequest struct {
	ParkID            string   `json:"park_id" validate:"required"`
	BuildingID        string   `json:"building_id"`
	Date              string   `json:"date" validate:"required,datetime=2006-01-02"`
	OccupancyRate     float64  `json:"occupancy_rate" validate:"min=0,max=100"`
	RentPrice         *float64 `json:"rent_price" validate:"omitempty,gte=0"`
	Commission        string   `json:"commission" validate:"max=200"`
	DeliveryStandard  string   `json:"delivery_standard" validate:"max=200"`
	ResponsiblePerson string   `json:"responsible_person" validate:"max=200"`
	Photos            []string `json:"photos"`
	MarketAnalysis    string   `json:"market_analysis" validate:"max=5000"`
	SignificantEvents string   `json:"significant_events" validate:"max=5000"`
}

// TrendRequest - параметры трендового графика.
// Range: 6M, 1Y, YTD или явный год ("2024").
type TrendRequest struct {
	Range  string `query:"range" validate:"required"`
	Metric string `query:"metric" validate:"required,oneof=occupancy price vacancy"`
	Scope  string `query:"scope" validate:"required,oneof=individual market"`
}

// SettingsRequest - обновление настроек
type SettingsRequest struct {
	QuarterlyTarget int `json:"quarterly_target" validate:"required,min=1,max=100"`
}

// AnalyzeSurveyRequest - запрос анализа одной записи обследования
type AnalyzeSurveyRequest struct {
	SurveyID string `json:"survey_id" validate:"required"`
}
