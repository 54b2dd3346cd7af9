package domain

import "time"

// DateLayout - формат бизнес-даты обследования
const DateLayout = "2006-01-02"

// SurveyRecord представляет полевое обследование парка на конкретную дату.
// Date - бизнес-дата (редактируется свободно), Timestamp назначается один раз
// при создании и используется для разрешения конфликтов при равных датах.
type SurveyRecord struct {
	ID                string   `json:"id"`
	ParkID            string   `json:"park_id"`
	BuildingID        string   `json:"building_id"`
	Date              string   `json:"date"` // YYYY-MM-DD
	OccupancyRate     float64  `json:"occupancy_rate"` // 0-100
	RentPrice         *float64 `json:"rent_price,omitempty"` // nil = цена не заявлена
	Commission        string   `json:"commission"`
	DeliveryStandard  string   `json:"delivery_standard"`
	ResponsiblePerson string   `json:"responsible_person"`
	Photos            []string `json:"photos"`
	MarketAnalysis    string   `json:"market_analysis"`
	SignificantEvents string   `json:"significant_events,omitempty"`
	Timestamp         int64    `json:"timestamp"` // unix миллисекунды, момент создания записи
}

// ParsedDate возвращает бизнес-дату записи. ok=false для неразборчивых дат:
// такие записи исключаются из разрешения по датам, но не ломают выборку.
func (s *SurveyRecord) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// HasPrice сообщает, заявлена ли цена аренды.
// Нулевая цена означает "не заявлена" и не участвует в средних.
func (s *SurveyRecord) HasPrice() bool {
	return s.RentPrice != nil && *s.RentPrice > 0
}

// Sanitize приводит прочитанную из хранилища запись к валидному виду
func (s *SurveyRecord) Sanitize() {
	if s.OccupancyRate < 0 {
		s.OccupancyRate = 0
	}
	if s.OccupancyRate > 100 {
		s.OccupancyRate = 100
	}
	// нулевая или отрицательная цена эквивалентна отсутствию котировки
	if s.RentPrice != nil && *s.RentPrice <= 0 {
		s.RentPrice = nil
	}
	if s.Photos == nil {
		s.Photos = []string{}
	}
}
