package domain

// DefaultQuarterlyTarget - целевое число обследований на парк за квартал
const DefaultQuarterlyTarget = 3

// AppSettings - настройки приложения
type AppSettings struct {
	QuarterlyTarget int `json:"quarterly_target"` // целевое число обследований на парк за квартал

	// MonthlyTarget - устаревшее поле старых установок. При загрузке
	// мигрируется в QuarterlyTarget (x3), если квартальная цель не задана.
	MonthlyTarget int `json:"monthly_target,omitempty"`
}

// Migrate переносит устаревшую месячную цель в квартальную (x3).
// Значение по умолчанию для пустой цели применяет шлюз персистентности.
func (s *AppSettings) Migrate() {
	if s.QuarterlyTarget == 0 && s.MonthlyTarget > 0 {
		s.QuarterlyTarget = s.MonthlyTarget * 3
	}
	s.MonthlyTarget = 0
}

// Snapshot - полный снимок всех коллекций для резервного копирования.
// Формат файла экспорта/импорта: прямая JSON-сериализация этой структуры.
type Snapshot struct {
	Parks    []Park         `json:"parks"`
	Surveys  []SurveyRecord `json:"surveys"`
	Settings AppSettings    `json:"settings"`
}
