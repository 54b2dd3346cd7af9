package domain

// Building представляет корпус внутри парка
type Building struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Area float64 `json:"area"` // площадь в кв.м
}

// Park представляет бизнес-парк (собственный или конкурирующий)
type Park struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Buildings   []Building `json:"buildings"`
	TotalArea   float64    `json:"total_area"` // суммарная GFA в кв.м, всегда пересчитывается из корпусов
	CreatedAt   int64      `json:"created_at"` // unix миллисекунды
	IsOwnPark   bool       `json:"is_own_park,omitempty"`
}

// RecalculateTotalArea пересчитывает общую площадь парка из площадей корпусов.
// Вызывается при любой мутации корпусов: TotalArea никогда не задаётся напрямую.
func (p *Park) RecalculateTotalArea() {
	var total float64
	for _, b := range p.Buildings {
		if b.Area > 0 {
			total += b.Area
		}
	}
	p.TotalArea = total
}

// FindBuilding возвращает индекс корпуса по ID, -1 если не найден
func (p *Park) FindBuilding(buildingID string) int {
	for i, b := range p.Buildings {
		if b.ID == buildingID {
			return i
		}
	}
	return -1
}

// Sanitize приводит прочитанный из хранилища парк к валидному виду:
// отрицательные площади обнуляются, TotalArea пересчитывается.
func (p *Park) Sanitize() {
	if p.Buildings == nil {
		p.Buildings = []Building{}
	}
	for i := range p.Buildings {
		if p.Buildings[i].Area < 0 {
			p.Buildings[i].Area = 0
		}
	}
	p.RecalculateTotalArea()
}
