package domain

import (
	"sort"
	"time"
)

// LatestAsOf возвращает последнюю запись обследования парка, бизнес-дата
// которой не позже cutoff. При равных датах побеждает запись с большим
// Timestamp (более поздний момент создания). Записи с неразборчивой датой
// пропускаются. Возвращает nil, если подходящих записей нет.
//
// Единая точка разрешения "последней записи на дату": одинаковая семантика
// для построения трендов и для сводной статистики.
func LatestAsOf(records []SurveyRecord, parkID string, cutoff time.Time) *SurveyRecord {
	var best *SurveyRecord
	var bestDate time.Time

	for i := range records {
		r := &records[i]
		if r.ParkID != parkID {
			continue
		}
		d, ok := r.ParsedDate()
		if !ok || d.After(cutoff) {
			continue
		}
		if best == nil || d.After(bestDate) || (d.Equal(bestDate) && r.Timestamp > best.Timestamp) {
			best = r
			bestDate = d
		}
	}

	if best == nil {
		return nil
	}
	found := *best
	return &found
}

// PreviousBefore возвращает запись, предшествующую record в истории парка:
// последнюю запись с датой строго раньше даты record. Используется для
// сравнительного анализа "текущая против предыдущей".
func PreviousBefore(records []SurveyRecord, record *SurveyRecord) *SurveyRecord {
	d, ok := record.ParsedDate()
	if !ok {
		return nil
	}
	return LatestAsOf(records, record.ParkID, d.AddDate(0, 0, -1))
}

// SurveysOfPark возвращает записи парка, отсортированные по убыванию
// момента создания (новые первыми)
func SurveysOfPark(records []SurveyRecord, parkID string) []SurveyRecord {
	result := make([]SurveyRecord, 0)
	for _, r := range records {
		if r.ParkID == parkID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})
	return result
}
