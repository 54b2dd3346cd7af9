package repository

import (
	"context"

	"github.com/marketscope-service/internal/domain"
)

// NarrativeRepository определяет клиент внешнего сервиса генерации текста.
// Контракт отказоустойчивости: при любом сбое возвращается фиксированная
// fallback-строка, а не ошибка - вызывающий слой всегда получает текст.
type NarrativeRepository interface {
	// SummarizeMarket генерирует обзор рынка по текущим паркам и обследованиям
	SummarizeMarket(ctx context.Context, parks []domain.Park, surveys []domain.SurveyRecord) string

	// AnalyzeEntry генерирует краткий анализ одной записи обследования
	// в сравнении с предыдущей (previous может быть nil)
	AnalyzeEntry(ctx context.Context, parkName string, record domain.SurveyRecord, previous *domain.SurveyRecord) string
}
