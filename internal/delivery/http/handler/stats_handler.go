package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/pkg/utils"
	"github.com/marketscope-service/internal/usecase"
)

// StatsHandler обрабатывает запросы сводной статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats - сводная статистика рынка
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	h.logger.Debug("Handling get stats request")

	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		h.logger.Error("Failed to get stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetCompliance - выполнение квартальной квоты обследований
func (h *StatsHandler) GetCompliance(c *fiber.Ctx) error {
	compliance, err := h.statsUC.GetCompliance(c.Context())
	if err != nil {
		h.logger.Error("Failed to get compliance", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, compliance, &utils.Meta{Total: len(compliance.Entries)})
}

// GetRecentEvents - лента последних значимых событий
func (h *StatsHandler) GetRecentEvents(c *fiber.Ctx) error {
	events, err := h.statsUC.GetRecentEvents(c.Context())
	if err != nil {
		h.logger.Error("Failed to get events", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, events, &utils.Meta{Total: len(events)})
}

// GetAvailableYears - годы, за которые есть записи обследований
func (h *StatsHandler) GetAvailableYears(c *fiber.Ctx) error {
	years, err := h.statsUC.GetAvailableYears(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, years, &utils.Meta{Total: len(years)})
}
