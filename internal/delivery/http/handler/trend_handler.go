package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/pkg/errors"
	"github.com/marketscope-service/internal/pkg/utils"
	"github.com/marketscope-service/internal/pkg/validator"
	"github.com/marketscope-service/internal/usecase"
	"github.com/marketscope-service/internal/usecase/dto"
)

// TrendHandler - обработчик трендовых графиков
type TrendHandler struct {
	trendUC *usecase.TrendUseCase
	logger  *zap.Logger
}

// NewTrendHandler - создание нового TrendHandler
func NewTrendHandler(trendUC *usecase.TrendUseCase, logger *zap.Logger) *TrendHandler {
	return &TrendHandler{
		trendUC: trendUC,
		logger:  logger,
	}
}

// GetTrend - помесячный тренд выбранной метрики
func (h *TrendHandler) GetTrend(c *fiber.Ctx) error {
	var req dto.TrendRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	trend, err := h.trendUC.BuildTrend(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to build trend", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trend, &utils.Meta{Total: len(trend.Points)})
}
