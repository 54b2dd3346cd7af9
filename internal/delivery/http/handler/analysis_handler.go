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

// AnalysisHandler - обработчик генерации текстовых сводок
type AnalysisHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

// NewAnalysisHandler - создание нового AnalysisHandler
func NewAnalysisHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// AnalyzeMarket - сводка по рынку целиком
func (h *AnalysisHandler) AnalyzeMarket(c *fiber.Ctx) error {
	result, err := h.analysisUC.AnalyzeMarket(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// AnalyzeSurvey - разбор одной записи обследования
func (h *AnalysisHandler) AnalyzeSurvey(c *fiber.Ctx) error {
	var req dto.AnalyzeSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.analysisUC.AnalyzeSurvey(c.Context(), req.SurveyID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
