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

// SurveyHandler - обработчик для записей обследований
type SurveyHandler struct {
	surveyUC *usecase.SurveyUseCase
	logger   *zap.Logger
}

// NewSurveyHandler - создание нового SurveyHandler
func NewSurveyHandler(surveyUC *usecase.SurveyUseCase, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		surveyUC: surveyUC,
		logger:   logger,
	}
}

// ListSurveys - список записей обследований, опционально по одному парку
func (h *SurveyHandler) ListSurveys(c *fiber.Ctx) error {
	surveys, err := h.surveyUC.ListSurveys(c.Context(), c.Query("park_id"))
	if err != nil {
		h.logger.Error("Failed to list surveys", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, surveys, &utils.Meta{Total: len(surveys)})
}

// GetSurvey - получение записи обследования по идентификатору
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.surveyUC.GetSurvey(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, survey, nil)
}

// CreateSurvey - создание новой записи обследования
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	survey, err := h.surveyUC.CreateSurvey(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: survey})
}

// UpdateSurvey - обновление записи обследования
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	var req dto.SurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	survey, err := h.surveyUC.UpdateSurvey(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, survey, nil)
}

// DeleteSurvey - удаление записи обследования
func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	if err := h.surveyUC.DeleteSurvey(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
