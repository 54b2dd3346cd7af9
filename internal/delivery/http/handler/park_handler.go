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

// ParkHandler - обработчик для запросов по паркам и их корпусам
type ParkHandler struct {
	parkUC *usecase.ParkUseCase
	logger *zap.Logger
}

// NewParkHandler - создание нового ParkHandler
func NewParkHandler(parkUC *usecase.ParkUseCase, logger *zap.Logger) *ParkHandler {
	return &ParkHandler{
		parkUC: parkUC,
		logger: logger,
	}
}

// ListParks - список всех парков
func (h *ParkHandler) ListParks(c *fiber.Ctx) error {
	parks, err := h.parkUC.ListParks(c.Context())
	if err != nil {
		h.logger.Error("Failed to list parks", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, parks, &utils.Meta{Total: len(parks)})
}

// GetPark - получение парка по идентификатору
func (h *ParkHandler) GetPark(c *fiber.Ctx) error {
	park, err := h.parkUC.GetPark(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, park, nil)
}

// CreatePark - создание нового парка
func (h *ParkHandler) CreatePark(c *fiber.Ctx) error {
	var req dto.ParkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	park, err := h.parkUC.CreatePark(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create park", zap.Error(err))
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: park})
}

// UpdatePark - обновление парка
func (h *ParkHandler) UpdatePark(c *fiber.Ctx) error {
	var req dto.ParkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	park, err := h.parkUC.UpdatePark(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, park, nil)
}

// DeletePark - удаление парка вместе с его записями обследований
func (h *ParkHandler) DeletePark(c *fiber.Ctx) error {
	if err := h.parkUC.DeletePark(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// AddBuilding - добавление корпуса в парк
func (h *ParkHandler) AddBuilding(c *fiber.Ctx) error {
	var req dto.BuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	park, err := h.parkUC.AddBuilding(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: park})
}

// UpdateBuilding - обновление корпуса парка
func (h *ParkHandler) UpdateBuilding(c *fiber.Ctx) error {
	var req dto.BuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	park, err := h.parkUC.UpdateBuilding(c.Context(), c.Params("id"), c.Params("building_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, park, nil)
}

// DeleteBuilding - удаление корпуса из парка
func (h *ParkHandler) DeleteBuilding(c *fiber.Ctx) error {
	park, err := h.parkUC.DeleteBuilding(c.Context(), c.Params("id"), c.Params("building_id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, park, nil)
}
