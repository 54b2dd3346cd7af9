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

// SettingsHandler - обработчик настроек приложения
type SettingsHandler struct {
	settingsUC *usecase.SettingsUseCase
	logger     *zap.Logger
}

// NewSettingsHandler - создание нового SettingsHandler
func NewSettingsHandler(settingsUC *usecase.SettingsUseCase, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
		logger:     logger,
	}
}

// GetSettings - текущие настройки
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingsUC.GetSettings(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, settings, nil)
}

// UpdateSettings - обновление настроек
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	settings, err := h.settingsUC.UpdateSettings(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, settings, nil)
}
