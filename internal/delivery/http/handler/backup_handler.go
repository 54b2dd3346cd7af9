package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/pkg/utils"
	"github.com/marketscope-service/internal/usecase"
)

// BackupHandler - обработчик экспорта, импорта и сброса данных
type BackupHandler struct {
	backupUC *usecase.BackupUseCase
	logger   *zap.Logger
}

// NewBackupHandler - создание нового BackupHandler
func NewBackupHandler(backupUC *usecase.BackupUseCase, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{
		backupUC: backupUC,
		logger:   logger,
	}
}

// Export - выгрузка полного снимка данных
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	snapshot, err := h.backupUC.Export(c.Context())
	if err != nil {
		h.logger.Error("Failed to export data", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, snapshot, nil)
}

// Import - замена всех данных содержимым снимка
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var snapshot domain.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.backupUC.Import(c.Context(), &snapshot); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"imported": true}, nil)
}

// Reset - стирание всех данных с повторным посевом
func (h *BackupHandler) Reset(c *fiber.Ctx) error {
	if err := h.backupUC.Reset(c.Context()); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"reset": true}, nil)
}
