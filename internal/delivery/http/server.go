package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/config"
	"github.com/marketscope-service/internal/delivery/http/handler"
	"github.com/marketscope-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	parkHandler     *handler.ParkHandler
	surveyHandler   *handler.SurveyHandler
	trendHandler    *handler.TrendHandler
	statsHandler    *handler.StatsHandler
	analysisHandler *handler.AnalysisHandler
	settingsHandler *handler.SettingsHandler
	backupHandler   *handler.BackupHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	parkHandler *handler.ParkHandler,
	surveyHandler *handler.SurveyHandler,
	trendHandler *handler.TrendHandler,
	statsHandler *handler.StatsHandler,
	analysisHandler *handler.AnalysisHandler,
	settingsHandler *handler.SettingsHandler,
	backupHandler *handler.BackupHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "MarketScope Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		parkHandler:     parkHandler,
		surveyHandler:   surveyHandler,
		trendHandler:    trendHandler,
		statsHandler:    statsHandler,
		analysisHandler: analysisHandler,
		settingsHandler: settingsHandler,
		backupHandler:   backupHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Park routes
	api.Get("/parks", s.parkHandler.ListParks)
	api.Post("/parks", s.parkHandler.CreatePark)
	api.Get("/parks/:id", s.parkHandler.GetPark)
	api.Put("/parks/:id", s.parkHandler.UpdatePark)
	api.Delete("/parks/:id", s.parkHandler.DeletePark)

	// Building routes - корпуса живут внутри парка
	api.Post("/parks/:id/buildings", s.parkHandler.AddBuilding)
	api.Put("/parks/:id/buildings/:building_id", s.parkHandler.UpdateBuilding)
	api.Delete("/parks/:id/buildings/:building_id", s.parkHandler.DeleteBuilding)

	// Survey routes
	api.Get("/surveys", s.surveyHandler.ListSurveys)
	api.Post("/surveys", s.surveyHandler.CreateSurvey)
	api.Get("/surveys/:id", s.surveyHandler.GetSurvey)
	api.Put("/surveys/:id", s.surveyHandler.UpdateSurvey)
	api.Delete("/surveys/:id", s.surveyHandler.DeleteSurvey)

	// Trend route
	api.Get("/trend", s.trendHandler.GetTrend)

	// Stats routes
	api.Get("/stats", s.statsHandler.GetStats)
	api.Get("/stats/compliance", s.statsHandler.GetCompliance)
	api.Get("/stats/events", s.statsHandler.GetRecentEvents)
	api.Get("/stats/years", s.statsHandler.GetAvailableYears)

	// Analysis routes
	api.Post("/analysis/market", s.analysisHandler.AnalyzeMarket)
	api.Post("/analysis/survey", s.analysisHandler.AnalyzeSurvey)

	// Settings routes
	api.Get("/settings", s.settingsHandler.GetSettings)
	api.Put("/settings", s.settingsHandler.UpdateSettings)

	// Backup routes
	api.Get("/backup/export", s.backupHandler.Export)
	api.Post("/backup/import", s.backupHandler.Import)
	api.Post("/backup/reset", s.backupHandler.Reset)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
