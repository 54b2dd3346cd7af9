package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain"
	"github.com/marketscope-service/internal/domain/repository"
	"github.com/marketscope-service/internal/pkg/errors"
)

// store реализует шлюз персистентности поверх любого KVRepository.
// Каждая коллекция - один ключ с JSON-массивом, запись перезаписывает
// коллекцию целиком.
type store struct {
	kv        repository.KVRepository
	logger    *zap.Logger
	keyPrefix string

	defaultQuarterlyTarget int
}

func NewStore(kv repository.KVRepository, logger *zap.Logger, keyPrefix string, defaultQuarterlyTarget int) repository.StoreRepository {
	if keyPrefix == "" {
		keyPrefix = "marketscope"
	}
	if defaultQuarterlyTarget <= 0 {
		defaultQuarterlyTarget = domain.DefaultQuarterlyTarget
	}
	return &store{
		kv:                     kv,
		logger:                 logger,
		keyPrefix:              keyPrefix,
		defaultQuarterlyTarget: defaultQuarterlyTarget,
	}
}

func (s *store) parksKey() string    { return s.keyPrefix + ":parks" }
func (s *store) surveysKey() string  { return s.keyPrefix + ":surveys" }
func (s *store) settingsKey() string { return s.keyPrefix + ":settings" }

// Init сеет стартовые данные при полном отсутствии ключа парков и
// досевает шаблон собственного проекта в существующие коллекции
func (s *store) Init(ctx context.Context) error {
	now := time.Now()

	exists, err := s.kv.Exists(ctx, s.parksKey())
	if err != nil {
		return fmt.Errorf("init: check parks key: %w", err)
	}

	if !exists {
		s.logger.Info("Parks collection absent, seeding defaults")
		if err := s.SaveParks(ctx, seedParks(now)); err != nil {
			return fmt.Errorf("init: seed parks: %w", err)
		}

		surveysExist, err := s.kv.Exists(ctx, s.surveysKey())
		if err != nil {
			return fmt.Errorf("init: check surveys key: %w", err)
		}
		if !surveysExist {
			if err := s.SaveSurveys(ctx, seedSurveys(now)); err != nil {
				return fmt.Errorf("init: seed surveys: %w", err)
			}
		}
		return nil
	}

	// Миграция: коллекция есть, но сентинельного собственного парка нет.
	// Шаблон добавляется в начало, чужие записи не трогаются.
	parks, err := s.LoadParks(ctx)
	if err != nil {
		return fmt.Errorf("init: load parks: %w", err)
	}
	for _, p := range parks {
		if p.ID == OwnParkID {
			return nil
		}
	}

	s.logger.Info("Own park template missing, migrating collection")
	migrated := append([]domain.Park{ownParkTemplate(now)}, parks...)
	if err := s.SaveParks(ctx, migrated); err != nil {
		return fmt.Errorf("init: migrate parks: %w", err)
	}
	return nil
}

func (s *store) LoadParks(ctx context.Context) ([]domain.Park, error) {
	data, err := s.kv.Get(ctx, s.parksKey())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.Park{}, nil
	}

	var parks []domain.Park
	if err := json.Unmarshal(data, &parks); err != nil {
		// повреждённый payload деградирует до пустой коллекции
		s.logger.Warn("Malformed parks payload, returning empty collection", zap.Error(err))
		return []domain.Park{}, nil
	}
	if parks == nil {
		parks = []domain.Park{}
	}
	for i := range parks {
		parks[i].Sanitize()
	}
	return parks, nil
}

func (s *store) SaveParks(ctx context.Context, parks []domain.Park) error {
	if parks == nil {
		parks = []domain.Park{}
	}
	data, err := json.Marshal(parks)
	if err != nil {
		s.logger.Error("Failed to marshal parks", zap.Error(err))
		return fmt.Errorf("marshal parks: %w", err)
	}
	return s.kv.Set(ctx, s.parksKey(), data)
}

func (s *store) LoadSurveys(ctx context.Context) ([]domain.SurveyRecord, error) {
	data, err := s.kv.Get(ctx, s.surveysKey())
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []domain.SurveyRecord{}, nil
	}

	var surveys []domain.SurveyRecord
	if err := json.Unmarshal(data, &surveys); err != nil {
		s.logger.Warn("Malformed surveys payload, returning empty collection", zap.Error(err))
		return []domain.SurveyRecord{}, nil
	}
	if surveys == nil {
		surveys = []domain.SurveyRecord{}
	}
	for i := range surveys {
		surveys[i].Sanitize()
	}
	return surveys, nil
}

func (s *store) SaveSurveys(ctx context.Context, surveys []domain.SurveyRecord) error {
	if surveys == nil {
		surveys = []domain.SurveyRecord{}
	}
	data, err := json.Marshal(surveys)
	if err != nil {
		s.logger.Error("Failed to marshal surveys", zap.Error(err))
		return fmt.Errorf("marshal surveys: %w", err)
	}
	return s.kv.Set(ctx, s.surveysKey(), data)
}

func (s *store) LoadSettings(ctx context.Context) (domain.AppSettings, error) {
	fallback := domain.AppSettings{QuarterlyTarget: s.defaultQuarterlyTarget}

	data, err := s.kv.Get(ctx, s.settingsKey())
	if err != nil {
		return fallback, err
	}
	if data == nil {
		return fallback, nil
	}

	var settings domain.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("Malformed settings payload, returning defaults", zap.Error(err))
		return fallback, nil
	}
	settings.Migrate()
	if settings.QuarterlyTarget <= 0 {
		settings.QuarterlyTarget = s.defaultQuarterlyTarget
	}
	return settings, nil
}

func (s *store) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	settings.Migrate()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return s.kv.Set(ctx, s.settingsKey(), data)
}

// Export возвращает полный снимок всех трёх коллекций
func (s *store) Export(ctx context.Context) (*domain.Snapshot, error) {
	parks, err := s.LoadParks(ctx)
	if err != nil {
		return nil, err
	}
	surveys, err := s.LoadSurveys(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Parks:    parks,
		Surveys:  surveys,
		Settings: settings,
	}, nil
}

// Import заменяет коллекции целиком. Форма проверяется до первой записи:
// невалидный снимок отклоняется без частичной мутации.
func (s *store) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.Parks == nil || snapshot.Surveys == nil {
		return errors.ErrInvalidImport
	}

	parks := make([]domain.Park, len(snapshot.Parks))
	copy(parks, snapshot.Parks)
	for i := range parks {
		parks[i].Sanitize()
	}

	surveys := make([]domain.SurveyRecord, len(snapshot.Surveys))
	copy(surveys, snapshot.Surveys)
	for i := range surveys {
		surveys[i].Sanitize()
	}

	settings := snapshot.Settings
	settings.Migrate()

	if err := s.SaveParks(ctx, parks); err != nil {
		return err
	}
	if err := s.SaveSurveys(ctx, surveys); err != nil {
		return err
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		return err
	}

	s.logger.Info("Snapshot imported",
		zap.Int("parks", len(parks)),
		zap.Int("surveys", len(surveys)),
	)
	return nil
}

// Reset очищает все ключи и заново выполняет посев
func (s *store) Reset(ctx context.Context) error {
	for _, key := range []string{s.parksKey(), s.surveysKey(), s.settingsKey()} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	s.logger.Info("Storage reset, re-seeding")
	return s.Init(ctx)
}
