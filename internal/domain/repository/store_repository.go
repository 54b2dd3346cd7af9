package repository

import (
	"context"

	"github.com/marketscope-service/internal/domain"
)

// StoreRepository определяет шлюз персистентности поверх key-value хранилища.
// Чтение никогда не возвращает ошибку разбора наружу: повреждённый payload
// деградирует до пустой коллекции с записью в лог.
type StoreRepository interface {
	// Init выполняет одноразовый посев начальных данных и миграцию
	// отсутствующего собственного парка
	Init(ctx context.Context) error

	// LoadParks загружает коллекцию парков; пустой срез при отсутствии
	// или повреждении ключа
	LoadParks(ctx context.Context) ([]domain.Park, error)

	// SaveParks перезаписывает коллекцию парков целиком
	SaveParks(ctx context.Context, parks []domain.Park) error

	// LoadSurveys загружает коллекцию обследований
	LoadSurveys(ctx context.Context) ([]domain.SurveyRecord, error)

	// SaveSurveys перезаписывает коллекцию обследований целиком
	SaveSurveys(ctx context.Context, surveys []domain.SurveyRecord) error

	// LoadSettings загружает настройки, применяя миграцию и значения
	// по умолчанию
	LoadSettings(ctx context.Context) (domain.AppSettings, error)

	// SaveSettings сохраняет настройки
	SaveSettings(ctx context.Context, settings domain.AppSettings) error

	// Export возвращает полный снимок всех коллекций
	Export(ctx context.Context) (*domain.Snapshot, error)

	// Import заменяет коллекции целиком; при невалидной форме снимка
	// отказывает без частичной мутации
	Import(ctx context.Context, snapshot *domain.Snapshot) error

	// Reset очищает все ключи и заново выполняет посев
	Reset(ctx context.Context) error
}
