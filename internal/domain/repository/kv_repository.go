package repository

import "context"

// KVRepository определяет методы низкоуровневого key-value хранилища.
// Значения - JSON-блобы целых коллекций; запись перезаписывает коллекцию
// целиком, побеждает последний писатель.
type KVRepository interface {
	// Get получает значение по ключу; (nil, nil) если ключ отсутствует
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение по ключу (без TTL, данные живут до явного удаления)
	Set(ctx context.Context, key string, value []byte) error

	// Delete удаляет значение по ключу
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)
}
