package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain/repository"
)

// kvRepository хранит коллекции как строковые ключи без TTL:
// в отличие от кеша, данные обследований живут до явного удаления
type kvRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewKVRepository(r *Redis) repository.KVRepository {
	return &kvRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // ключ отсутствует
	}
	if err != nil {
		r.logger.Error("Failed to get from storage", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("storage get error: %w", err)
	}

	return val, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Error("Failed to set storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage set error: %w", err)
	}

	r.logger.Debug("Storage key written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage delete error: %w", err)
	}

	r.logger.Debug("Storage key deleted", zap.String("key", key))
	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check storage key", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("storage exists error: %w", err)
	}

	return val > 0, nil
}
