package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/marketscope-service/internal/domain/repository"
)

// Коллекции лежат в одной таблице key -> jsonb: модель хранения
// "перезапись коллекции целиком" не нуждается в табличной схеме
const kvSchema = `
CREATE TABLE IF NOT EXISTS marketscope_kv (
    key   TEXT PRIMARY KEY,
    value JSONB NOT NULL
)`

type kvRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewKVRepository создает postgres-хранилище и гарантирует наличие таблицы
func NewKVRepository(db *DB) (repository.KVRepository, error) {
	if _, err := db.Exec(kvSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure kv table: %w", err)
	}
	return &kvRepository{db: db, logger: db.logger}, nil
}

func (r *kvRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.GetContext(ctx, &value,
		`SELECT value FROM marketscope_kv WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get from storage", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("storage get error: %w", err)
	}
	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO marketscope_kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	if err != nil {
		r.logger.Error("Failed to set storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage set error: %w", err)
	}

	r.logger.Debug("Storage key written", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM marketscope_kv WHERE key = $1`, key)
	if err != nil {
		r.logger.Error("Failed to delete storage key", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("storage delete error: %w", err)
	}
	return nil
}

func (r *kvRepository) Exists(ctx context.Context, key string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(1) FROM marketscope_kv WHERE key = $1`, key)
	if err != nil {
		r.logger.Error("Failed to check storage key", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("storage exists error: %w", err)
	}
	return count > 0, nil
}
