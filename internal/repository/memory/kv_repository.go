package memory

import (
	"context"
	"sync"

	"github.com/marketscope-service/internal/domain/repository"
)

// kvRepository - хранилище в памяти. Используется в юнит-тестах и в
// dev-режиме без внешних зависимостей; данные живут до перезапуска процесса.
type kvRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKVRepository() repository.KVRepository {
	return &kvRepository{
		data: make(map[string][]byte),
	}
}

func (r *kvRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(val))
	copy(copied, val)
	return copied, nil
}

func (r *kvRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	r.data[key] = copied
	return nil
}

func (r *kvRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *kvRepository) Exists(_ context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.data[key]
	return ok, nil
}
