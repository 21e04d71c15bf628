package settings

import (
	"context"
	"sort"
	"sync"
)

// NewMemoryRepository constructs an "in memory" settings repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byKey: make(map[string]*Setting),
	}
}

type memoryRepository struct {
	mu    sync.RWMutex
	byKey map[string]*Setting
}

func (m *memoryRepository) List(_ context.Context) ([]*Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]*Setting, 0, len(m.byKey))
	for _, row := range m.byKey {
		cloned := *row
		rows = append(rows, &cloned)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows, nil
}

func (m *memoryRepository) Get(_ context.Context, key string) (*Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.byKey[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	cloned := *row
	return &cloned, nil
}

func (m *memoryRepository) Set(_ context.Context, setting *Setting) (*Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := *setting
	if existing, ok := m.byKey[setting.Key]; ok {
		cloned.CreatedAt = existing.CreatedAt
	}
	m.byKey[cloned.Key] = &cloned

	out := cloned
	return &out, nil
}
