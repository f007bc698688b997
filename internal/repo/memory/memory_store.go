package memory

import (
	"SurveySession/internal/repo"
	"fmt"
	"sync"
)

// MemoryStore — key-value хранилище в памяти процесса.
// Используется как backend "memory" и как подменное хранилище в тестах.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
	used  int
	quota int
}

var _ repo.KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore создаёт пустое хранилище. quota ограничивает суммарный размер
// ключей и значений в байтах; 0 — без ограничения.
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{items: make(map[string]string), quota: quota}
}

// GetItem возвращает значение по ключу.
func (s *MemoryStore) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem записывает значение с проверкой квоты.
func (s *MemoryStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	used := s.used + len(value)
	if old, ok := s.items[key]; ok {
		used -= len(old)
	} else {
		used += len(key)
	}
	if s.quota > 0 && used > s.quota {
		return fmt.Errorf("set %q: %w", key, repo.ErrQuotaExceeded)
	}
	s.items[key] = value
	s.used = used
	return nil
}

// RemoveItem удаляет ключ, если он есть.
func (s *MemoryStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.items[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.items, key)
	}
	return nil
}

// Len возвращает количество ключей.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
