package history

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps the setting and definitions in process memory.
type MemoryStore struct {
	mu          sync.Mutex
	setting     *Setting
	definitions map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{definitions: make(map[string]string)}
}

func (s *MemoryStore) Setting(_ context.Context) (Setting, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setting == nil {
		return Setting{}, false, nil
	}
	return *s.setting, true, nil
}

func (s *MemoryStore) SaveSetting(_ context.Context, setting Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setting = &setting
	return nil
}

func (s *MemoryStore) Definitions(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	definitions := maps.Clone(s.definitions)
	if definitions == nil {
		definitions = make(map[string]string)
	}
	return definitions, nil
}

func (s *MemoryStore) SaveDefinitions(_ context.Context, definitions map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions = maps.Clone(definitions)
	return nil
}
