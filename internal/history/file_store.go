package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the storage area in a single YAML file:
//
//	history:
//	  enabled: true
//	definitions:
//	  run: to move fast
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileContents struct {
	History     *Setting          `yaml:"history,omitempty"`
	Definitions map[string]string `yaml:"definitions,omitempty"`
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Setting(_ context.Context) (Setting, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return Setting{}, false, err
	}
	if contents.History == nil {
		return Setting{}, false, nil
	}
	return *contents.History, true, nil
}

func (s *FileStore) SaveSetting(_ context.Context, setting Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return err
	}
	contents.History = &setting
	return s.write(contents)
}

func (s *FileStore) Definitions(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return nil, err
	}
	if contents.Definitions == nil {
		return make(map[string]string), nil
	}
	return contents.Definitions, nil
}

func (s *FileStore) SaveDefinitions(_ context.Context, definitions map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, err := s.read()
	if err != nil {
		return err
	}
	contents.Definitions = definitions
	return s.write(contents)
}

func (s *FileStore) read() (fileContents, error) {
	var contents fileContents
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return contents, nil
	}
	if err != nil {
		return contents, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return contents, fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}
	return contents, nil
}

func (s *FileStore) write(contents fileContents) error {
	data, err := yaml.Marshal(contents)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
