// Package history records looked-up words and the setting that toggles recording.
package history

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

//go:generate mockgen -source=history.go -destination=../mocks/history/mock_store.go -package=mock_history

// Storage keys shared by every backend.
const (
	SettingKey     = "history"
	DefinitionsKey = "definitions"
)

// Setting toggles whether looked-up words are recorded.
type Setting struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DefaultSetting applies when no setting has been stored yet.
var DefaultSetting = Setting{Enabled: true}

// Store is a persistent key-value area holding the setting and the definitions mapping.
type Store interface {
	// Setting returns the stored setting and whether one was found.
	Setting(ctx context.Context) (Setting, bool, error)
	SaveSetting(ctx context.Context, setting Setting) error
	// Definitions returns the whole word to meaning mapping. It is never nil.
	Definitions(ctx context.Context) (map[string]string, error)
	// SaveDefinitions replaces the stored mapping.
	SaveDefinitions(ctx context.Context, definitions map[string]string) error
}

// DefinitionSaver is implemented by stores that can write one pair without
// rewriting the whole mapping.
type DefinitionSaver interface {
	SaveDefinition(ctx context.Context, word, meaning string) error
}

// Recorder saves looked-up words into a Store when recording is enabled.
type Recorder struct {
	store          Store
	defaultSetting Setting
}

func NewRecorder(store Store, defaultSetting Setting) *Recorder {
	return &Recorder{
		store:          store,
		defaultSetting: defaultSetting,
	}
}

// Setting returns the stored setting, or the default when none is stored.
func (r *Recorder) Setting(ctx context.Context) (Setting, error) {
	setting, ok, err := r.store.Setting(ctx)
	if err != nil {
		return Setting{}, fmt.Errorf("store.Setting > %w", err)
	}
	if !ok {
		return r.defaultSetting, nil
	}
	return setting, nil
}

func (r *Recorder) SetEnabled(ctx context.Context, enabled bool) error {
	if err := r.store.SaveSetting(ctx, Setting{Enabled: enabled}); err != nil {
		return fmt.Errorf("store.SaveSetting > %w", err)
	}
	return nil
}

func (r *Recorder) Definitions(ctx context.Context) (map[string]string, error) {
	definitions, err := r.store.Definitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Definitions > %w", err)
	}
	return definitions, nil
}

// Record saves the content if recording is enabled and reports whether it did.
func (r *Recorder) Record(ctx context.Context, content dictionary.Content) (bool, error) {
	setting, err := r.Setting(ctx)
	if err != nil {
		return false, err
	}
	if !setting.Enabled {
		return false, nil
	}
	if err := r.Save(ctx, content.Word, content.Meaning); err != nil {
		return false, err
	}
	return true, nil
}

// Save overwrites the meaning of word. Stores implementing DefinitionSaver
// write the pair alone. Otherwise the mapping is read and written back in
// separate store calls, so concurrent saves race and the last write wins.
func (r *Recorder) Save(ctx context.Context, word, meaning string) error {
	if saver, ok := r.store.(DefinitionSaver); ok {
		if err := saver.SaveDefinition(ctx, word, meaning); err != nil {
			return fmt.Errorf("store.SaveDefinition > %w", err)
		}
		return nil
	}

	definitions, err := r.store.Definitions(ctx)
	if err != nil {
		return fmt.Errorf("store.Definitions > %w", err)
	}
	definitions[word] = meaning
	if err := r.store.SaveDefinitions(ctx, definitions); err != nil {
		return fmt.Errorf("store.SaveDefinitions > %w", err)
	}
	return nil
}
