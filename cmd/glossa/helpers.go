package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/glossa/internal/config"
	"github.com/at-ishikawa/glossa/internal/history"
	"github.com/at-ishikawa/glossa/internal/storage"
)

type StorageBackend config.StorageBackend

func (b *StorageBackend) Set(val string) error {
	for _, backend := range config.AllStorageBackends {
		if val == string(backend) {
			*b = StorageBackend(backend)
			return nil
		}
	}
	return fmt.Errorf("invalid storage backend: %s", val)
}

func (b StorageBackend) String() string {
	return string(b)
}

func (b *StorageBackend) Type() string {
	return "StorageBackend"
}

var _ pflag.Value = (*StorageBackend)(nil)

func allStorageBackends() []string {
	names := make([]string, 0, len(config.AllStorageBackends))
	for _, backend := range config.AllStorageBackends {
		names = append(names, string(backend))
	}
	return names
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if storageBackend != "" {
		cfg.Storage.Backend = config.StorageBackend(storageBackend)
	}
	return cfg, nil
}

// openRecorder opens the configured store. The returned backend must be closed.
func openRecorder(ctx context.Context, cfg *config.Config) (*history.Recorder, *storage.Backend, error) {
	backend, err := storage.Open(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("storage.Open > %w", err)
	}
	recorder := history.NewRecorder(backend.Store, history.Setting{Enabled: cfg.History.DefaultEnabled})
	return recorder, backend, nil
}
