package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   8080,
			CORS:                   CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			ShutdownTimeoutSeconds: 10,
		},
		Dictionary: DictionaryConfig{
			Endpoint: "https://api.dictionaryapi.dev/api/v2/entries",
		},
		Speech: SpeechConfig{
			SynthesizeURL: "https://www.google.com/speech-api/v1/synthesize",
		},
		Storage: StorageConfig{
			Backend:         StorageBackendFile,
			ConnectAttempts: 5,
			File:            FileConfig{Path: filepath.Join("data", "storage.yml")},
			Redis: RedisConfig{
				URL:       "redis://localhost:6379/0",
				KeyPrefix: "glossa:",
			},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "glossa",
			Username: "user",
		},
		History: HistoryConfig{DefaultEnabled: true},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:            "no config file uses defaults",
			useExplicitPath: false,
			want:            defaultConfig,
		},
		{
			name: "custom values",
			configContent: `server:
  port: 9090
  cors:
    allowed_origins:
      - moz-extension://glossa
dictionary:
  endpoint: http://localhost:8081/api/v2/entries
  timeout_seconds: 5
storage:
  backend: redis
  redis:
    key_prefix: "test:"
history:
  default_enabled: false
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9090
				cfg.Server.CORS.AllowedOrigins = []string{"moz-extension://glossa"}
				cfg.Dictionary.Endpoint = "http://localhost:8081/api/v2/entries"
				cfg.Dictionary.TimeoutSeconds = 5
				cfg.Storage.Backend = StorageBackendRedis
				cfg.Storage.Redis.KeyPrefix = "test:"
				cfg.History.DefaultEnabled = false
				return cfg
			},
		},
		{
			name: "config.yaml in working directory",
			configContent: `storage:
  backend: memory
`,
			useExplicitPath: false,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Storage.Backend = StorageBackendMemory
				return cfg
			},
		},
		{
			name:            "credentials from environment",
			useExplicitPath: false,
			env: map[string]string{
				"REDIS_URL":   "rediss://cache.example.com:6380/1",
				"DB_PASSWORD": "secret",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Storage.Redis.URL = "rediss://cache.example.com:6380/1"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `storage:
  backend: file
  invalid yaml format here [[[
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown storage backend",
			configContent: `storage:
  backend: sqlite
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"backend must be one of [file redis mysql memory]",
			},
		},
		{
			name: "invalid redis url",
			configContent: `storage:
  redis:
    url: localhost:6379
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"storage.redis.url must start with one of redis://, rediss://, unix://",
			},
		},
		{
			name: "invalid dictionary endpoint",
			configContent: `dictionary:
  endpoint: not a url
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"endpoint must be a valid URL",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_URL", "")
			t.Setenv("DB_PASSWORD", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}
				t.Chdir(tempDir)
				configPath = ""
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestDictionaryConfig_Timeout(t *testing.T) {
	assert.Zero(t, DictionaryConfig{}.Timeout())
	assert.Equal(t, "5s", DictionaryConfig{TimeoutSeconds: 5}.Timeout().String())
}
