package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type StorageBackend string

const (
	StorageBackendFile   StorageBackend = "file"
	StorageBackendRedis  StorageBackend = "redis"
	StorageBackendMySQL  StorageBackend = "mysql"
	StorageBackendMemory StorageBackend = "memory"
)

var AllStorageBackends = []StorageBackend{
	StorageBackendFile,
	StorageBackendRedis,
	StorageBackendMySQL,
	StorageBackendMemory,
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	History    HistoryConfig    `mapstructure:"history"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
	// ShutdownTimeoutSeconds bounds how long pending history writes may delay exit.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DictionaryConfig struct {
	Endpoint       string `mapstructure:"endpoint" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=0"`
}

// Timeout returns the outbound request timeout; zero means none.
func (c DictionaryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type SpeechConfig struct {
	SynthesizeURL string `mapstructure:"synthesize_url" validate:"required,url"`
}

type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" validate:"oneof=file redis mysql memory"`
	// ConnectAttempts is how many times a redis or mysql backend is pinged at startup.
	ConnectAttempts uint        `mapstructure:"connect_attempts" validate:"min=1"`
	File            FileConfig  `mapstructure:"file"`
	Redis           RedisConfig `mapstructure:"redis"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	URL       string `mapstructure:"url" validate:"omitempty,redisurl"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type HistoryConfig struct {
	// DefaultEnabled applies until a history setting has been stored.
	DefaultEnabled bool `mapstructure:"default_enabled"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/glossa")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("dictionary.endpoint", "https://api.dictionaryapi.dev/api/v2/entries")
	v.SetDefault("dictionary.timeout_seconds", 0)
	v.SetDefault("speech.synthesize_url", "https://www.google.com/speech-api/v1/synthesize")
	v.SetDefault("storage.backend", string(StorageBackendFile))
	v.SetDefault("storage.connect_attempts", 5)
	v.SetDefault("storage.file.path", filepath.Join("data", "storage.yml"))
	v.SetDefault("storage.redis.url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis.key_prefix", "glossa:")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "glossa")
	v.SetDefault("database.username", "user")
	v.SetDefault("history.default_enabled", true)

	// Bind credentials to environment variables
	if err := v.BindEnv("storage.redis.url", "REDIS_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REDIS_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
