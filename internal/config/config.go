package config

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// ModelConfig locates the artifact and controls how it is loaded.
// SigningKey is hex-encoded HMAC key material injected by an external
// secret provider; it is never read from repository contents.
type ModelConfig struct {
	Source         string // "file" or "postgres"
	Path           string
	MetadataPath   string
	Name           string // artifact name for the postgres source
	LoadTimeout    time.Duration
	LazyLoad       bool
	VerifyDisabled bool
	SigningKey     string
}

func (m ModelConfig) SigningKeyBytes() ([]byte, error) {
	if m.SigningKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(m.SigningKey)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}
	return key, nil
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("MODEL_SOURCE", "file")
	v.SetDefault("MODEL_PATH", "models/iris_classifier.json")
	v.SetDefault("MODEL_METADATA_PATH", "models/model_metadata.json")
	v.SetDefault("MODEL_NAME", "iris-classifier")
	v.SetDefault("MODEL_LOAD_TIMEOUT", "10s")
	v.SetDefault("MODEL_LAZY_LOAD", false)
	v.SetDefault("VERIFY_DISABLED", false)
	v.SetDefault("SIGNING_KEY", "")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "model_serving")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	loadTimeout, err := time.ParseDuration(v.GetString("MODEL_LOAD_TIMEOUT"))
	if err != nil {
		loadTimeout = 10 * time.Second
	}
	connLifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Model: ModelConfig{
			Source:         v.GetString("MODEL_SOURCE"),
			Path:           v.GetString("MODEL_PATH"),
			MetadataPath:   v.GetString("MODEL_METADATA_PATH"),
			Name:           v.GetString("MODEL_NAME"),
			LoadTimeout:    loadTimeout,
			LazyLoad:       v.GetBool("MODEL_LAZY_LOAD"),
			VerifyDisabled: v.GetBool("VERIFY_DISABLED"),
			SigningKey:     v.GetString("SIGNING_KEY"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Model.Source != "file" && cfg.Model.Source != "postgres" {
		return nil, fmt.Errorf("unknown MODEL_SOURCE %q", cfg.Model.Source)
	}

	return cfg, nil
}
