// Package config carga la configuración desde variables de entorno.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"cat-collector"`
	Port    int    `env:"PORT" envDefault:"8080"`

	// Vacío => repos en memoria.
	DatabaseDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// Límite del body multipart de fotos, en bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`

	S3   S3   `envPrefix:"S3_"`
	Auth Auth `envPrefix:"AUTH_IAM_"`
}

type S3 struct {
	BaseURL         string        `env:"BASE_URL" envDefault:"https://s3.amazonaws.com/"`
	Bucket          string        `env:"BUCKET"`
	Region          string        `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string        `env:"ENDPOINT"`
	UsePathStyle    bool          `env:"USE_PATH_STYLE" envDefault:"false"`
	AccessKeyID     string        `env:"ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"SECRET_ACCESS_KEY"`
	UploadTimeout   time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"30s"`
}

// Auth: sin URL no hay verifier remoto (modo dev con X-Debug-User-ID).
type Auth struct {
	URL          string        `env:"URL"`
	APIKey       string        `env:"API_KEY"`
	APIKeyHeader string        `env:"API_KEY_HEADER" envDefault:"X-Api-Key"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UsesS3 indica si hay bucket configurado; si no, las fotos van al store en memoria.
func (c *Config) UsesS3() bool {
	return c.S3.Bucket != ""
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}
	return cfg, nil
}
