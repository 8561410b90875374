package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	// Storage выбирает хранилище: postgres или memory
	Storage string `envconfig:"STORAGE" default:"postgres"`

	DatabaseHost     string `envconfig:"DB_HOST"`
	DatabasePort     string `envconfig:"DB_PORT" default:"5432"`
	DatabaseUser     string `envconfig:"DB_USER"`
	DatabasePassword string `envconfig:"DB_PASSWORD"`
	DatabaseName     string `envconfig:"DB_NAME"`
	DatabaseSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	AdminToken string `envconfig:"ADMIN_TOKEN" required:"true"`

	// SeedFile путь к JSON-файлу с отрядами, импортируется при старте
	SeedFile string `envconfig:"SEED_FILE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Load загружает конфигурацию из .env (если есть) и переменных окружения
func Load() (*Config, error) {
	// .env опционален, в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage)
	}

	if cfg.Storage == StoragePostgres {
		if cfg.DatabaseHost == "" || cfg.DatabaseUser == "" || cfg.DatabaseName == "" {
			return nil, fmt.Errorf("postgres storage requires DB_HOST, DB_USER and DB_NAME")
		}
	}

	return &cfg, nil
}

// GetDSN возвращает строку подключения к базе данных
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}
