package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     string `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD, default=postgres"`
	DBName   string `env:"POSTGRES_DB,       default=task_manager"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
