package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string `env:"MONGO_URI,required"`
	DBName   string `env:"DB_NAME" envDefault:"movie_catalog"`

	// Runtime Configuration
	Env string `env:"GO_ENV" envDefault:"development"`
}

// LoadConfig reads an optional .env file and parses the environment into a
// Config. Constructors receive the result explicitly; there is no global
// client or configuration state.
func LoadConfig() (*Config, error) {
	// Missing .env is fine, the environment may be set by the deployment.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
