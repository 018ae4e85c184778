package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string  `env:"HTTP_ADDR"            envDefault:":8080"`
	LogsDirectory      string  `env:"LOGS_DIRECTORY"`
	LogLevel           string  `env:"LOG_LEVEL"            envDefault:"info"`
	DelaySweepSchedule string  `env:"DELAY_SWEEP_SCHEDULE" envDefault:"@every 5m"`
	ActivityLimit      int     `env:"ACTIVITY_LIMIT"       envDefault:"50"`
	SatisfactionRate   float64 `env:"SATISFACTION_RATE"    envDefault:"97"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.ActivityLimit <= 0 {
		return nil, fmt.Errorf("load config: ACTIVITY_LIMIT must be positive, got %d", cfg.ActivityLimit)
	}
	return &cfg, nil
}
