package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/passgen/passgen-go/internal/generator"
)

type Config struct {
	Port           string
	Env            string
	Seed           uint64
	RateLimitRPS   float64
	RateLimitBurst int
	DefaultLength  int
}

func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
	}

	var err error
	if cfg.Seed, err = strconv.ParseUint(getEnv("PASSGEN_SEED", "0"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("parse PASSGEN_SEED: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitRPS <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitBurst)
	}
	if cfg.DefaultLength, err = strconv.Atoi(getEnv("DEFAULT_LENGTH", strconv.Itoa(generator.DefaultLength))); err != nil {
		return Config{}, fmt.Errorf("parse DEFAULT_LENGTH: %w", err)
	}
	if err := generator.CheckLength(cfg.DefaultLength); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH: %w", err)
	}

	if cfg.Env == "production" && cfg.Seed != 0 {
		return Config{}, fmt.Errorf("PASSGEN_SEED must not be set in production environment")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
