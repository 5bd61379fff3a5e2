package config

import (
	"errors"
	"testing"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "PASSGEN_SEED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "DEFAULT_LENGTH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:           "8080",
		Env:            "development",
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		DefaultLength:  16,
	}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PASSGEN_SEED", "42")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("DEFAULT_LENGTH", "32")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.RateLimitBurst)
	assert.Equal(t, 32, cfg.DefaultLength)
}

func TestLoadErrors(t *testing.T) {
	t.Run("unparsable seed", func(t *testing.T) {
		t.Setenv("PASSGEN_SEED", "abc")
		_, err := Load()
		assert.ErrorContains(t, err, "PASSGEN_SEED")
	})

	t.Run("default length out of range", func(t *testing.T) {
		t.Setenv("DEFAULT_LENGTH", "64")
		_, err := Load()
		assert.True(t, errors.Is(err, generator.ErrLengthOutOfRange))
	})

	t.Run("zero rate", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "RATE_LIMIT_RPS")
	})

	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "-2")
		_, err := Load()
		assert.ErrorContains(t, err, "RATE_LIMIT_RPS")
	})

	t.Run("zero burst", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "RATE_LIMIT_BURST")
	})

	t.Run("fixed seed in production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("PASSGEN_SEED", "7")
		_, err := Load()
		assert.Error(t, err)
	})
}
