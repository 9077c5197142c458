package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.SessionSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestValidate(t *testing.T) {
	cfg := &Config{SessionSecret: ""}
	assert.Error(t, cfg.Validate())

	cfg.SessionSecret = "s3cret"
	assert.NoError(t, cfg.Validate())
}
