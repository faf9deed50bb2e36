package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("DB_TYPE", "")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/blog.db")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "12")

	cfg := LoadConfig()
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "/tmp/blog.db", cfg.SQLitePath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadConfigBadTTLKeepsDefault(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
