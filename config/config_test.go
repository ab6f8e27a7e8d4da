package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "ACCESS_EXPIRES_MIN", "REFRESH_EXPIRES_DAYS", "DB_SSLMODE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 30, cfg.JWT.AccessExpiresMin)
	assert.Equal(t, 7, cfg.JWT.RefreshExpiresDays)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("ACCESS_EXPIRES_MIN", "15")
	t.Setenv("REFRESH_EXPIRES_DAYS", "30")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.AccessExpiresMin)
	assert.Equal(t, 30, cfg.JWT.RefreshExpiresDays)
}

func TestLoadConfigIgnoresInvalidInt(t *testing.T) {
	t.Setenv("ACCESS_EXPIRES_MIN", "not-a-number")

	cfg := LoadConfig()
	require.Equal(t, 30, cfg.JWT.AccessExpiresMin)
}

func TestDSN(t *testing.T) {
	dbCfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		DBName:   "bendahara",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=bendahara sslmode=disable",
		dbCfg.DSN(),
	)
}
