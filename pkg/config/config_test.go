package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "DB_NAME", "ASSESSMENT_CACHE_TTL_SECONDS", "PARETO_THRESHOLD_PERCENT", "ASSESSMENT_WORKERS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "metodo_inrs", cfg.Database.Database)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 600, cfg.Assessment.CacheTTLSeconds)
	assert.Equal(t, 80.0, cfg.Assessment.ParetoThresholdPercent)
	assert.Equal(t, 8, cfg.Assessment.Workers)
}

func TestLoad_AssessmentConfig(t *testing.T) {
	t.Setenv("ASSESSMENT_CACHE_TTL_SECONDS", "30")
	t.Setenv("PARETO_THRESHOLD_PERCENT", "90.5")
	t.Setenv("ASSESSMENT_WORKERS", "2")
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Assessment.CacheTTLSeconds)
	assert.Equal(t, 90.5, cfg.Assessment.ParetoThresholdPercent)
	assert.Equal(t, 2, cfg.Assessment.Workers)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_InvalidValuesFallBackOrFail(t *testing.T) {
	t.Run("unparseable number keeps default", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "not-a-port")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		t.Setenv("PARETO_THRESHOLD_PERCENT", "120")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("no workers", func(t *testing.T) {
		t.Setenv("ASSESSMENT_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestConnectionStrings(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Database: "inrs", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=inrs sslmode=require", db.DatabaseDSN())

	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.RedisAddr())
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	t.Setenv("ALLOWED_ORIGINS", "https://prevencion.example.com, http://localhost:5173,")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://prevencion.example.com", "http://localhost:5173"}, cfg.Server.AllowedOrigins)
}
