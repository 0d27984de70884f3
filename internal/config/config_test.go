package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Predictor.URL)
	assert.Equal(t, 5*time.Minute, cfg.Handoff.TTL)
	assert.Equal(t, 1000, cfg.Handoff.MaxEntries)
	assert.Equal(t, 12, cfg.Dashboard.RecentLimit)
	assert.False(t, cfg.ImageProbe.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PREDICTOR_API_URL", "https://api.autopredict.pe/")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HANDOFF_TTL", "90s")
	t.Setenv("DASHBOARD_RECENT_LIMIT", "6")
	t.Setenv("RESULTS_PROBE_IMAGES", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.pe, https://b.pe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.autopredict.pe", cfg.Predictor.URL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Handoff.TTL)
	assert.Equal(t, 6, cfg.Dashboard.RecentLimit)
	assert.True(t, cfg.ImageProbe.Enabled)
	assert.Equal(t, []string{"https://a.pe", "https://b.pe"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("HANDOFF_TTL", "soon")
	t.Setenv("HANDOFF_MAX_ENTRIES", "0")
	t.Setenv("DASHBOARD_RECENT_LIMIT", "-3")
	t.Setenv("IMAGE_PROBE_CONCURRENCY", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Handoff.TTL)
	assert.Equal(t, 1000, cfg.Handoff.MaxEntries)
	assert.Equal(t, 12, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 4, cfg.ImageProbe.Concurrency)
}
