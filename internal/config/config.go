package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Predictor  PredictorConfig
	Handoff    HandoffConfig
	Dashboard  DashboardConfig
	ImageProbe ImageProbeConfig
	CORS       CORSConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// PredictorConfig points at the backend that serves options, predictions and stats.
type PredictorConfig struct {
	URL string
}

type HandoffConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type DashboardConfig struct {
	RecentLimit int
}

type ImageProbeConfig struct {
	Enabled     bool
	Timeout     time.Duration
	Concurrency int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("PREDICTOR_API_URL", "http://localhost:8000")
	v.SetDefault("HANDOFF_TTL", "5m")
	v.SetDefault("HANDOFF_MAX_ENTRIES", 1000)
	v.SetDefault("DASHBOARD_RECENT_LIMIT", 12)
	v.SetDefault("RESULTS_PROBE_IMAGES", false)
	v.SetDefault("IMAGE_PROBE_TIMEOUT", "3s")
	v.SetDefault("IMAGE_PROBE_CONCURRENCY", 4)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	handoffTTL, err := time.ParseDuration(v.GetString("HANDOFF_TTL"))
	if err != nil || handoffTTL <= 0 {
		handoffTTL = 5 * time.Minute
	}

	probeTimeout, err := time.ParseDuration(v.GetString("IMAGE_PROBE_TIMEOUT"))
	if err != nil || probeTimeout <= 0 {
		probeTimeout = 3 * time.Second
	}

	maxEntries := v.GetInt("HANDOFF_MAX_ENTRIES")
	if maxEntries <= 0 {
		maxEntries = 1000
	}

	recentLimit := v.GetInt("DASHBOARD_RECENT_LIMIT")
	if recentLimit <= 0 {
		recentLimit = 12
	}

	concurrency := v.GetInt("IMAGE_PROBE_CONCURRENCY")
	if concurrency <= 0 {
		concurrency = 4
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Predictor: PredictorConfig{
			URL: strings.TrimRight(v.GetString("PREDICTOR_API_URL"), "/"),
		},
		Handoff: HandoffConfig{
			TTL:        handoffTTL,
			MaxEntries: maxEntries,
		},
		Dashboard: DashboardConfig{
			RecentLimit: recentLimit,
		},
		ImageProbe: ImageProbeConfig{
			Enabled:     v.GetBool("RESULTS_PROBE_IMAGES"),
			Timeout:     probeTimeout,
			Concurrency: concurrency,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
