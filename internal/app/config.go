package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/felixbrock/handymatch/internal/logging"
)

type Config struct {
	Port            string
	Log             logging.Config
	RateLimitRPS    float64
	RateLimitBurst  int
	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

// LoadDotenv loads the given .env files into the process environment,
// skipping the ones that do not exist. Variables already set win.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat dotenv file path=%s: %w", path, err)
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load dotenv file path=%s: %w", path, err)
		}
	}

	return nil
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
func LoadConfig(getenv func(string) string) Config {
	env := envReader(getenv)

	port := env.getStr("PORT", "")
	if port == "" {
		port = env.getStr("GOPORT", "8000")
	}

	return Config{
		Port: port,
		Log: logging.Config{
			Level:      env.getStr("LOG_LEVEL", "info"),
			Dir:        env.getStr("LOG_DIR", ""),
			MaxSizeMB:  env.getInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: env.getInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: env.getInt("LOG_MAX_AGE_DAYS", 14),
			Compress:   env.getBool("LOG_COMPRESS", true),
		},
		RateLimitRPS:    env.getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  env.getInt("RATE_LIMIT_BURST", 20),
		MetricsEnabled:  env.getBool("METRICS_ENABLED", true),
		ShutdownTimeout: env.getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

type envReader func(string) string

func (e envReader) getStr(key, fallback string) string {
	if v := strings.TrimSpace(e(key)); v != "" {
		return v
	}
	return fallback
}

func (e envReader) getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(e.getStr(key, "")); err == nil {
		return v
	}
	return fallback
}

func (e envReader) getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(e.getStr(key, ""), 64); err == nil {
		return v
	}
	return fallback
}

func (e envReader) getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(e.getStr(key, "")); err == nil {
		return v
	}
	return fallback
}

func (e envReader) getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(e.getStr(key, "")); err == nil {
		return v
	}
	return fallback
}
