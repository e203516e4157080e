// README: Config loader with env defaults for HTTP, Redis, AI, and maps settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr           string
		AllowedOrigins string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
		Timeout   time.Duration
	}
	Maps struct {
		// EmbedKey is interpolated into the map-embed URL handed to the browser.
		EmbedKey string
		// APIKey enables server-side place resolution when set.
		APIKey string
	}
	Quota struct {
		// DailyLimit is the per-client request allowance per day. 0 disables the quota.
		DailyLimit int
	}
}

func Load() (Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WANDER_HTTP_ADDR", ":8080")
	cfg.HTTP.AllowedOrigins = envOrDefault("WANDER_ALLOWED_ORIGINS", "*")
	cfg.Redis.Addr = envOrDefault("WANDER_REDIS_ADDR", "localhost:6379")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("WANDER_AI_MODEL", "gemini-2.0-flash")
	cfg.AI.Timeout = envOrDefaultDuration("WANDER_AI_TIMEOUT", 60*time.Second)
	cfg.Maps.EmbedKey = envOrError("WANDER_MAPS_EMBED_KEY")
	cfg.Maps.APIKey = envOrDefault("WANDER_MAPS_API_KEY", "")
	cfg.Quota.DailyLimit = envOrDefaultInt("WANDER_DAILY_QUOTA", 50)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
