package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBDSN        string
	GeminiAPIKey string
	GeminiModel  string
	WeatherTick  time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	tickMS, err := strconv.Atoi(get("WEATHER_TICK_MS", "3000"))
	if err != nil || tickMS <= 0 {
		tickMS = 3000
	}
	cfg := AppConfig{
		Port: get("PORT", "8080"),
		// in-memory by default: records live only as long as the process
		DBDSN:        get("DB_DSN", "file::memory:?cache=shared"),
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", "gemini-2.5-flash"),
		WeatherTick:  time.Duration(tickMS) * time.Millisecond,
	}
	log.Printf("[cfg] port=%s db=%s model=%s weather_tick=%s key_set=%t",
		cfg.Port, cfg.DBDSN, cfg.GeminiModel, cfg.WeatherTick, cfg.GeminiAPIKey != "")
	return cfg
}
