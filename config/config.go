package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DemoUserID string
	// Redis (document store)
	RedisURL      string
	RedisPassword string
	// Gemini
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiTTSModel   string
	GeminiVideoModel string
	GeminiVoice      string
	// Video generation
	VideoPollInterval    time.Duration
	VideoPollTimeout     time.Duration
	VideoFallbackURL     string
	VideoPropagateErrors bool
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DemoUserID: getEnv("DEMO_USER_ID", "1"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-2.0-flash"),
		GeminiTTSModel:   getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		GeminiVideoModel: getEnv("GEMINI_VIDEO_MODEL", "veo-2.0-generate-001"),
		GeminiVoice:      getEnv("GEMINI_VOICE", "Algenib"),

		VideoPollInterval:    time.Duration(getEnvInt("VIDEO_POLL_INTERVAL_SECONDS", 5)) * time.Second,
		VideoPollTimeout:     time.Duration(getEnvInt("VIDEO_POLL_TIMEOUT_SECONDS", 600)) * time.Second,
		VideoFallbackURL:     getEnv("VIDEO_FALLBACK_URL", "https://www.w3schools.com/html/mov_bbb.mp4"),
		VideoPropagateErrors: getEnvBool("VIDEO_PROPAGATE_ERRORS", false),
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. AI capabilities will be unavailable.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Application may fail to connect.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
