package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// YouTube Data API
	YouTubeAPIKey      string
	YouTubeBaseURL     string
	HTTPTimeoutSeconds int

	// Storage
	StorageType string // "file", "memory" or "redis"
	StoragePath string
	RedisURL    string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		YouTubeAPIKey:      getEnvOrDefault("YOUTUBE_API_KEY", ""),
		YouTubeBaseURL:     getEnvOrDefault("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3"),
		HTTPTimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 15),
		StorageType:        getEnvOrDefault("STORAGE_TYPE", "file"),
		StoragePath:        getEnvOrDefault("STORAGE_PATH", "./data/focustube.json"),
		RedisURL:           getEnvOrDefault("REDIS_URL", ""),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
