package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	APIBaseURL     string
	RequestTimeout int // seconds
	StorageBackend string // "file" or "redis"
	DataDir        string
	RedisURL       string
	PageSize       int
	AdminName      string
	AdminEmail     string
	AdminPassword  string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
		RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT", 10),
		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		PageSize:       getEnvAsInt("PAGE_SIZE", 10),
		AdminName:      getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@dairy.local"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
