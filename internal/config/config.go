package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort           = 3000
	defaultUploadsPath    = "./uploads"
	defaultMaxUploadBytes = 5 * 1024 * 1024 // 5 MB per photo
	defaultMaxPhotoCount  = 10
	defaultLogLevel       = "info"
)

// Config holds all runtime settings. Values come from the environment;
// main loads a .env file first when one is present.
type Config struct {
	Port             int
	UploadsPath      string
	MaxUploadBytes   int64
	MaxPhotoCount    int
	LogLevel         string
	MonitoringAPIKey string
}

func Load() Config {
	return Config{
		Port:             getIntEnvOrDefault("PORT", defaultPort),
		UploadsPath:      getEnvOrDefault("UPLOADS_PATH", defaultUploadsPath),
		MaxUploadBytes:   getInt64EnvOrDefault("MAX_UPLOAD_SIZE_BYTES", defaultMaxUploadBytes),
		MaxPhotoCount:    getIntEnvOrDefault("MAX_PHOTOS_PER_LISTING", defaultMaxPhotoCount),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
		MonitoringAPIKey: strings.TrimSpace(os.Getenv("MONITORING_API_KEY")),
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}

func getInt64EnvOrDefault(key string, defaultValue int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}
