package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	extraction := entities.DefaultExtractionConfig()

	config := &entities.Config{
		Extraction: entities.ExtractionConfig{
			Typographer:     getEnvBoolOrDefault("MD2SLIDES_TYPOGRAPHER", extraction.Typographer),
			Emoji:           getEnvBoolOrDefault("MD2SLIDES_EMOJI", extraction.Emoji),
			Frontmatter:     getEnvBoolOrDefault("MD2SLIDES_FRONTMATTER", extraction.Frontmatter),
			CodeTheme:       getEnvOrDefault("MD2SLIDES_CODE_THEME", extraction.CodeTheme),
			VideoProviders:  getEnvSliceOrDefault("MD2SLIDES_VIDEO_PROVIDERS", extraction.VideoProviders),
			ColumnMarker:    extraction.ColumnMarker,
			BackgroundClass: extraction.BackgroundClass,
		},
		Server: entities.ServerConfig{
			Host:            getEnvOrDefault("MD2SLIDES_HOST", "localhost"),
			Port:            getEnvIntOrDefault("MD2SLIDES_PORT", 8080),
			ReadTimeout:     getEnvIntOrDefault("MD2SLIDES_READ_TIMEOUT", 30),
			WriteTimeout:    getEnvIntOrDefault("MD2SLIDES_WRITE_TIMEOUT", 30),
			ShutdownTimeout: getEnvIntOrDefault("MD2SLIDES_SHUTDOWN_TIMEOUT", 5),
			MaxBodyBytes:    int64(getEnvIntOrDefault("MD2SLIDES_MAX_BODY_BYTES", 1<<20)),
			CORSOrigins:     getEnvSliceOrDefault("MD2SLIDES_CORS_ORIGINS", nil),
			RateLimit:       getEnvIntOrDefault("MD2SLIDES_RATE_LIMIT", 100),
			CacheTTL:        getEnvIntOrDefault("MD2SLIDES_CACHE_TTL", 300),
			Metrics:         getEnvBoolOrDefault("MD2SLIDES_METRICS", true),
		},
		Watcher: entities.WatcherConfig{
			Mode:       getEnvOrDefault("MD2SLIDES_WATCH_MODE", string(entities.WatchModeNotify)),
			IntervalMs: 200,
			DebounceMs: 500,
		},
		Output: entities.OutputConfig{
			Pretty: getEnvBoolOrDefault("MD2SLIDES_PRETTY", false),
		},
		Logging: entities.LoggingConfig{
			Level:      getEnvOrDefault("MD2SLIDES_LOG_LEVEL", "info"),
			JSONFormat: getEnvBoolOrDefault("MD2SLIDES_LOG_JSON", false),
		},
	}

	return config
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvSliceOrDefault returns a comma separated environment variable as slice or default
func getEnvSliceOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
