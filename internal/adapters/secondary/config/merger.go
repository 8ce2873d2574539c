package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])
	if result == nil {
		result = GetDefaultConfig()
	}

	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if port, ok := flags["port"].(int); ok && port > 0 {
		result.Server.Port = port
	}

	if host, ok := flags["host"].(string); ok && host != "" {
		result.Server.Host = host
	}

	if pretty, ok := flags["pretty"].(bool); ok && pretty {
		result.Output.Pretty = true
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Level = string(entities.LogLevelDebug)
	}

	if frontmatter, ok := flags["frontmatter"].(bool); ok && frontmatter {
		result.Extraction.Frontmatter = true
	}

	if theme, ok := flags["code-theme"].(string); ok && theme != "" {
		result.Extraction.CodeTheme = theme
	}

	if mode, ok := flags["watch-mode"].(string); ok && mode != "" {
		result.Watcher.Mode = mode
	}

	return result
}

// ApplyEnvVars applies environment variable overrides to a configuration
func (m *ConfigMerger) ApplyEnvVars(config *entities.Config) *entities.Config {
	result := deepCopy(config)

	if host := os.Getenv("MD2SLIDES_HOST"); host != "" {
		result.Server.Host = host
	}

	if portStr := os.Getenv("MD2SLIDES_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			result.Server.Port = port
		}
	}

	if maxStr := os.Getenv("MD2SLIDES_MAX_BODY_BYTES"); maxStr != "" {
		if maxBytes, err := strconv.ParseInt(maxStr, 10, 64); err == nil && maxBytes > 0 {
			result.Server.MaxBodyBytes = maxBytes
		}
	}

	if theme := os.Getenv("MD2SLIDES_CODE_THEME"); theme != "" {
		result.Extraction.CodeTheme = theme
	}

	if emojiStr := os.Getenv("MD2SLIDES_EMOJI"); emojiStr != "" {
		if emoji, err := strconv.ParseBool(emojiStr); err == nil {
			result.Extraction.Emoji = emoji
		}
	}

	if typoStr := os.Getenv("MD2SLIDES_TYPOGRAPHER"); typoStr != "" {
		if typographer, err := strconv.ParseBool(typoStr); err == nil {
			result.Extraction.Typographer = typographer
		}
	}

	if fmStr := os.Getenv("MD2SLIDES_FRONTMATTER"); fmStr != "" {
		if frontmatter, err := strconv.ParseBool(fmStr); err == nil {
			result.Extraction.Frontmatter = frontmatter
		}
	}

	if rateStr := os.Getenv("MD2SLIDES_RATE_LIMIT"); rateStr != "" {
		if limit, err := strconv.Atoi(rateStr); err == nil && limit > 0 {
			result.Server.RateLimit = limit
		}
	}

	if ttlStr := os.Getenv("MD2SLIDES_CACHE_TTL"); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl >= 0 {
			result.Server.CacheTTL = ttl
		}
	}

	if metricsStr := os.Getenv("MD2SLIDES_METRICS"); metricsStr != "" {
		if metrics, err := strconv.ParseBool(metricsStr); err == nil {
			result.Server.Metrics = metrics
		}
	}

	if mode := os.Getenv("MD2SLIDES_WATCH_MODE"); mode != "" {
		result.Watcher.Mode = mode
	}

	if intervalStr := os.Getenv("MD2SLIDES_WATCH_INTERVAL"); intervalStr != "" {
		if interval, err := strconv.Atoi(intervalStr); err == nil && interval > 0 {
			result.Watcher.IntervalMs = interval
		}
	}

	if debounceStr := os.Getenv("MD2SLIDES_WATCH_DEBOUNCE"); debounceStr != "" {
		if debounce, err := strconv.Atoi(debounceStr); err == nil && debounce >= 0 {
			result.Watcher.DebounceMs = debounce
		}
	}

	if level := os.Getenv("MD2SLIDES_LOG_LEVEL"); level != "" {
		result.Logging.Level = level
	}

	if jsonStr := os.Getenv("MD2SLIDES_LOG_JSON"); jsonStr != "" {
		if jsonFormat, err := strconv.ParseBool(jsonStr); err == nil {
			result.Logging.JSONFormat = jsonFormat
		}
	}

	return result
}

// mergeInto merges source configuration into target configuration.
// Strings and numbers override when non-zero; booleans override when the
// source defined them, since TOML cannot tell false from unset.
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	// Extraction config
	if source.IsDefined("extraction.typographer") {
		target.Extraction.Typographer = source.Extraction.Typographer
	}
	if source.IsDefined("extraction.emoji") {
		target.Extraction.Emoji = source.Extraction.Emoji
	}
	if source.IsDefined("extraction.frontmatter") {
		target.Extraction.Frontmatter = source.Extraction.Frontmatter
	}
	if source.IsDefined("extraction.code_theme") {
		// An explicit empty theme disables highlighting
		target.Extraction.CodeTheme = source.Extraction.CodeTheme
	}
	if len(source.Extraction.VideoProviders) > 0 {
		target.Extraction.VideoProviders = copyStrings(source.Extraction.VideoProviders)
	}
	if source.Extraction.ColumnMarker != "" {
		target.Extraction.ColumnMarker = source.Extraction.ColumnMarker
	}
	if source.Extraction.BackgroundClass != "" {
		target.Extraction.BackgroundClass = source.Extraction.BackgroundClass
	}

	// Server config
	if source.Server.Port != 0 {
		target.Server.Port = source.Server.Port
	}
	if source.Server.Host != "" {
		target.Server.Host = source.Server.Host
	}
	if source.Server.ReadTimeout != 0 {
		target.Server.ReadTimeout = source.Server.ReadTimeout
	}
	if source.Server.WriteTimeout != 0 {
		target.Server.WriteTimeout = source.Server.WriteTimeout
	}
	if source.Server.ShutdownTimeout != 0 {
		target.Server.ShutdownTimeout = source.Server.ShutdownTimeout
	}
	if source.Server.MaxBodyBytes != 0 {
		target.Server.MaxBodyBytes = source.Server.MaxBodyBytes
	}
	if len(source.Server.CORSOrigins) > 0 {
		target.Server.CORSOrigins = copyStrings(source.Server.CORSOrigins)
	}
	if source.Server.RateLimit != 0 {
		target.Server.RateLimit = source.Server.RateLimit
	}
	if source.IsDefined("server.cache_ttl") {
		// zero disables the cache, so it must be able to override
		target.Server.CacheTTL = source.Server.CacheTTL
	}
	if source.IsDefined("server.metrics") {
		target.Server.Metrics = source.Server.Metrics
	}

	// Watcher config
	if source.Watcher.Mode != "" {
		target.Watcher.Mode = source.Watcher.Mode
	}
	if source.Watcher.IntervalMs != 0 {
		target.Watcher.IntervalMs = source.Watcher.IntervalMs
	}
	if source.Watcher.DebounceMs != 0 {
		target.Watcher.DebounceMs = source.Watcher.DebounceMs
	}

	// Output config
	if source.IsDefined("output.pretty") {
		target.Output.Pretty = source.Output.Pretty
	}

	// Logging config
	if source.Logging.Level != "" {
		target.Logging.Level = source.Logging.Level
	}
	if source.IsDefined("logging.json") {
		target.Logging.JSONFormat = source.Logging.JSONFormat
	}
}

// deepCopy creates a deep copy of a configuration
func deepCopy(src *entities.Config) *entities.Config {
	if src == nil {
		return nil
	}

	dst := &entities.Config{
		Extraction: src.Extraction,
		Server:     src.Server,
		Watcher:    src.Watcher,
		Output:     src.Output,
		Logging:    src.Logging,
	}

	dst.Extraction.VideoProviders = copyStrings(src.Extraction.VideoProviders)
	dst.Server.CORSOrigins = copyStrings(src.Server.CORSOrigins)

	return dst
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)
