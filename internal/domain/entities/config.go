package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Extraction ExtractionConfig `toml:"extraction"`
	Server     ServerConfig     `toml:"server"`
	Watcher    WatcherConfig    `toml:"watcher"`
	Output     OutputConfig     `toml:"output"`
	Logging    LoggingConfig    `toml:"logging"`

	// defined holds the dotted keys read from a config file; nil means every field counts
	defined map[string]bool
}

// MarkDefined records which dotted keys (e.g. "extraction.emoji") were set explicitly
func (c *Config) MarkDefined(keys ...string) {
	if c.defined == nil {
		c.defined = make(map[string]bool, len(keys))
	}
	for _, k := range keys {
		c.defined[k] = true
	}
}

// IsDefined reports whether key was set explicitly. Configs built in code
// without MarkDefined treat every key as set.
func (c *Config) IsDefined(key string) bool {
	if c.defined == nil {
		return true
	}
	return c.defined[key]
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Extraction.Validate(); err != nil {
		return fmt.Errorf("extraction config: %w", err)
	}

	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Watcher.Validate(); err != nil {
		return fmt.Errorf("watcher config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// ExtractionConfig controls how markdown is turned into slides
type ExtractionConfig struct {
	Typographer     bool     `toml:"typographer"`      // Smart quotes and dashes
	Emoji           bool     `toml:"emoji"`            // Substitute :shortcodes:
	Frontmatter     bool     `toml:"frontmatter"`      // Read a leading YAML block
	CodeTheme       string   `toml:"code_theme"`       // chroma style, empty disables highlighting
	VideoProviders  []string `toml:"video_providers"`  // Accepted @[provider](id) names
	ColumnMarker    string   `toml:"column_marker"`    // Paragraph that starts a new column
	BackgroundClass string   `toml:"background_class"` // Image class marking the slide background
}

// Validate validates extraction configuration
func (e ExtractionConfig) Validate() error {
	// Empty means unset, whitespace-only can never match
	if e.ColumnMarker != "" && strings.TrimSpace(e.ColumnMarker) == "" {
		return errors.New("column marker cannot be blank")
	}
	if e.BackgroundClass != "" && strings.TrimSpace(e.BackgroundClass) == "" {
		return errors.New("background class cannot be blank")
	}
	for _, p := range e.VideoProviders {
		if strings.TrimSpace(p) == "" {
			return errors.New("video provider name cannot be empty")
		}
	}
	return nil
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
	CORSOrigins     []string `toml:"cors_origins"`
	RateLimit       int      `toml:"rate_limit"` // requests per minute per client
	CacheTTL        int      `toml:"cache_ttl"`  // seconds, 0 disables the result cache
	Metrics         bool     `toml:"metrics"`    // serve /metrics
}

// Validate validates server configuration
func (s ServerConfig) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	if s.ReadTimeout < 0 {
		return errors.New("read timeout must be non-negative")
	}

	if s.WriteTimeout < 0 {
		return errors.New("write timeout must be non-negative")
	}

	if s.ShutdownTimeout < 0 {
		return errors.New("shutdown timeout must be non-negative")
	}

	if s.MaxBodyBytes < 0 {
		return errors.New("max body bytes must be non-negative")
	}

	if s.RateLimit < 0 {
		return errors.New("rate limit must be non-negative")
	}

	if s.CacheTTL < 0 {
		return errors.New("cache TTL must be non-negative")
	}

	for _, origin := range s.CORSOrigins {
		if origin == "" {
			return errors.New("CORS origin cannot be empty")
		}
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin format: %s (must start with http:// or https://)", origin)
		}
	}

	return nil
}

// GetReadTimeout returns the read timeout as a duration
func (s ServerConfig) GetReadTimeout() time.Duration {
	if s.ReadTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.ReadTimeout) * time.Second
}

// GetWriteTimeout returns the write timeout as a duration
func (s ServerConfig) GetWriteTimeout() time.Duration {
	if s.WriteTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.WriteTimeout) * time.Second
}

// GetShutdownTimeout returns the shutdown timeout as a duration
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	if s.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// GetMaxBodyBytes returns the request body limit (default 1MB)
func (s ServerConfig) GetMaxBodyBytes() int64 {
	if s.MaxBodyBytes <= 0 {
		return 1 << 20
	}
	return s.MaxBodyBytes
}

// GetRateLimit returns the per-client request budget per minute (default 100)
func (s ServerConfig) GetRateLimit() int {
	if s.RateLimit <= 0 {
		return 100
	}
	return s.RateLimit
}

// GetCacheTTL returns how long extraction results are cached; zero disables caching
func (s ServerConfig) GetCacheTTL() time.Duration {
	return time.Duration(s.CacheTTL) * time.Second
}

// GetCORSOrigins returns the allowed CORS origins, defaulting to local development hosts
func (s ServerConfig) GetCORSOrigins() []string {
	if len(s.CORSOrigins) > 0 {
		return s.CORSOrigins
	}
	return []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		fmt.Sprintf("http://localhost:%d", s.Port),
		fmt.Sprintf("http://127.0.0.1:%d", s.Port),
	}
}

// Address returns host:port
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// WatchMode selects how file changes are detected
type WatchMode string

const (
	WatchModeNotify WatchMode = "notify" // filesystem notifications
	WatchModePoll   WatchMode = "poll"   // periodic stat and checksum
)

// WatcherConfig contains file watcher configuration
type WatcherConfig struct {
	Mode       string `toml:"mode"`
	IntervalMs int    `toml:"interval_ms"`
	DebounceMs int    `toml:"debounce_ms"`
}

// Validate validates watcher configuration
func (w WatcherConfig) Validate() error {
	switch WatchMode(w.Mode) {
	case "", WatchModeNotify, WatchModePoll:
	default:
		return fmt.Errorf("invalid watcher mode: %s (must be notify or poll)", w.Mode)
	}
	if w.IntervalMs < 0 {
		return errors.New("watcher interval must be non-negative")
	}
	if w.DebounceMs < 0 {
		return errors.New("watcher debounce must be non-negative")
	}
	return nil
}

// GetMode returns the watch mode, defaulting to notify
func (w WatcherConfig) GetMode() WatchMode {
	if w.Mode == "" {
		return WatchModeNotify
	}
	return WatchMode(w.Mode)
}

// GetInterval returns the polling interval (default 200ms)
func (w WatcherConfig) GetInterval() time.Duration {
	if w.IntervalMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(w.IntervalMs) * time.Millisecond
}

// GetDebounce returns the debounce window (default 500ms)
func (w WatcherConfig) GetDebounce() time.Duration {
	if w.DebounceMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// OutputConfig controls JSON output
type OutputConfig struct {
	Pretty bool `toml:"pretty"`
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"` // debug, info, warn, error
	JSONFormat bool   `toml:"json"`  // Output logs in JSON format
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}
	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}

// DefaultExtractionConfig returns the extraction settings used when none are configured
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Typographer:     false,
		Emoji:           true,
		Frontmatter:     false,
		CodeTheme:       "github",
		VideoProviders:  []string{"youtube", "vimeo"},
		ColumnMarker:    "{.column}",
		BackgroundClass: "background",
	}
}
