package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// LocalConfigName is the per-directory configuration file name
const LocalConfigName = "md2slides.toml"

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct {
	globalPath string
	localName  string
}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	homeDir, _ := os.UserHomeDir()

	return &TOMLLoader{
		globalPath: filepath.Join(homeDir, ".config", "md2slides", "config.toml"),
		localName:  LocalConfigName,
	}
}

// NewTOMLLoaderWithGlobalPath creates a loader reading the global config from path
func NewTOMLLoaderWithGlobalPath(path string) *TOMLLoader {
	return &TOMLLoader{
		globalPath: path,
		localName:  LocalConfigName,
	}
}

// LoadGlobal loads the global configuration file. A missing file is not an error.
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	return l.loadOptional(l.globalPath)
}

// LoadLocal loads a local configuration file from the specified directory
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	return l.loadOptional(l.GetLocalPath(dir))
}

// LoadFile loads an explicitly requested configuration file, which must exist
func (l *TOMLLoader) LoadFile(ctx context.Context, path string) (*entities.Config, error) {
	return l.loadConfig(path)
}

// CreateDefaults creates a default configuration file at the specified path
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	if err := l.ensureConfigDir(path); err != nil {
		return err
	}

	defaults := GetDefaultConfig()

	file, err := os.Create(path) // #nosec G304 - path is controlled (global config path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "

	if err := encoder.Encode(defaults); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}

	return nil
}

// GetGlobalPath returns the path to the global configuration file
func (l *TOMLLoader) GetGlobalPath() string {
	return l.globalPath
}

// GetLocalPath returns the path to the local configuration file for a directory
func (l *TOMLLoader) GetLocalPath(dir string) string {
	return filepath.Join(dir, l.localName)
}

func (l *TOMLLoader) loadOptional(path string) (*entities.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return l.loadConfig(path)
}

// loadConfig loads and validates a configuration file.
// Only keys present in the file are set; the merger fills the rest.
func (l *TOMLLoader) loadConfig(path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from controlled sources (global/local/--config)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var config entities.Config
	meta, err := toml.Decode(string(data), &config)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
	}

	keys := meta.Keys()
	defined := make([]string, 0, len(keys))
	for _, k := range keys {
		defined = append(defined, k.String())
	}
	config.MarkDefined(defined...)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return &config, nil
}

// ensureConfigDir ensures the configuration directory exists
func (l *TOMLLoader) ensureConfigDir(path string) error {
	dir := filepath.Dir(path)

	// 0750 = owner and group only
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	return nil
}

// Ensure TOMLLoader implements ports.ConfigLoader
var _ ports.ConfigLoader = (*TOMLLoader)(nil)
