package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// ConfigService implements the configuration service business logic
type ConfigService struct {
	loader ports.ConfigLoader
	merger ports.ConfigMerger
}

// NewConfigService creates a new configuration service
func NewConfigService(loader ports.ConfigLoader, merger ports.ConfigMerger) *ConfigService {
	return &ConfigService{
		loader: loader,
		merger: merger,
	}
}

// LoadConfig loads the complete configuration with hierarchy and overrides.
// An explicit path replaces the global and local lookups.
func (s *ConfigService) LoadConfig(ctx context.Context, workingDir, explicitPath string, flags map[string]interface{}) (*entities.Config, error) {
	configs := []*entities.Config{s.GetDefaultConfig()}

	if explicitPath != "" {
		fileConfig, err := s.loader.LoadFile(ctx, explicitPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", explicitPath, err)
		}
		configs = append(configs, fileConfig)
	} else {
		globalConfig, err := s.loader.LoadGlobal(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
		if globalConfig != nil {
			configs = append(configs, globalConfig)
		}

		localConfig, err := s.loader.LoadLocal(ctx, workingDir)
		if err != nil {
			return nil, fmt.Errorf("loading local config: %w", err)
		}
		if localConfig != nil {
			configs = append(configs, localConfig)
		}
	}

	// defaults → global → local, then env, then flags
	mergedConfig := s.merger.Merge(configs...)
	envConfig := s.merger.ApplyEnvVars(mergedConfig)
	finalConfig := s.merger.ApplyFlags(envConfig, flags)

	if err := s.ValidateConfig(finalConfig); err != nil {
		return nil, fmt.Errorf("final config validation: %w", err)
	}

	return finalConfig, nil
}

// GetDefaultConfig returns the default configuration
func (s *ConfigService) GetDefaultConfig() *entities.Config {
	// Merge with no arguments returns defaults
	return s.merger.Merge()
}

// ValidateConfig validates a configuration
func (s *ConfigService) ValidateConfig(config *entities.Config) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	return config.Validate()
}

// CreateGlobalConfig creates the global configuration file with defaults
func (s *ConfigService) CreateGlobalConfig(ctx context.Context) (string, error) {
	globalPath := s.loader.GetGlobalPath()
	if err := s.loader.CreateDefaults(ctx, globalPath); err != nil {
		return "", err
	}
	return globalPath, nil
}

// Ensure ConfigService implements ports.ConfigService
var _ ports.ConfigService = (*ConfigService)(nil)
