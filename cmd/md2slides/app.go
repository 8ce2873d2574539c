package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/md2slides/internal/adapters/secondary/config"
	"github.com/fredcamaral/md2slides/internal/adapters/secondary/parser"
	"github.com/fredcamaral/md2slides/internal/adapters/secondary/watcher"
	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
	"github.com/fredcamaral/md2slides/internal/domain/services"
)

// loadConfig resolves defaults, config files, environment and the given flag overrides
func loadConfig(ctx context.Context, cmd *cobra.Command, flags map[string]interface{}) (*entities.Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	if err := loadDotEnv(workingDir); err != nil {
		return nil, err
	}

	explicitPath, _ := cmd.Flags().GetString("config")

	if flags == nil {
		flags = make(map[string]interface{})
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		flags["verbose"] = true
	}

	configService := services.NewConfigService(config.NewTOMLLoader(), config.NewConfigMerger())
	cfg, err := configService.LoadConfig(ctx, workingDir, explicitPath, flags)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return cfg, nil
}

// loadDotEnv exports variables from dir/.env without overriding ones already set
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// newLogger builds the process logger from the logging configuration
func newLogger(cfg entities.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.GetLevel() {
	case entities.LogLevelDebug:
		level = slog.LevelDebug
	case entities.LogLevelWarn:
		level = slog.LevelWarn
	case entities.LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSONFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newExtractor builds the markdown extractor from the extraction configuration
func newExtractor(cfg *entities.Config, logger *slog.Logger) ports.SlideExtractor {
	return parser.NewExtractor(cfg.Extraction, parser.WithLogger(logger))
}

// newPresentationService wires the extractor and file watcher behind the domain service
func newPresentationService(cfg *entities.Config, logger *slog.Logger, extractor ports.SlideExtractor) *services.PresentationService {
	return services.NewPresentationService(ports.NewRealFileSystem(), extractor, newWatcher(cfg.Watcher, logger), logger)
}

// newWatcher returns the file watcher for the configured mode
func newWatcher(cfg entities.WatcherConfig, logger *slog.Logger) ports.FileWatcher {
	if cfg.GetMode() == entities.WatchModePoll {
		return watcher.NewPollingWatcher(cfg.GetInterval(), cfg.GetDebounce(), watcher.WithLogger(logger))
	}
	return watcher.NewNotifyWatcher(cfg.GetDebounce(), watcher.WithLogger(logger))
}

// setup loads configuration and installs the configured logger as the default
func setup(cmd *cobra.Command, flags map[string]interface{}) (*entities.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd.Context(), cmd, flags)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.Logging, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	return cfg, logger, nil
}
