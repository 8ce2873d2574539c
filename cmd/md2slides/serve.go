package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/fredcamaral/md2slides/internal/adapters/primary/http"
	"github.com/fredcamaral/md2slides/internal/adapters/secondary/cache"
	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

var (
	// Serve command flags
	port int
	host string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve slide extraction over HTTP",
	Long: `Start an HTTP server that extracts slides from markdown.

  POST /api/slides   markdown body (or JSON {"markdown": "..."}) -> slides JSON
  GET  /health       liveness check
  GET  /metrics      Prometheus metrics (unless server.metrics = false)

Send SIGHUP to drop cached extraction results.

Example:
  md2slides serve
  md2slides serve --host 0.0.0.0 --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Defaults come from config loading
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to serve on (overrides config)")
	serveCmd.Flags().StringVar(&host, "host", "", "Host to bind to (overrides config)")
}

// validateServeConfig checks what serve needs beyond Config.Validate
func validateServeConfig(config *entities.Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", config.Server.Port)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, map[string]interface{}{
		"port": port,
		"host": host,
	})
	if err != nil {
		return err
	}
	if err := validateServeConfig(cfg); err != nil {
		return err
	}

	ctx := cmd.Context()
	server, extractionCache := newServer(cfg, logger)
	if extractionCache != nil {
		flushOnHangup(ctx, extractionCache, logger)
	}
	if err := server.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info("shutting down server", slog.String("address", cfg.Server.Address()))

	// ctx is already cancelled; Stop applies its own shutdown timeout
	return server.Stop(context.WithoutCancel(ctx))
}

// newServer builds the HTTP server. Extraction results are cached for the
// configured TTL; the cache is nil when caching is disabled.
func newServer(cfg *entities.Config, logger *slog.Logger) (*httpadapter.Server, ports.ExtractionCache) {
	extractor := newExtractor(cfg, logger)

	var extractionCache ports.ExtractionCache
	if ttl := cfg.Server.GetCacheTTL(); ttl > 0 {
		extractionCache = cache.NewExtractor(extractor, ttl, logger)
		extractor = extractionCache
	}

	server := httpadapter.NewServer(newPresentationService(cfg, logger, extractor), cfg.Server, logger)
	if extractionCache != nil {
		server.ObserveCache(extractionCache)
	}
	return server, extractionCache
}

// flushOnHangup drops the cache on every SIGHUP until ctx is done
func flushOnHangup(ctx context.Context, extractionCache ports.ExtractionCache, logger *slog.Logger) {
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)

	go func() {
		defer signal.Stop(hangup)
		for {
			select {
			case <-ctx.Done():
				return
			case <-hangup:
				stats := extractionCache.Stats()
				extractionCache.Flush()
				logger.Info("extraction cache flushed",
					slog.Int("entries", stats.Entries),
					slog.Uint64("hits", stats.Hits),
					slog.Uint64("misses", stats.Misses),
				)
			}
		}
	}()
}
