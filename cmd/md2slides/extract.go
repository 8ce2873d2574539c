package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

var (
	// Extract command flags
	outputPath  string
	prettyJSON  bool
	watchFile   bool
	watchMode   string
	frontmatter bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract slides from a markdown file as JSON",
	Long: `Parse a markdown file and print its slides as JSON.
Use "-" or omit the file to read from standard input.

Example:
  md2slides extract deck.md
  md2slides extract deck.md -o deck.json --pretty
  md2slides extract deck.md -o deck.json --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write JSON to this file instead of stdout")
	extractCmd.Flags().BoolVar(&prettyJSON, "pretty", false, "Indent the JSON output (overrides config)")
	extractCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "Re-extract whenever the file changes")
	extractCmd.Flags().StringVar(&watchMode, "watch-mode", "", "How --watch detects changes: notify or poll (overrides config)")
	extractCmd.Flags().BoolVar(&frontmatter, "frontmatter", false, "Read a leading YAML frontmatter block (overrides config)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	if watchFile && path == "-" {
		return fmt.Errorf("--watch needs a file argument")
	}

	cfg, logger, err := setup(cmd, map[string]interface{}{
		"pretty":      prettyJSON,
		"frontmatter": frontmatter,
		"watch-mode":  watchMode,
	})
	if err != nil {
		return err
	}

	svc := newPresentationService(cfg, logger, newExtractor(cfg, logger))
	ctx := cmd.Context()

	var presentation *entities.Presentation
	if path == "-" {
		presentation, err = svc.LoadPresentationFromReader(ctx, cmd.InOrStdin())
	} else {
		presentation, err = svc.LoadPresentation(ctx, path)
	}
	if err != nil {
		return err
	}

	out := &output{
		fs:     ports.NewRealFileSystem(),
		stdout: cmd.OutOrStdout(),
		path:   outputPath,
		pretty: cfg.Output.Pretty,
	}
	if err := out.write(presentation); err != nil {
		return err
	}

	if !watchFile {
		return nil
	}
	return watchAndEmit(ctx, svc, path, out, logger)
}

// watchAndEmit rewrites the output after every successful re-extraction until ctx is done
func watchAndEmit(ctx context.Context, svc ports.PresentationService, path string, out *output, logger *slog.Logger) error {
	updates, err := svc.WatchPresentation(ctx, path)
	if err != nil {
		return err
	}

	logger.Info("watching for changes", slog.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Err != nil {
				// Already logged by the service; keep the last good output
				continue
			}
			if err := out.write(update.Presentation); err != nil {
				logger.Error("writing output failed", slog.String("error", err.Error()))
				continue
			}
			logger.Info("slides updated",
				slog.String("path", path),
				slog.String("change", string(update.Event.Type)),
				slog.Int("slides", update.Presentation.SlideCount()),
			)
		}
	}
}

// output is where extracted presentations are written
type output struct {
	fs     ports.FileSystem
	stdout io.Writer
	path   string // stdout when empty
	pretty bool
}

// write encodes the presentation as JSON to the output file or stdout
func (o *output) write(presentation *entities.Presentation) error {
	data, err := encodePresentation(presentation, o.pretty)
	if err != nil {
		return err
	}

	if o.path == "" {
		_, err := o.stdout.Write(data)
		return err
	}

	if err := o.fs.WriteFile(o.path, data, 0o644); err != nil { // #nosec G306 - output is meant to be shared
		return fmt.Errorf("writing %s: %w", o.path, err)
	}
	return nil
}

// encodePresentation renders the presentation as newline-terminated JSON
func encodePresentation(presentation *entities.Presentation, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(presentation, "", "  ")
	} else {
		data, err = json.Marshal(presentation)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding slides: %w", err)
	}
	return append(data, '\n'), nil
}
