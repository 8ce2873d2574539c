package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "md2slides",
	Short: "Extract presentation slides from markdown",
	Long: `md2slides turns a markdown document into structured slide content:
titles, styled text runs with UTF-16 offsets, list markers, tables,
images, videos and speaker notes, ready for a slides API.

Slides are separated by horizontal rules (---).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ./md2slides.toml, then ~/.config/md2slides/config.toml)")
}
