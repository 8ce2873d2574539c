package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// maxTitleWidth truncates long titles in the summary table
const maxTitleWidth = 40

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize the slides of a markdown file as a table",
	Long: `Parse a markdown file and print one table row per slide with its
title and counts of columns, lists, images, videos and tables.
Use "-" or omit the file to read from standard input.

Example:
  md2slides inspect deck.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, nil)
	if err != nil {
		return err
	}

	svc := newPresentationService(cfg, logger, newExtractor(cfg, logger))
	ctx := cmd.Context()

	var presentation *entities.Presentation
	if len(args) == 0 || args[0] == "-" {
		presentation, err = svc.LoadPresentationFromReader(ctx, cmd.InOrStdin())
	} else {
		presentation, err = svc.LoadPresentation(ctx, args[0])
	}
	if err != nil {
		return err
	}

	renderSummary(cmd.OutOrStdout(), presentation)
	return nil
}

// renderSummary writes a per-slide summary table to w
func renderSummary(w io.Writer, presentation *entities.Presentation) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if presentation.Title != "" {
		t.SetTitle(presentation.Title)
	}

	t.AppendHeader(table.Row{"#", "Title", "Columns", "Lists", "Images", "Videos", "Tables", "Background", "Notes"})

	var images, videos, tables int
	for _, slide := range presentation.Slides {
		lists := 0
		for _, body := range slide.Bodies {
			lists += len(body.ListMarkers)
		}
		images += len(slide.Images)
		videos += len(slide.Videos)
		tables += len(slide.Tables)

		t.AppendRow(table.Row{
			slide.Index + 1,
			slideTitle(slide),
			len(slide.Bodies),
			lists,
			len(slide.Images),
			len(slide.Videos),
			len(slide.Tables),
			yesNo(slide.BackgroundImage != nil),
			yesNo(slide.HasNotes()),
		})
	}

	t.AppendFooter(table.Row{"", strconv.Itoa(len(presentation.Slides)) + " slides", "", "", images, videos, tables, "", ""})
	t.Render()
}

// slideTitle returns the title, falling back to the subtitle, on one line
func slideTitle(slide entities.Slide) string {
	var title string
	switch {
	case slide.Title != nil:
		title = slide.Title.RawText
	case slide.Subtitle != nil:
		title = slide.Subtitle.RawText
	default:
		return "-"
	}
	title = strings.Join(strings.Fields(title), " ")
	return text.Trim(title, maxTitleWidth)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
