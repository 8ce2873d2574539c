package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

func TestPresentationBuilder(t *testing.T) {
	t.Run("builds presentation with defaults", func(t *testing.T) {
		presentation := NewPresentationBuilder().Build()

		assert.Equal(t, "Test Presentation", presentation.Title)
		assert.Equal(t, "Test Author", presentation.Author)
		assert.Empty(t, presentation.Slides)
		assert.NotNil(t, presentation.Metadata)
	})

	t.Run("builds presentation with custom values", func(t *testing.T) {
		presentation := NewPresentationBuilder().
			WithTitle("Custom Title").
			WithAuthor("Custom Author").
			WithSlideCount(3).
			WithMetadata("category", "technical").
			Build()

		assert.Equal(t, "Custom Title", presentation.Title)
		assert.Equal(t, "Custom Author", presentation.Author)
		assert.Equal(t, "technical", presentation.Metadata["category"])
		require.Len(t, presentation.Slides, 3)
		for i, slide := range presentation.Slides {
			assert.Equal(t, i, slide.Index)
		}
		assert.Equal(t, "Slide 3", presentation.Slides[2].Title.RawText)
		assert.NoError(t, presentation.Validate())
	})

	t.Run("build copies state", func(t *testing.T) {
		builder := NewPresentationBuilder().WithMetadata("k", "v")
		first := builder.Build()
		first.Metadata["k"] = "changed"

		assert.Equal(t, "v", builder.Build().Metadata["k"])
	})

	t.Run("presentation helpers", func(t *testing.T) {
		assert.Len(t, MinimalPresentation().Slides, 1)
		assert.Len(t, LargePresentation().Slides, 50)

		media := MediaPresentation()
		require.Len(t, media.Slides, 2)
		assert.True(t, media.Slides[0].HasNotes())
		assert.Equal(t, "bg.png", media.Slides[0].BackgroundImage.URL)
		assert.Len(t, media.Slides[1].Videos, 1)
		assert.NoError(t, media.Validate())
	})
}

func TestSlideBuilder(t *testing.T) {
	slide := NewSlideBuilder().
		WithID(4).
		WithTitle("Title").
		WithSubtitle("Sub").
		WithBodies(Text("left\n"), Text("right\n")).
		WithImage("a.png").
		WithTable(3, 2).
		Build()

	assert.Equal(t, "slide-4", slide.ID)
	assert.Equal(t, 3, slide.Index)
	assert.Equal(t, []entities.TextRun{{Start: 0, End: 5, Style: entities.Style{Bold: true}}}, slide.Title.TextRuns)
	assert.Equal(t, "Sub", slide.Subtitle.RawText)
	assert.Len(t, slide.Bodies, 2)
	assert.Equal(t, []entities.Media{{URL: "a.png"}}, slide.Images)
	assert.Equal(t, []entities.Table{{Rows: 3, Columns: 2}}, slide.Tables)
	assert.NoError(t, slide.Validate())
}

func TestTextBuilder(t *testing.T) {
	tests := []struct {
		name    string
		build   func(b *TextBuilder) *TextBuilder
		text    string
		runs    []entities.TextRun
		markers []entities.ListMarker
	}{
		{
			name:  "plain text has no runs",
			build: func(b *TextBuilder) *TextBuilder { return b.Plain("hello") },
			text:  "hello",
			runs:  []entities.TextRun{},
		},
		{
			name:  "styled segments",
			build: func(b *TextBuilder) *TextBuilder { return b.Plain("a ").Bold("b").Plain(" ").Italic("c") },
			text:  "a b c",
			runs: []entities.TextRun{
				{Start: 2, End: 3, Style: entities.Style{Bold: true}},
				{Start: 4, End: 5, Style: entities.Style{Italic: true}},
			},
		},
		{
			name:  "touching equal styles merge",
			build: func(b *TextBuilder) *TextBuilder { return b.Bold("a").Bold("b") },
			text:  "ab",
			runs:  []entities.TextRun{{Start: 0, End: 2, Style: entities.Style{Bold: true}}},
		},
		{
			name:  "offsets count utf-16 units",
			build: func(b *TextBuilder) *TextBuilder { return b.Plain("😀").Bold("x") },
			text:  "😀x",
			runs:  []entities.TextRun{{Start: 2, End: 3, Style: entities.Style{Bold: true}}},
		},
		{
			name:  "list items share one marker",
			build: func(b *TextBuilder) *TextBuilder { return b.Plain("intro\n").List(entities.ListOrdered, "one", "two") },
			text:  "intro\none\ntwo\n",
			runs:  []entities.TextRun{},
			markers: []entities.ListMarker{
				{Start: 6, End: 14, Type: entities.ListOrdered},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := tt.build(NewTextBuilder()).Build()

			assert.Equal(t, tt.text, node.RawText)
			assert.Equal(t, tt.runs, node.TextRuns)
			assert.Equal(t, tt.markers, node.ListMarkers)
			assert.NoError(t, node.Validate())
		})
	}
}
