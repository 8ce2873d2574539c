package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// extract runs the default extractor and checks every slide's offsets
func extract(t *testing.T, markdown string) []entities.Slide {
	t.Helper()
	slides, err := ExtractSlides(markdown)
	require.NoError(t, err)
	for i := range slides {
		require.NoError(t, slides[i].Validate(), "slide %d", i)
	}
	return slides
}

func TestExtractSlides_Scenarios(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		slides := extract(t, "# Title\n## Subtitle\n")

		require.Len(t, slides, 1)
		require.NotNil(t, slides[0].Title)
		require.NotNil(t, slides[0].Subtitle)
		assert.Equal(t, "Title", slides[0].Title.RawText)
		assert.Equal(t, "Subtitle", slides[0].Subtitle.RawText)
		assert.Empty(t, slides[0].Bodies)
	})

	t.Run("two columns", func(t *testing.T) {
		slides := extract(t, "# Title\nhello\n\n{.column}\n\nworld\n")

		require.Len(t, slides, 1)
		require.Len(t, slides[0].Bodies, 2)
		assert.Equal(t, "hello\n", slides[0].Bodies[0].RawText)
		assert.Equal(t, "world\n", slides[0].Bodies[1].RawText)
	})

	t.Run("mixed styles", func(t *testing.T) {
		slides := extract(t, "*italic*, **bold**, ~~strikethrough~~\n")

		require.Len(t, slides[0].Bodies, 1)
		body := slides[0].Bodies[0]
		assert.Equal(t, "italic, bold, strikethrough\n", body.RawText)
		assert.Equal(t, []entities.TextRun{
			{Start: 0, End: 6, Style: entities.Style{Italic: true}},
			{Start: 8, End: 12, Style: entities.Style{Bold: true}},
			{Start: 14, End: 27, Style: entities.Style{Strikethrough: true}},
		}, body.TextRuns)
	})

	t.Run("emoji", func(t *testing.T) {
		slides := extract(t, ":heart:\n")

		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "❤️\n", slides[0].Bodies[0].RawText)
	})

	t.Run("unordered list", func(t *testing.T) {
		slides := extract(t, "# Title\n* item 1\n* item 2\n")

		require.Len(t, slides[0].Bodies, 1)
		body := slides[0].Bodies[0]
		assert.Equal(t, "item 1\nitem 2\n", body.RawText)
		assert.Equal(t, []entities.ListMarker{
			{Start: 0, End: 14, Type: entities.ListUnordered},
		}, body.ListMarkers)
	})

	t.Run("notes", func(t *testing.T) {
		slides := extract(t, "# Title\n<!-- Hello **world** -->\n")

		require.NotNil(t, slides[0].Notes)
		assert.Equal(t, "Hello world\n", slides[0].Notes.RawText)
		assert.Equal(t, []entities.TextRun{
			{Start: 6, End: 11, Style: entities.Style{Bold: true}},
		}, slides[0].Notes.TextRuns)
		assert.Empty(t, slides[0].Bodies)
	})
}

func TestExtractSlides_Segmentation(t *testing.T) {
	for k := 0; k <= 4; k++ {
		t.Run(fmt.Sprintf("%d breaks", k), func(t *testing.T) {
			var sb strings.Builder
			for i := 0; i < k; i++ {
				fmt.Fprintf(&sb, "# Slide %d\n\n---\n\n", i)
			}
			fmt.Fprintf(&sb, "# Slide %d\n", k)

			slides := extract(t, sb.String())

			require.Len(t, slides, k+1)
			for i, slide := range slides {
				assert.Equal(t, i, slide.Index)
				require.NotNil(t, slide.Title)
				assert.Equal(t, fmt.Sprintf("Slide %d", i), slide.Title.RawText)
			}
		})
	}

	t.Run("empty segments are slides", func(t *testing.T) {
		slides := extract(t, "---\n\n---\n")

		require.Len(t, slides, 3)
		for _, slide := range slides {
			assert.Nil(t, slide.Title)
			assert.Empty(t, slide.Bodies)
			assert.Nil(t, slide.Notes)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		slides := extract(t, "")

		require.Len(t, slides, 1)
		assert.Empty(t, slides[0].Bodies)
	})

	t.Run("windows line endings", func(t *testing.T) {
		slides := extract(t, "# One\r\n\r\n---\r\n\r\n# Two\r\n")

		require.Len(t, slides, 2)
		assert.Equal(t, "One", slides[0].Title.RawText)
		assert.Equal(t, "Two", slides[1].Title.RawText)
	})
}

func TestExtractSlides_Headings(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		title    string
		subtitle string
		body     string
	}{
		{
			name:     "title and body",
			markdown: "# Title\n\nSome text\n",
			title:    "Title",
			body:     "Some text\n",
		},
		{
			name:     "subtitle without title",
			markdown: "## Only subtitle\n",
			subtitle: "Only subtitle",
		},
		{
			name:     "no heading",
			markdown: "just text\n",
			body:     "just text\n",
		},
		{
			name:     "lower headings stay in the body",
			markdown: "# Title\n### Section\n",
			title:    "Title",
			body:     "Section\n",
		},
		{
			name:     "styled title",
			markdown: "# Hello *there*\n",
			title:    "Hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := extract(t, tt.markdown)
			require.Len(t, slides, 1)
			slide := slides[0]

			if tt.title == "" {
				assert.Nil(t, slide.Title)
			} else {
				require.NotNil(t, slide.Title)
				assert.Equal(t, tt.title, slide.Title.RawText)
			}

			if tt.subtitle == "" {
				assert.Nil(t, slide.Subtitle)
			} else {
				require.NotNil(t, slide.Subtitle)
				assert.Equal(t, tt.subtitle, slide.Subtitle.RawText)
			}

			if tt.body == "" {
				assert.Empty(t, slide.Bodies)
			} else {
				require.Len(t, slide.Bodies, 1)
				assert.Equal(t, tt.body, slide.Bodies[0].RawText)
			}
		})
	}

	t.Run("body heading is bold", func(t *testing.T) {
		slides := extract(t, "# Title\n### Section\n")

		assert.Equal(t, []entities.TextRun{
			{Start: 0, End: 7, Style: entities.Style{Bold: true}},
		}, slides[0].Bodies[0].TextRuns)
	})

	t.Run("title runs start at zero", func(t *testing.T) {
		slides := extract(t, "# Hello *there*\n")

		assert.Equal(t, []entities.TextRun{
			{Start: 6, End: 11, Style: entities.Style{Italic: true}},
		}, slides[0].Title.TextRuns)
	})
}

func TestExtractSlides_Columns(t *testing.T) {
	t.Run("three columns", func(t *testing.T) {
		slides := extract(t, "a\n\n{.column}\n\nb\n\n{.column}\n\nc\n")

		require.Len(t, slides[0].Bodies, 3)
		assert.Equal(t, "a\n", slides[0].Bodies[0].RawText)
		assert.Equal(t, "b\n", slides[0].Bodies[1].RawText)
		assert.Equal(t, "c\n", slides[0].Bodies[2].RawText)
	})

	t.Run("empty column", func(t *testing.T) {
		slides := extract(t, "a\n\n{.column}\n\n{.column}\n\nc\n")

		require.Len(t, slides[0].Bodies, 3)
		assert.Equal(t, "", slides[0].Bodies[1].RawText)
		assert.Empty(t, slides[0].Bodies[1].TextRuns)
	})

	t.Run("each column starts at offset zero", func(t *testing.T) {
		slides := extract(t, "first\n\n{.column}\n\n**second**\n")

		require.Len(t, slides[0].Bodies, 2)
		assert.Equal(t, []entities.TextRun{
			{Start: 0, End: 6, Style: entities.Style{Bold: true}},
		}, slides[0].Bodies[1].TextRuns)
	})

	t.Run("marker inside a list is text", func(t *testing.T) {
		slides := extract(t, "* {.column}\n")

		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "{.column}\n", slides[0].Bodies[0].RawText)
	})
}

func TestExtractSlides_Media(t *testing.T) {
	t.Run("background image", func(t *testing.T) {
		slides := extract(t, "# Title\n\n![](bg.png){.background}\n")

		require.NotNil(t, slides[0].BackgroundImage)
		assert.Equal(t, "bg.png", slides[0].BackgroundImage.URL)
		assert.Empty(t, slides[0].Images)
		assert.Empty(t, slides[0].Bodies)
	})

	t.Run("last background wins", func(t *testing.T) {
		slides := extract(t, "![](one.png){.background}\n\n![](two.png){.background}\n")

		require.NotNil(t, slides[0].BackgroundImage)
		assert.Equal(t, "two.png", slides[0].BackgroundImage.URL)
	})

	t.Run("inline images contribute no text", func(t *testing.T) {
		slides := extract(t, "before ![alt](a.png) after\n\n![](b.png \"B\")\n")

		require.Len(t, slides[0].Images, 2)
		assert.Equal(t, entities.Media{URL: "a.png"}, slides[0].Images[0])
		assert.Equal(t, entities.Media{URL: "b.png", Title: "B"}, slides[0].Images[1])
		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "before  after\n", slides[0].Bodies[0].RawText)
	})

	t.Run("media-only paragraphs contribute no text", func(t *testing.T) {
		tests := []struct {
			name     string
			markdown string
			images   int
		}{
			{"images on one line", "![a](a.png) ![b](b.png)\n", 2},
			{"background then image on the next line", "![bg](a.png){.background}\n![b](b.png)\n", 1},
			{"video between images", "![a](a.png)\n@[youtube](abc)\n![b](b.png)\n", 2},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				slides := extract(t, tt.markdown)

				assert.Empty(t, slides[0].Bodies)
				assert.Len(t, slides[0].Images, tt.images)
			})
		}
	})

	t.Run("text after a media-only paragraph starts at offset zero", func(t *testing.T) {
		slides := extract(t, "![a](a.png) ![b](b.png)\n\n**after**\n")

		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "after\n", slides[0].Bodies[0].RawText)
		assert.Equal(t, []entities.TextRun{{Start: 0, End: 5, Style: entities.Style{Bold: true}}}, slides[0].Bodies[0].TextRuns)
	})

	t.Run("images across columns keep document order", func(t *testing.T) {
		slides := extract(t, "![](1.png)\n\n{.column}\n\n![](2.png)\n")

		require.Len(t, slides[0].Images, 2)
		assert.Equal(t, "1.png", slides[0].Images[0].URL)
		assert.Equal(t, "2.png", slides[0].Images[1].URL)
	})

	t.Run("video embed", func(t *testing.T) {
		slides := extract(t, "# Demo\n\n@[youtube](abc123)\n")

		require.Len(t, slides[0].Videos, 1)
		assert.Equal(t, entities.Media{ID: "abc123", Provider: "youtube"}, slides[0].Videos[0])
		assert.True(t, slides[0].Videos[0].IsVideo())
		assert.Empty(t, slides[0].Bodies)
	})

	t.Run("provider names are case-insensitive", func(t *testing.T) {
		slides := extract(t, "watch @[YouTube](xyz)\n")

		require.Len(t, slides[0].Videos, 1)
		assert.Equal(t, "youtube", slides[0].Videos[0].Provider)
		assert.Equal(t, "watch \n", slides[0].Bodies[0].RawText)
	})

	t.Run("unknown provider stays as text", func(t *testing.T) {
		slides := extract(t, "@[dailymotion](x1)\n")

		assert.Empty(t, slides[0].Videos)
		require.Len(t, slides[0].Bodies, 1)
		body := slides[0].Bodies[0]
		assert.Equal(t, "@dailymotion\n", body.RawText)
		assert.Equal(t, []entities.TextRun{
			{Start: 1, End: 12, Style: entities.Style{Link: "x1"}},
		}, body.TextRuns)
	})

	t.Run("escaped marker is literal", func(t *testing.T) {
		slides := extract(t, "x\\@[youtube](abc)\n")

		assert.Empty(t, slides[0].Videos)
		require.Len(t, slides[0].Bodies, 1)
		body := slides[0].Bodies[0]
		assert.Equal(t, "x@youtube\n", body.RawText)
		assert.Equal(t, []entities.TextRun{
			{Start: 2, End: 9, Style: entities.Style{Link: "abc"}},
		}, body.TextRuns)
	})

	t.Run("escaped backslash before marker", func(t *testing.T) {
		slides := extract(t, "x\\\\@[youtube](abc)\n")

		require.Len(t, slides[0].Videos, 1)
		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "x\\\n", slides[0].Bodies[0].RawText)
	})
}

func TestEndsWithEmbedMarker(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"@", true},
		{"watch @", true},
		{`\@`, false},
		{`\\@`, true},
		{`\\\@`, false},
		{"no marker", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, endsWithEmbedMarker([]byte(tt.text)))
		})
	}
}

func TestExtractSlides_Tables(t *testing.T) {
	markdown := "# Data\n\n| a | b |\n|---|---|\n| 1 | 2 |\n| 3 |\n\n| x |\n|---|\n| y |\n"

	slides := extract(t, markdown)

	require.Len(t, slides[0].Tables, 2)
	first := slides[0].Tables[0]
	assert.Equal(t, 3, first.Rows)
	assert.Equal(t, 2, first.Columns)
	require.Len(t, first.Cells, 3)
	assert.Equal(t, "a", first.Cells[0][0].RawText)
	assert.Equal(t, "2", first.Cells[1][1].RawText)

	second := slides[0].Tables[1]
	assert.Equal(t, 2, second.Rows)
	assert.Equal(t, 1, second.Columns)

	assert.Empty(t, slides[0].Bodies)
}

func TestExtractSlides_Lists(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		text     string
		markers  []entities.ListMarker
	}{
		{
			name:     "ordered list",
			markdown: "1. one\n2. two\n",
			text:     "one\ntwo\n",
			markers:  []entities.ListMarker{{Start: 0, End: 8, Type: entities.ListOrdered}},
		},
		{
			name:     "nested items indent with tabs",
			markdown: "* a\n  * b\n* c\n",
			text:     "a\n\tb\nc\n",
			markers:  []entities.ListMarker{{Start: 0, End: 7, Type: entities.ListUnordered}},
		},
		{
			name:     "type change starts a new marker",
			markdown: "1. one\n2. two\n\n* x\n",
			text:     "one\ntwo\nx\n",
			markers: []entities.ListMarker{
				{Start: 0, End: 8, Type: entities.ListOrdered},
				{Start: 8, End: 10, Type: entities.ListUnordered},
			},
		},
		{
			name:     "paragraph between lists",
			markdown: "* a\n\nmiddle\n\n* b\n",
			text:     "a\nmiddle\nb\n",
			markers: []entities.ListMarker{
				{Start: 0, End: 2, Type: entities.ListUnordered},
				{Start: 9, End: 11, Type: entities.ListUnordered},
			},
		},
		{
			name:     "list after text",
			markdown: "intro\n\n* a\n* b\n",
			text:     "intro\na\nb\n",
			markers:  []entities.ListMarker{{Start: 6, End: 10, Type: entities.ListUnordered}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := extract(t, tt.markdown)

			require.Len(t, slides[0].Bodies, 1)
			assert.Equal(t, tt.text, slides[0].Bodies[0].RawText)
			assert.Equal(t, tt.markers, slides[0].Bodies[0].ListMarkers)
		})
	}

	t.Run("task items", func(t *testing.T) {
		slides := extract(t, "- [x] done\n- [ ] todo\n")

		body := slides[0].Bodies[0].RawText
		assert.Contains(t, body, "☑")
		assert.Contains(t, body, "☐")
		assert.Contains(t, body, "done")
	})
}

func TestExtractSlides_Notes(t *testing.T) {
	t.Run("first comment wins", func(t *testing.T) {
		slides := extract(t, "# Title\n\n<!-- first -->\n\n<!-- second -->\n")

		require.NotNil(t, slides[0].Notes)
		assert.Equal(t, "first\n", slides[0].Notes.RawText)
		assert.True(t, slides[0].HasNotes())
	})

	t.Run("notes after body content", func(t *testing.T) {
		slides := extract(t, "# Title\n\nbody\n\n<!--\nSay *this*\n-->\n")

		require.Len(t, slides[0].Bodies, 1)
		assert.Equal(t, "body\n", slides[0].Bodies[0].RawText)
		require.NotNil(t, slides[0].Notes)
		assert.Equal(t, "Say this\n", slides[0].Notes.RawText)
		assert.Equal(t, []entities.TextRun{
			{Start: 4, End: 8, Style: entities.Style{Italic: true}},
		}, slides[0].Notes.TextRuns)
	})

	t.Run("notes belong to their slide", func(t *testing.T) {
		slides := extract(t, "# One\n\n<!-- a -->\n\n---\n\n# Two\n")

		require.Len(t, slides, 2)
		assert.NotNil(t, slides[0].Notes)
		assert.Nil(t, slides[1].Notes)
	})

	t.Run("empty comment", func(t *testing.T) {
		slides := extract(t, "# Title\n\n<!-- -->\n")

		assert.Nil(t, slides[0].Notes)
	})

	t.Run("empty comments are skipped", func(t *testing.T) {
		tests := []struct {
			name     string
			markdown string
		}{
			{"empty before content", "# Title\n\n<!-- -->\n\n<!-- real -->\n"},
			{"blank lines only", "# Title\n\n<!--\n\n-->\n\n<!-- real -->\n"},
			{"inline empty comment", "# Title\n\nsay <!-- --> hi\n\n<!-- real -->\n"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				slides := extract(t, tt.markdown)

				require.NotNil(t, slides[0].Notes)
				assert.Equal(t, "real\n", slides[0].Notes.RawText)
			})
		}
	})
}

func TestExtractSlides_Emoji(t *testing.T) {
	t.Run("offsets follow substitution", func(t *testing.T) {
		slides := extract(t, ":grinning: **a**\n")

		body := slides[0].Bodies[0]
		assert.Equal(t, "😀 a\n", body.RawText)
		// the glyph is a surrogate pair
		assert.Equal(t, []entities.TextRun{
			{Start: 3, End: 4, Style: entities.Style{Bold: true}},
		}, body.TextRuns)
	})

	t.Run("emoji inside bold", func(t *testing.T) {
		slides := extract(t, "**:heart: love**\n")

		assert.Equal(t, []entities.TextRun{
			{Start: 0, End: 7, Style: entities.Style{Bold: true}},
		}, slides[0].Bodies[0].TextRuns)
	})

	t.Run("unknown shortcode", func(t *testing.T) {
		slides := extract(t, ":notanemoji:\n")

		assert.Equal(t, ":notanemoji:\n", slides[0].Bodies[0].RawText)
	})
}

func TestExtractor_Extract(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document", func(t *testing.T) {
		_, err := NewExtractor(entities.DefaultExtractionConfig()).Extract(ctx, nil)

		assert.ErrorIs(t, err, entities.ErrNilDocument)
		assert.True(t, entities.IsInputError(err))
	})

	t.Run("invalid encoding", func(t *testing.T) {
		_, err := NewExtractor(entities.DefaultExtractionConfig()).Extract(ctx, []byte{'#', ' ', 0xff, 0xfe})

		assert.ErrorIs(t, err, entities.ErrInvalidEncoding)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewExtractor(entities.DefaultExtractionConfig()).Extract(cancelled, []byte("# a\n"))

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("deterministic ids", func(t *testing.T) {
		extractor := NewExtractor(entities.DefaultExtractionConfig())
		content := []byte("# One\n\n---\n\n# Two\n")

		first, err := extractor.Extract(ctx, content)
		require.NoError(t, err)
		second, err := extractor.Extract(ctx, content)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEmpty(t, first.Slides[0].ID)
		assert.NotEqual(t, first.Slides[0].ID, first.Slides[1].ID)

		other, err := extractor.Extract(ctx, []byte("# Other\n"))
		require.NoError(t, err)
		assert.NotEqual(t, first.Slides[0].ID, other.Slides[0].ID)
	})

	t.Run("frontmatter", func(t *testing.T) {
		cfg := entities.DefaultExtractionConfig()
		cfg.Frontmatter = true
		content := []byte("---\ntitle: Deck\nauthor: Ann\ntags: [a, b]\n---\n# First\n")

		presentation, err := NewExtractor(cfg).Extract(ctx, content)

		require.NoError(t, err)
		assert.Equal(t, "Deck", presentation.Title)
		assert.Equal(t, "Ann", presentation.Author)
		assert.Equal(t, []interface{}{"a", "b"}, presentation.Metadata["tags"])
		require.Len(t, presentation.Slides, 1)
		assert.Equal(t, "First", presentation.Slides[0].Title.RawText)
	})

	t.Run("typographer", func(t *testing.T) {
		cfg := entities.DefaultExtractionConfig()
		cfg.Typographer = true

		presentation, err := NewExtractor(cfg).Extract(ctx, []byte("\"quoted\" -- dash\n"))

		require.NoError(t, err)
		body := presentation.Slides[0].Bodies[0].RawText
		assert.Contains(t, body, "“quoted”")
		assert.Contains(t, body, "–")
	})

	t.Run("emoji disabled", func(t *testing.T) {
		cfg := entities.DefaultExtractionConfig()
		cfg.Emoji = false

		presentation, err := NewExtractor(cfg).Extract(ctx, []byte(":heart:\n"))

		require.NoError(t, err)
		assert.Equal(t, ":heart:\n", presentation.Slides[0].Bodies[0].RawText)
	})

	t.Run("custom markers", func(t *testing.T) {
		cfg := entities.DefaultExtractionConfig()
		cfg.ColumnMarker = "|||"
		cfg.BackgroundClass = "bg"

		presentation, err := NewExtractor(cfg).Extract(ctx, []byte("![](x.png){.bg}\n\nleft\n\n|||\n\nright\n"))

		require.NoError(t, err)
		slide := presentation.Slides[0]
		require.NotNil(t, slide.BackgroundImage)
		assert.Equal(t, "x.png", slide.BackgroundImage.URL)
		require.Len(t, slide.Bodies, 2)
		assert.Equal(t, "right\n", slide.Bodies[1].RawText)
	})
}

func TestExtractSlides_Concurrent(t *testing.T) {
	markdown := "# Title\n\n*a* **b** <sup>c</sup>\n\n* x\n* y\n"
	want := extract(t, markdown)

	done := make(chan []entities.Slide, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			slides, err := ExtractSlides(markdown)
			if err != nil {
				done <- nil
				return
			}
			done <- slides
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, want, <-done)
	}
}

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantMeta  map[string]interface{}
		remaining string
	}{
		{
			name:      "mapping",
			content:   "---\ntitle: Test\nnumber: 42\n---\n# Content",
			wantMeta:  map[string]interface{}{"title": "Test", "number": 42},
			remaining: "# Content",
		},
		{
			name:      "no frontmatter",
			content:   "# Content",
			remaining: "# Content",
		},
		{
			name:      "unclosed",
			content:   "---\ntitle: Test\n# Content",
			remaining: "---\ntitle: Test\n# Content",
		},
		{
			name:      "empty block",
			content:   "---\n---\n# Content",
			wantMeta:  map[string]interface{}{},
			remaining: "# Content",
		},
		{
			name:      "not a mapping",
			content:   "---\njust text\n---\n",
			remaining: "---\njust text\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, remaining := extractFrontmatter([]byte(tt.content))

			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.remaining, string(remaining))
		})
	}
}
