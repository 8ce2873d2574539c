package builders

import (
	"strconv"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// PresentationBuilder helps build Presentation entities for testing
type PresentationBuilder struct {
	presentation *entities.Presentation
}

// NewPresentationBuilder creates a new presentation builder with sensible defaults
func NewPresentationBuilder() *PresentationBuilder {
	return &PresentationBuilder{
		presentation: &entities.Presentation{
			Title:    "Test Presentation",
			Author:   "Test Author",
			Slides:   []entities.Slide{},
			Metadata: make(map[string]interface{}),
		},
	}
}

// WithTitle sets the presentation title
func (b *PresentationBuilder) WithTitle(title string) *PresentationBuilder {
	b.presentation.Title = title
	return b
}

// WithAuthor sets the presentation author
func (b *PresentationBuilder) WithAuthor(author string) *PresentationBuilder {
	b.presentation.Author = author
	return b
}

// WithSlide appends a slide, renumbering its index to its position
func (b *PresentationBuilder) WithSlide(slide entities.Slide) *PresentationBuilder {
	slide.Index = len(b.presentation.Slides)
	b.presentation.Slides = append(b.presentation.Slides, slide)
	return b
}

// WithSlideCount adds the specified number of single-column slides
func (b *PresentationBuilder) WithSlideCount(count int) *PresentationBuilder {
	for i := 0; i < count; i++ {
		n := len(b.presentation.Slides) + 1
		b.WithSlide(NewSlideBuilder().
			WithID(n).
			WithTitle("Slide " + strconv.Itoa(n)).
			Build())
	}
	return b
}

// WithMetadata sets a frontmatter field
func (b *PresentationBuilder) WithMetadata(key string, value interface{}) *PresentationBuilder {
	if b.presentation.Metadata == nil {
		b.presentation.Metadata = make(map[string]interface{})
	}
	b.presentation.Metadata[key] = value
	return b
}

// Build creates the final Presentation entity
func (b *PresentationBuilder) Build() *entities.Presentation {
	// Deep copy to prevent mutation
	return &entities.Presentation{
		Title:    b.presentation.Title,
		Author:   b.presentation.Author,
		Slides:   append([]entities.Slide{}, b.presentation.Slides...),
		Metadata: copyMetadata(b.presentation.Metadata),
	}
}

// SlideBuilder helps build Slide entities for testing
type SlideBuilder struct {
	slide *entities.Slide
}

// NewSlideBuilder creates a slide with one plain body and empty media lists
func NewSlideBuilder() *SlideBuilder {
	return &SlideBuilder{
		slide: &entities.Slide{
			ID:     "slide-1",
			Bodies: []entities.TextNode{Text("Test content\n")},
			Images: []entities.Media{},
			Videos: []entities.Media{},
			Tables: []entities.Table{},
		},
	}
}

// WithID sets the slide ID and its 0-based index
func (b *SlideBuilder) WithID(id int) *SlideBuilder {
	b.slide.ID = "slide-" + strconv.Itoa(id)
	b.slide.Index = id - 1
	return b
}

// WithTitle sets a bold title, as produced for a leading heading
func (b *SlideBuilder) WithTitle(title string) *SlideBuilder {
	node := NewTextBuilder().Bold(title).Build()
	b.slide.Title = &node
	return b
}

// WithSubtitle sets a bold subtitle
func (b *SlideBuilder) WithSubtitle(subtitle string) *SlideBuilder {
	node := NewTextBuilder().Bold(subtitle).Build()
	b.slide.Subtitle = &node
	return b
}

// WithBodies replaces the slide columns
func (b *SlideBuilder) WithBodies(bodies ...entities.TextNode) *SlideBuilder {
	b.slide.Bodies = bodies
	return b
}

// WithBackground sets the background image
func (b *SlideBuilder) WithBackground(url string) *SlideBuilder {
	b.slide.BackgroundImage = &entities.Media{URL: url}
	return b
}

// WithImage appends an inline image
func (b *SlideBuilder) WithImage(url string) *SlideBuilder {
	b.slide.Images = append(b.slide.Images, entities.Media{URL: url})
	return b
}

// WithVideo appends a video embed
func (b *SlideBuilder) WithVideo(provider, id string) *SlideBuilder {
	b.slide.Videos = append(b.slide.Videos, entities.Media{ID: id, Provider: provider})
	return b
}

// WithTable appends a table of the given size without cell text
func (b *SlideBuilder) WithTable(rows, columns int) *SlideBuilder {
	b.slide.Tables = append(b.slide.Tables, entities.Table{Rows: rows, Columns: columns})
	return b
}

// WithNotes sets plain speaker notes
func (b *SlideBuilder) WithNotes(notes string) *SlideBuilder {
	node := Text(notes)
	b.slide.Notes = &node
	return b
}

// Build creates the final Slide entity
func (b *SlideBuilder) Build() entities.Slide {
	slide := *b.slide
	slide.Bodies = append([]entities.TextNode{}, b.slide.Bodies...)
	slide.Images = append([]entities.Media{}, b.slide.Images...)
	slide.Videos = append([]entities.Media{}, b.slide.Videos...)
	slide.Tables = append([]entities.Table{}, b.slide.Tables...)
	return slide
}

// copyMetadata creates a shallow copy of a metadata map
func copyMetadata(original map[string]interface{}) map[string]interface{} {
	if original == nil {
		return nil
	}
	copy := make(map[string]interface{}, len(original))
	for k, v := range original {
		copy[k] = v
	}
	return copy
}

// Common presentation types for testing

// MinimalPresentation creates a minimal presentation for basic tests
func MinimalPresentation() *entities.Presentation {
	return NewPresentationBuilder().
		WithTitle("Minimal").
		WithSlideCount(1).
		Build()
}

// LargePresentation creates a presentation with many slides for performance tests
func LargePresentation() *entities.Presentation {
	return NewPresentationBuilder().
		WithTitle("Large Presentation").
		WithSlideCount(50).
		Build()
}

// MediaPresentation creates slides carrying every kind of media
func MediaPresentation() *entities.Presentation {
	return NewPresentationBuilder().
		WithTitle("Media").
		WithSlide(NewSlideBuilder().WithID(1).WithTitle("Intro").WithBackground("bg.png").WithNotes("remember\n").Build()).
		WithSlide(NewSlideBuilder().WithID(2).WithImage("a.png").WithVideo("youtube", "abc").WithTable(2, 2).Build()).
		Build()
}
