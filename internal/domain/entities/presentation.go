package entities

import (
	"fmt"
)

// Presentation is the result of extracting a whole document
type Presentation struct {
	// Title is lifted from the frontmatter, if present
	Title string `json:"title,omitempty"`

	// Author is lifted from the frontmatter, if present
	Author string `json:"author,omitempty"`

	// Metadata contains all frontmatter fields
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// Slides contains all slides in document order
	Slides []Slide `json:"slides"`
}

// Validate checks every slide of the presentation
func (p *Presentation) Validate() error {
	for i := range p.Slides {
		if err := p.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
	}
	return nil
}

// GetSlideByIndex returns a slide by its index (0-based)
func (p *Presentation) GetSlideByIndex(index int) (*Slide, error) {
	if index < 0 || index >= len(p.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(p.Slides)-1)
	}
	return &p.Slides[index], nil
}

// SlideCount returns the total number of slides
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}
