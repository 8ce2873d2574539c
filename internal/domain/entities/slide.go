package entities

import (
	"errors"
	"fmt"
	"unicode/utf16"
)

var (
	// ErrInvalidTextRun is returned when a text run violates offset or ordering rules
	ErrInvalidTextRun = errors.New("invalid text run")

	// ErrInvalidListMarker is returned when a list marker falls outside its text
	ErrInvalidListMarker = errors.New("invalid list marker")
)

// Slide represents a single slide extracted from a markdown document
type Slide struct {
	// ID is a deterministic object identifier for the slide
	ID string `json:"id"`

	// Index is the slide position in the document (0-based)
	Index int `json:"index"`

	// Title comes from the leading level-1 heading
	Title *TextNode `json:"title,omitempty"`

	// Subtitle comes from the level-2 heading following the title
	Subtitle *TextNode `json:"subtitle,omitempty"`

	// Bodies holds one entry per column
	Bodies []TextNode `json:"bodies"`

	// BackgroundImage is the image marked with the background class, if any
	BackgroundImage *Media `json:"backgroundImage,omitempty"`

	Images []Media `json:"images"`
	Videos []Media `json:"videos"`
	Tables []Table `json:"tables"`

	// Notes contains speaker notes for this slide
	Notes *TextNode `json:"notes,omitempty"`
}

// Validate checks every text node of the slide for offset consistency
func (s *Slide) Validate() error {
	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}

	check := func(name string, n *TextNode) error {
		if n == nil {
			return nil
		}
		if err := n.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}

	if err := check("title", s.Title); err != nil {
		return err
	}
	if err := check("subtitle", s.Subtitle); err != nil {
		return err
	}
	for i := range s.Bodies {
		if err := check(fmt.Sprintf("body %d", i), &s.Bodies[i]); err != nil {
			return err
		}
	}
	for i, table := range s.Tables {
		for r, row := range table.Cells {
			for c := range row {
				if err := check(fmt.Sprintf("table %d cell %d,%d", i, r, c), &row[c]); err != nil {
					return err
				}
			}
		}
	}
	return check("notes", s.Notes)
}

// HasNotes returns true if the slide has speaker notes
func (s *Slide) HasNotes() bool {
	return s.Notes != nil && s.Notes.RawText != ""
}

// TextNode is flattened text with its style runs and list markers.
// Offsets are expressed in UTF-16 code units.
type TextNode struct {
	RawText     string       `json:"rawText"`
	TextRuns    []TextRun    `json:"textRuns"`
	ListMarkers []ListMarker `json:"listMarkers,omitempty"`
}

// Length returns the length of RawText in UTF-16 code units
func (n *TextNode) Length() int {
	return UTF16Len(n.RawText)
}

// Validate ensures runs and markers are within bounds, sorted, disjoint and maximal
func (n *TextNode) Validate() error {
	length := n.Length()

	for i, run := range n.TextRuns {
		if run.Start < 0 || run.Start >= run.End || run.End > length {
			return fmt.Errorf("%w: run %d [%d,%d) outside text of length %d", ErrInvalidTextRun, i, run.Start, run.End, length)
		}
		if run.Style.IsZero() {
			return fmt.Errorf("%w: run %d has no style", ErrInvalidTextRun, i)
		}
		if i == 0 {
			continue
		}
		prev := n.TextRuns[i-1]
		if run.Start < prev.End {
			return fmt.Errorf("%w: run %d overlaps run %d", ErrInvalidTextRun, i, i-1)
		}
		if run.Start == prev.End && run.Style == prev.Style {
			return fmt.Errorf("%w: run %d should be merged with run %d", ErrInvalidTextRun, i, i-1)
		}
	}

	for i, marker := range n.ListMarkers {
		if marker.Start < 0 || marker.Start >= marker.End || marker.End > length {
			return fmt.Errorf("%w: marker %d [%d,%d) outside text of length %d", ErrInvalidListMarker, i, marker.Start, marker.End, length)
		}
		if i > 0 && marker.Start < n.ListMarkers[i-1].End {
			return fmt.Errorf("%w: marker %d overlaps marker %d", ErrInvalidListMarker, i, i-1)
		}
	}

	return nil
}

// TextRun is a half-open range of text sharing one style
type TextRun struct {
	Start int   `json:"start"`
	End   int   `json:"end"`
	Style Style `json:"style"`
}

// ListType distinguishes ordered from unordered lists
type ListType string

const (
	ListOrdered   ListType = "ordered"
	ListUnordered ListType = "unordered"
)

// ListMarker spans a contiguous block of same-type list items
type ListMarker struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Type  ListType `json:"type"`
}

// Table describes a table's dimensions and cell contents
type Table struct {
	// Rows includes the header row
	Rows int `json:"rows"`

	// Columns is the header row's cell count
	Columns int `json:"columns"`

	// Cells holds the flattened text of every cell, header row first
	Cells [][]TextNode `json:"cells,omitempty"`
}

// Media is an image (URL) or a video (ID and Provider)
type Media struct {
	URL      string `json:"url,omitempty"`
	Title    string `json:"title,omitempty"`
	ID       string `json:"id,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// IsVideo returns true if the media references a video provider
func (m Media) IsVideo() bool {
	return m.Provider != ""
}

// UTF16Len returns the number of UTF-16 code units needed to encode s
func UTF16Len(s string) int {
	n := 0
	var buf [2]uint16
	for _, r := range s {
		n += len(utf16.AppendRune(buf[:0], r))
	}
	return n
}
