package builders

import (
	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// TextBuilder appends styled segments to a TextNode, tracking UTF-16 offsets
type TextBuilder struct {
	node entities.TextNode
}

// NewTextBuilder starts an empty text node
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{node: entities.TextNode{TextRuns: []entities.TextRun{}}}
}

// Plain appends unstyled text
func (b *TextBuilder) Plain(s string) *TextBuilder {
	b.node.RawText += s
	return b
}

// Styled appends s covered by a single run of style
func (b *TextBuilder) Styled(s string, style entities.Style) *TextBuilder {
	start := b.node.Length()
	b.node.RawText += s
	if s == "" || style.IsZero() {
		return b
	}
	// touching runs of equal style are kept as one
	if n := len(b.node.TextRuns); n > 0 && b.node.TextRuns[n-1].End == start && b.node.TextRuns[n-1].Style == style {
		b.node.TextRuns[n-1].End = b.node.Length()
		return b
	}
	b.node.TextRuns = append(b.node.TextRuns, entities.TextRun{Start: start, End: b.node.Length(), Style: style})
	return b
}

// Bold appends bold text
func (b *TextBuilder) Bold(s string) *TextBuilder {
	return b.Styled(s, entities.Style{Bold: true})
}

// Italic appends italic text
func (b *TextBuilder) Italic(s string) *TextBuilder {
	return b.Styled(s, entities.Style{Italic: true})
}

// List appends one line per item under a single list marker
func (b *TextBuilder) List(kind entities.ListType, items ...string) *TextBuilder {
	start := b.node.Length()
	for _, item := range items {
		b.node.RawText += item + "\n"
	}
	if len(items) > 0 {
		b.node.ListMarkers = append(b.node.ListMarkers, entities.ListMarker{Start: start, End: b.node.Length(), Type: kind})
	}
	return b
}

// Build returns a copy of the node
func (b *TextBuilder) Build() entities.TextNode {
	node := b.node
	node.TextRuns = append([]entities.TextRun{}, b.node.TextRuns...)
	if b.node.ListMarkers != nil {
		node.ListMarkers = append([]entities.ListMarker{}, b.node.ListMarkers...)
	}
	return node
}

// Text returns an unstyled node
func Text(s string) entities.TextNode {
	return NewTextBuilder().Plain(s).Build()
}
