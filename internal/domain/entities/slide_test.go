package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextNode_Validate(t *testing.T) {
	bold := Style{Bold: true}
	italic := Style{Italic: true}

	tests := []struct {
		name    string
		node    TextNode
		wantErr error
	}{
		{
			name: "empty node",
			node: TextNode{},
		},
		{
			name: "disjoint runs",
			node: TextNode{RawText: "hello world", TextRuns: []TextRun{
				{Start: 0, End: 5, Style: bold},
				{Start: 6, End: 11, Style: italic},
			}},
		},
		{
			name: "touching runs with different styles",
			node: TextNode{RawText: "ab", TextRuns: []TextRun{
				{Start: 0, End: 1, Style: bold},
				{Start: 1, End: 2, Style: italic},
			}},
		},
		{
			name: "offsets counted in UTF-16 units",
			node: TextNode{RawText: "😀x", TextRuns: []TextRun{{Start: 0, End: 3, Style: bold}}},
		},
		{
			name:    "run past end",
			node:    TextNode{RawText: "😀", TextRuns: []TextRun{{Start: 0, End: 3, Style: bold}}},
			wantErr: ErrInvalidTextRun,
		},
		{
			name:    "empty run",
			node:    TextNode{RawText: "abc", TextRuns: []TextRun{{Start: 1, End: 1, Style: bold}}},
			wantErr: ErrInvalidTextRun,
		},
		{
			name:    "unstyled run",
			node:    TextNode{RawText: "abc", TextRuns: []TextRun{{Start: 0, End: 3}}},
			wantErr: ErrInvalidTextRun,
		},
		{
			name: "overlapping runs",
			node: TextNode{RawText: "abcdef", TextRuns: []TextRun{
				{Start: 0, End: 4, Style: bold},
				{Start: 2, End: 6, Style: italic},
			}},
			wantErr: ErrInvalidTextRun,
		},
		{
			name: "unmerged touching runs",
			node: TextNode{RawText: "abcdef", TextRuns: []TextRun{
				{Start: 0, End: 3, Style: bold},
				{Start: 3, End: 6, Style: bold},
			}},
			wantErr: ErrInvalidTextRun,
		},
		{
			name: "list markers in bounds",
			node: TextNode{RawText: "a\nb\n", ListMarkers: []ListMarker{
				{Start: 0, End: 2, Type: ListUnordered},
				{Start: 2, End: 4, Type: ListOrdered},
			}},
		},
		{
			name:    "list marker past end",
			node:    TextNode{RawText: "a\n", ListMarkers: []ListMarker{{Start: 0, End: 3, Type: ListUnordered}}},
			wantErr: ErrInvalidListMarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSlide_Validate(t *testing.T) {
	t.Run("negative index", func(t *testing.T) {
		s := Slide{Index: -1}
		assert.EqualError(t, s.Validate(), "slide index must be non-negative")
	})

	t.Run("checks table cells", func(t *testing.T) {
		s := Slide{Tables: []Table{{Rows: 1, Columns: 1, Cells: [][]TextNode{{
			{RawText: "x", TextRuns: []TextRun{{Start: 0, End: 2, Style: Style{Bold: true}}}},
		}}}}}

		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table 0 cell 0,0")
	})

	t.Run("checks notes", func(t *testing.T) {
		s := Slide{Notes: &TextNode{RawText: "n", TextRuns: []TextRun{{Start: 0, End: 1}}}}
		assert.ErrorIs(t, s.Validate(), ErrInvalidTextRun)
	})
}

func TestSlide_HasNotes(t *testing.T) {
	assert.False(t, (&Slide{}).HasNotes())
	assert.False(t, (&Slide{Notes: &TextNode{}}).HasNotes())
	assert.True(t, (&Slide{Notes: &TextNode{RawText: "remember"}}).HasNotes())
}

func TestMedia_IsVideo(t *testing.T) {
	assert.False(t, Media{URL: "cat.png"}.IsVideo())
	assert.True(t, Media{ID: "abc", Provider: "youtube"}.IsVideo())
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"❤️", 2},
		{"😀", 2},
		{"a😀b", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, UTF16Len(tt.in))
		})
	}
}

func TestStyle_Merge(t *testing.T) {
	outer := Style{Bold: true, ForegroundColor: "#ff0000", Link: "https://a"}
	inner := Style{Italic: true, ForegroundColor: "#0000ff", BaselineOffset: BaselineSuperscript}

	merged := outer.Merge(inner)

	assert.Equal(t, Style{
		Bold:            true,
		Italic:          true,
		ForegroundColor: "#0000ff",
		BaselineOffset:  BaselineSuperscript,
		Link:            "https://a",
	}, merged)
	assert.Equal(t, outer, outer.Merge(Style{}))
	assert.True(t, Style{}.IsZero())
	assert.False(t, merged.IsZero())
}
