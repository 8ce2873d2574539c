package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// list writes each item on its own line, indented with one tab per nesting
// level, and records the span of every item for marker merging
func (b *textBuilder) list(l *ast.List, depth int) {
	listType := entities.ListUnordered
	if l.IsOrdered() {
		listType = entities.ListOrdered
	}
	indent := strings.Repeat("\t", depth)

	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		if item.FirstChild() == nil {
			b.listLine(indent, nil, listType)
			continue
		}
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch child := c.(type) {
			case *ast.List:
				b.list(child, depth+1)
			case *ast.Paragraph, *ast.TextBlock:
				b.listLine(indent, child, listType)
			default:
				b.block(child)
			}
		}
	}
}

// listLine writes one item paragraph and its trailing newline
func (b *textBuilder) listLine(indent string, n ast.Node, listType entities.ListType) {
	start := b.cursor
	b.write(indent, entities.Style{})
	if n != nil {
		b.inlines(n.FirstChild(), nil, entities.Style{})
	}
	b.write("\n", entities.Style{})
	b.items = append(b.items, entities.ListMarker{Start: start, End: b.cursor, Type: listType})
}

// mergeListItems joins touching item spans of the same list type
func mergeListItems(items []entities.ListMarker) []entities.ListMarker {
	var merged []entities.ListMarker
	for _, item := range items {
		if n := len(merged); n > 0 && merged[n-1].Type == item.Type && merged[n-1].End == item.Start {
			merged[n-1].End = item.End
			continue
		}
		merged = append(merged, item)
	}
	return merged
}
