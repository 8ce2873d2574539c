package parser

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// splitSlides groups the document's top-level nodes at each thematic break.
// A document with k breaks always yields k+1 groups, empty ones included.
func splitSlides(doc ast.Node) [][]ast.Node {
	groups := [][]ast.Node{{}}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindThematicBreak {
			groups = append(groups, []ast.Node{})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], n)
	}
	return groups
}

// buildSlide extracts notes, headings, columns and media from one segment
func (e *Extractor) buildSlide(nodes []ast.Node, source []byte, index int) entities.Slide {
	sc := &slideContext{}

	body := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		if hb, ok := n.(*ast.HTMLBlock); ok && hb.HTMLBlockType == ast.HTMLBlockType2 {
			sc.addNote(blockOffset(hb), commentBody(blockText(hb, source)))
			continue
		}
		body = append(body, n)
	}

	slide := entities.Slide{
		Index:  index,
		Bodies: []entities.TextNode{},
		Images: []entities.Media{},
		Videos: []entities.Media{},
		Tables: []entities.Table{},
	}

	if h, ok := leadingHeading(body, 1); ok {
		slide.Title = e.headingNode(h, source, sc)
		body = body[1:]
	}
	if h, ok := leadingHeading(body, 2); ok {
		slide.Subtitle = e.headingNode(h, source, sc)
		body = body[1:]
	}

	columns := e.splitColumns(body, source)
	for _, column := range columns {
		b := e.newBuilder(source, sc)
		for _, n := range column {
			b.block(n)
		}
		node := b.node()
		if len(columns) == 1 && node.RawText == "" {
			break
		}
		slide.Bodies = append(slide.Bodies, node)
	}

	slide.BackgroundImage = sc.background
	slide.Images = append(slide.Images, sc.images...)
	slide.Videos = append(slide.Videos, sc.videos...)
	slide.Tables = append(slide.Tables, sc.tables...)
	slide.Notes = e.notesNode(sc.notes, index)

	return slide
}

// leadingHeading returns nodes[0] if it is a heading of the given level
func leadingHeading(nodes []ast.Node, level int) (*ast.Heading, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	h, ok := nodes[0].(*ast.Heading)
	if !ok || h.Level != level {
		return nil, false
	}
	return h, true
}

// headingNode flattens a heading's inline content without a trailing newline
func (e *Extractor) headingNode(h *ast.Heading, source []byte, sc *slideContext) *entities.TextNode {
	b := e.newBuilder(source, sc)
	b.inlines(h.FirstChild(), nil, entities.Style{})
	node := b.node()
	return &node
}

// splitColumns divides body nodes at top-level column marker paragraphs.
// N markers produce N+1 groups.
func (e *Extractor) splitColumns(nodes []ast.Node, source []byte) [][]ast.Node {
	columns := [][]ast.Node{{}}
	for _, n := range nodes {
		if e.isColumnMarker(n, source) {
			columns = append(columns, []ast.Node{})
			continue
		}
		columns[len(columns)-1] = append(columns[len(columns)-1], n)
	}
	return columns
}

func (e *Extractor) isColumnMarker(n ast.Node, source []byte) bool {
	if e.cfg.ColumnMarker == "" {
		return false
	}
	if _, ok := n.(*ast.Paragraph); !ok {
		return false
	}
	return strings.TrimSpace(plainText(n, source)) == e.cfg.ColumnMarker
}

// notesNode parses the first non-empty speaker-notes comment of a slide as markdown
func (e *Extractor) notesNode(notes []note, index int) *entities.TextNode {
	notes = slices.DeleteFunc(notes, func(n note) bool { return strings.TrimSpace(n.body) == "" })
	if len(notes) == 0 {
		return nil
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].offset < notes[j].offset })
	if len(notes) > 1 {
		e.logger.Debug("dropping extra speaker notes",
			slog.Int("slide", index),
			slog.Int("dropped", len(notes)-1),
		)
	}

	body := notes[0].body

	source := []byte(body)
	doc, err := e.parse(source)
	if err != nil {
		e.logger.Debug("speaker notes kept as plain text",
			slog.Int("slide", index),
			slog.String("error", err.Error()),
		)
		return &entities.TextNode{RawText: body, TextRuns: []entities.TextRun{}}
	}

	b := e.newBuilder(source, nil)
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		b.block(n)
	}
	node := b.node()
	return &node
}
