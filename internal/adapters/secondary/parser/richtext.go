package parser

import (
	"log/slog"
	"strings"

	emojiast "github.com/yuin/goldmark-emoji/ast"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// textBuilder flattens a goldmark subtree into plain text and style runs.
// The cursor counts UTF-16 code units written so far; every builder starts
// from zero, so titles, bodies, cells and notes never share offsets.
type textBuilder struct {
	source []byte
	ext    *Extractor
	slide  *slideContext // nil when media and notes should be discarded

	out    strings.Builder
	cursor int
	runs   []entities.TextRun
	items  []entities.ListMarker
}

func (e *Extractor) newBuilder(source []byte, slide *slideContext) *textBuilder {
	return &textBuilder{source: source, ext: e, slide: slide}
}

// child returns a fresh builder over the same source and slide
func (b *textBuilder) child() *textBuilder {
	return b.ext.newBuilder(b.source, b.slide)
}

func (b *textBuilder) logger() *slog.Logger {
	return b.ext.logger
}

// write appends s and records a run when style is set
func (b *textBuilder) write(s string, style entities.Style) {
	if s == "" {
		return
	}
	start := b.cursor
	b.out.WriteString(s)
	b.cursor += entities.UTF16Len(s)
	if !style.IsZero() {
		b.runs = append(b.runs, entities.TextRun{Start: start, End: b.cursor, Style: style})
	}
}

// node returns the accumulated text with merged runs and list markers
func (b *textBuilder) node() entities.TextNode {
	return entities.TextNode{
		RawText:     b.out.String(),
		TextRuns:    mergeRuns(b.runs),
		ListMarkers: mergeListItems(b.items),
	}
}

// mergeRuns joins touching runs that carry the same style
func mergeRuns(runs []entities.TextRun) []entities.TextRun {
	merged := make([]entities.TextRun, 0, len(runs))
	for _, run := range runs {
		if n := len(merged); n > 0 && merged[n-1].End == run.Start && merged[n-1].Style == run.Style {
			merged[n-1].End = run.End
			continue
		}
		merged = append(merged, run)
	}
	return merged
}

// block dispatches a block-level node
func (b *textBuilder) block(n ast.Node) {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		b.paragraph(node, entities.Style{})
	case *ast.Heading:
		b.paragraph(node, entities.Style{Bold: true})
	case *ast.List:
		b.list(node, 0)
	case *ast.FencedCodeBlock:
		b.codeBlock(blockText(node, b.source), string(node.Language(b.source)))
	case *ast.CodeBlock:
		b.codeBlock(blockText(node, b.source), "")
	case *ast.Blockquote:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			b.block(c)
		}
	case *ast.HTMLBlock:
		b.htmlBlock(node)
	case *east.Table:
		b.table(node)
	case *ast.ThematicBreak:
		// slide boundaries are handled by the segmenter
	default:
		b.logger().Debug("ignoring block node", slog.String("kind", n.Kind().String()))
	}
}

// paragraph writes the inline content of n followed by a newline.
// Paragraphs that produce no text (media only) contribute nothing.
func (b *textBuilder) paragraph(n ast.Node, style entities.Style) {
	offset, cursor, runs := b.out.Len(), b.cursor, len(b.runs)
	b.inlines(n.FirstChild(), nil, style)
	if strings.TrimSpace(b.out.String()[offset:]) == "" {
		// separators left between removed media
		b.truncate(offset, cursor, runs)
		return
	}
	b.write("\n", entities.Style{})
}

// truncate rolls the builder back to an earlier length
func (b *textBuilder) truncate(offset, cursor, runs int) {
	if b.out.Len() == offset {
		return
	}
	kept := b.out.String()[:offset]
	b.out.Reset()
	b.out.WriteString(kept)
	b.cursor = cursor
	b.runs = b.runs[:runs]
}

// inlines walks siblings from first up to, but not including, stop
func (b *textBuilder) inlines(first, stop ast.Node, style entities.Style) {
	for n := first; n != nil && n != stop; n = n.NextSibling() {
		n = b.inline(n, stop, style)
	}
}

// inline handles one inline node and returns the last sibling it consumed
func (b *textBuilder) inline(n, stop ast.Node, style entities.Style) ast.Node {
	switch node := n.(type) {
	case *ast.Text:
		b.text(node, style)
	case *ast.String:
		// typographer output arrives as entity references
		b.write(string(decodeText(node.Value)), style)
	case *ast.Emphasis:
		s := entities.Style{Italic: true}
		if node.Level >= 2 {
			s = entities.Style{Bold: true}
		}
		b.inlines(node.FirstChild(), nil, style.Merge(s))
	case *east.Strikethrough:
		b.inlines(node.FirstChild(), nil, style.Merge(entities.Style{Strikethrough: true}))
	case *ast.CodeSpan:
		b.codeSpan(node, style.Merge(entities.Style{FontFamily: entities.MonospaceFont}))
	case *ast.Link:
		if video, ok := b.videoEmbed(node); ok {
			b.slide.addVideo(video)
			return n
		}
		b.inlines(node.FirstChild(), nil, style.Merge(entities.Style{Link: string(node.Destination)}))
	case *ast.AutoLink:
		b.write(string(node.Label(b.source)), style.Merge(entities.Style{Link: string(node.URL(b.source))}))
	case *ast.Image:
		b.image(node)
	case *emojiast.Emoji:
		b.emoji(node, style)
	case *east.TaskCheckBox:
		if node.IsChecked {
			b.write("☑ ", style)
		} else {
			b.write("☐ ", style)
		}
	case *ast.RawHTML:
		return b.rawHTML(node, stop, style)
	default:
		b.inlines(n.FirstChild(), nil, style)
	}
	return n
}

// text writes a text leaf, dropping image attribute blocks and video prefixes
func (b *textBuilder) text(t *ast.Text, style entities.Style) {
	value := t.Segment.Value(b.source)

	if _, ok := t.PreviousSibling().(*ast.Image); ok {
		if loc := attributeBlock.FindIndex(value); loc != nil {
			value = value[loc[1]:]
		}
	}
	if link, ok := t.NextSibling().(*ast.Link); ok {
		if _, isVideo := b.videoEmbed(link); isVideo {
			value = value[:len(value)-1]
		}
	}

	if !t.IsRaw() {
		value = decodeText(value)
	}
	b.write(string(value), style)

	if t.SoftLineBreak() || t.HardLineBreak() {
		b.write("\n", style)
	}
}

// codeSpan writes inline code verbatim
func (b *textBuilder) codeSpan(n *ast.CodeSpan, style entities.Style) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.write(string(t.Segment.Value(b.source)), style)
		case *ast.String:
			b.write(string(t.Value), style)
		}
	}
}

// emoji writes the glyph for a recognised shortcode
func (b *textBuilder) emoji(n *emojiast.Emoji, style entities.Style) {
	if n.Value == nil || len(n.Value.Unicode) == 0 {
		b.write(":"+string(n.ShortName)+":", style)
		return
	}
	b.write(string(n.Value.Unicode), style)
}

// decodeText resolves backslash escapes and HTML entities
func decodeText(value []byte) []byte {
	return util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(value)))
}

// blockText concatenates the source lines of a block node
func blockText(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	if hb, ok := n.(*ast.HTMLBlock); ok && hb.HasClosure() {
		sb.Write(hb.ClosureLine.Value(source))
	}
	return sb.String()
}

// plainText returns the unstyled text content of a subtree
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
