package parser

import (
	"log/slog"
	"strconv"
	"strings"

	cssparser "github.com/aymerick/douceur/parser"
	"github.com/mazznoer/csscolorparser"
	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

type tagKind int

const (
	tagUnknown tagKind = iota
	tagOpen
	tagClose
	tagSelfClosing
	tagComment
)

// htmlTag is a single tokenized inline HTML fragment
type htmlTag struct {
	kind  tagKind
	name  string
	attrs map[string]string
}

// parseTag tokenizes the first token of raw
func parseTag(raw string) htmlTag {
	z := html.NewTokenizer(strings.NewReader(raw))
	tt := z.Next()
	tok := z.Token()

	tag := htmlTag{name: tok.Data}
	switch tt {
	case html.StartTagToken:
		tag.kind = tagOpen
	case html.EndTagToken:
		tag.kind = tagClose
	case html.SelfClosingTagToken:
		tag.kind = tagSelfClosing
	case html.CommentToken:
		tag.kind = tagComment
	default:
		return htmlTag{kind: tagUnknown}
	}

	if len(tok.Attr) > 0 {
		tag.attrs = make(map[string]string, len(tok.Attr))
		for _, a := range tok.Attr {
			tag.attrs[a.Key] = a.Val
		}
	}
	return tag
}

// rawHTMLValue returns the source text of an inline HTML node
func rawHTMLValue(n *ast.RawHTML, source []byte) string {
	var sb strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// rawHTML handles an inline HTML node. A supported opening tag with a
// matching close among the following siblings styles everything between
// them; anything else is written out as literal text.
func (b *textBuilder) rawHTML(n *ast.RawHTML, stop ast.Node, style entities.Style) ast.Node {
	raw := rawHTMLValue(n, b.source)
	tag := parseTag(raw)

	switch {
	case tag.kind == tagComment:
		offset := 0
		if n.Segments.Len() > 0 {
			offset = n.Segments.At(0).Start
		}
		b.slide.addNote(offset, commentBody(raw))
		return n
	case tag.name == "br" && (tag.kind == tagOpen || tag.kind == tagSelfClosing):
		b.write("\n", style)
		return n
	case tag.kind == tagOpen:
		if tagStyle, ok := elementStyle(tag); ok {
			if closing := findClosingTag(n, stop, tag.name, b.source); closing != nil {
				b.inlines(n.NextSibling(), closing, style.Merge(tagStyle))
				return closing
			}
		}
	}

	b.logger().Debug("treating inline HTML as text", slog.String("html", raw))
	b.write(raw, style)
	return n
}

// findClosingTag looks for the close tag matching an opening tag named name
// among the siblings after open, honouring nested tags of the same name
func findClosingTag(open, stop ast.Node, name string, source []byte) ast.Node {
	depth := 0
	for n := open.NextSibling(); n != nil && n != stop; n = n.NextSibling() {
		raw, ok := n.(*ast.RawHTML)
		if !ok {
			continue
		}
		tag := parseTag(rawHTMLValue(raw, source))
		if tag.name != name {
			continue
		}
		switch tag.kind {
		case tagOpen:
			depth++
		case tagClose:
			if depth == 0 {
				return n
			}
			depth--
		}
	}
	return nil
}

// elementStyle maps a supported element to its style. The second result is
// false for elements that have no styling meaning.
func elementStyle(tag htmlTag) (entities.Style, bool) {
	var s entities.Style
	switch tag.name {
	case "span":
	case "b", "strong":
		s.Bold = true
	case "i", "em":
		s.Italic = true
	case "s", "del", "strike":
		s.Strikethrough = true
	case "u", "ins":
		s.Underline = true
	case "sub":
		s.BaselineOffset = entities.BaselineSubscript
	case "sup":
		s.BaselineOffset = entities.BaselineSuperscript
	case "code":
		s.FontFamily = entities.MonospaceFont
	default:
		return s, false
	}
	if css, ok := tag.attrs["style"]; ok {
		s = s.Merge(cssStyle(css))
	}
	return s, true
}

// cssStyle converts inline CSS declarations to a style.
// Unknown properties and unparseable values are ignored.
func cssStyle(css string) entities.Style {
	var s entities.Style
	// the last declaration loses its value without a terminating semicolon
	if css = strings.TrimSpace(css); !strings.HasSuffix(css, ";") {
		css += ";"
	}
	decls, err := cssparser.ParseDeclarations(css)
	if err != nil {
		return s
	}
	for _, d := range decls {
		value := cases.Fold().String(strings.TrimSpace(d.Value))
		switch cases.Fold().String(d.Property) {
		case "color":
			if c, ok := parseColor(value); ok {
				s.ForegroundColor = c
			}
		case "font-weight":
			if value == "bold" || value == "bolder" {
				s.Bold = true
			} else if w, err := strconv.Atoi(value); err == nil && w >= 600 {
				s.Bold = true
			}
		case "font-style":
			s.Italic = value == "italic" || value == "oblique"
		case "text-decoration", "text-decoration-line":
			s.Underline = strings.Contains(value, "underline")
			s.Strikethrough = strings.Contains(value, "line-through")
		case "vertical-align":
			switch value {
			case "sub":
				s.BaselineOffset = entities.BaselineSubscript
			case "super":
				s.BaselineOffset = entities.BaselineSuperscript
			}
		case "font-family":
			family, _, _ := strings.Cut(d.Value, ",")
			s.FontFamily = strings.Trim(strings.TrimSpace(family), `"'`)
		}
	}
	return s
}

// parseColor normalizes any CSS color to #rrggbb; alpha is dropped
func parseColor(value string) (string, bool) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", false
	}
	return c.HexString()[:7], true
}

// commentBody strips the <!-- and --> delimiters from an HTML comment
func commentBody(raw string) string {
	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "<!--")
	if i := strings.LastIndex(body, "-->"); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body)
}

// htmlBlock records comment blocks as speaker notes and reduces any other
// HTML block to its text content
func (b *textBuilder) htmlBlock(n *ast.HTMLBlock) {
	raw := blockText(n, b.source)
	if n.HTMLBlockType == ast.HTMLBlockType2 {
		b.slide.addNote(blockOffset(n), commentBody(raw))
		return
	}

	text := strings.TrimSpace(html.UnescapeString(b.ext.sanitizer.Sanitize(raw)))
	if text == "" {
		return
	}
	b.write(text, entities.Style{})
	b.write("\n", entities.Style{})
}

// blockOffset returns the source offset of a block's first line
func blockOffset(n ast.Node) int {
	if n.Lines().Len() == 0 {
		return 0
	}
	return n.Lines().At(0).Start
}
