package parser

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/text/cases"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// attributeBlock matches a {...} attribute list attached to the preceding node
var attributeBlock = regexp.MustCompile(`^\{([^{}\n]*)\}`)

// note is a speaker-notes comment and its position in the slide source
type note struct {
	offset int
	body   string
}

// slideContext collects everything a slide gathers outside its text bodies
type slideContext struct {
	background *entities.Media
	images     []entities.Media
	videos     []entities.Media
	tables     []entities.Table
	notes      []note
}

func (s *slideContext) addImage(m entities.Media) {
	if s != nil {
		s.images = append(s.images, m)
	}
}

func (s *slideContext) setBackground(m entities.Media) {
	if s != nil {
		s.background = &m
	}
}

func (s *slideContext) addVideo(m entities.Media) {
	if s != nil {
		s.videos = append(s.videos, m)
	}
}

func (s *slideContext) addTable(t entities.Table) {
	if s != nil {
		s.tables = append(s.tables, t)
	}
}

func (s *slideContext) addNote(offset int, body string) {
	if s != nil {
		s.notes = append(s.notes, note{offset: offset, body: body})
	}
}

// image classifies an image as the slide background or an inline image.
// Neither contributes text.
func (b *textBuilder) image(img *ast.Image) {
	media := entities.Media{
		URL:   string(img.Destination),
		Title: string(img.Title),
	}
	if attrs, ok := imageAttributes(img, b.source); ok && hasClass(attrs, b.ext.cfg.BackgroundClass) {
		b.slide.setBackground(media)
		return
	}
	b.slide.addImage(media)
}

// imageAttributes returns the contents of an attribute block directly after img
func imageAttributes(img *ast.Image, source []byte) (string, bool) {
	t, ok := img.NextSibling().(*ast.Text)
	if !ok {
		return "", false
	}
	m := attributeBlock.FindSubmatch(t.Segment.Value(source))
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// hasClass reports whether an attribute list contains .class
func hasClass(attrs, class string) bool {
	for _, field := range strings.Fields(attrs) {
		if field == "."+class {
			return true
		}
	}
	return false
}

// videoEmbed recognises @[provider](id). The "@" lives at the end of the
// preceding text node; the provider must be one of the configured names.
func (b *textBuilder) videoEmbed(link *ast.Link) (entities.Media, bool) {
	prev, ok := link.PreviousSibling().(*ast.Text)
	if !ok || !endsWithEmbedMarker(prev.Segment.Value(b.source)) {
		return entities.Media{}, false
	}
	provider, ok := b.ext.providers[cases.Fold().String(strings.TrimSpace(plainText(link, b.source)))]
	if !ok || len(link.Destination) == 0 {
		return entities.Media{}, false
	}
	return entities.Media{ID: string(link.Destination), Provider: provider}, true
}

// endsWithEmbedMarker reports whether text ends with an unescaped "@"
func endsWithEmbedMarker(text []byte) bool {
	if !bytes.HasSuffix(text, []byte("@")) {
		return false
	}
	escapes := 0
	for i := len(text) - 2; i >= 0 && text[i] == '\\'; i-- {
		escapes++
	}
	return escapes%2 == 0
}
