package parser

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
	"github.com/fredcamaral/md2slides/internal/domain/ports"
)

// slideNamespace seeds the deterministic slide identifiers
var slideNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/fredcamaral/md2slides/slide"))

// Extractor turns markdown documents into slides using Goldmark.
// It holds only immutable configuration and is safe for concurrent use.
type Extractor struct {
	md        goldmark.Markdown
	cfg       entities.ExtractionConfig
	providers map[string]string
	codeStyle *chroma.Style
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

// Option configures an Extractor
type Option func(*Extractor)

// WithLogger sets the logger used for debug diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates a new Goldmark-based slide extractor
func NewExtractor(cfg entities.ExtractionConfig, opts ...Option) *Extractor {
	extensions := []goldmark.Extender{
		extension.GFM, // tables, strikethrough, task lists, linkify
	}
	if cfg.Typographer {
		extensions = append(extensions, extension.Typographer)
	}
	if cfg.Emoji {
		extensions = append(extensions, emoji.Emoji)
	}

	providers := make(map[string]string, len(cfg.VideoProviders))
	for _, p := range cfg.VideoProviders {
		folded := cases.Fold().String(p)
		providers[folded] = folded
	}

	e := &Extractor{
		md:        goldmark.New(goldmark.WithExtensions(extensions...)),
		cfg:       cfg,
		providers: providers,
		codeStyle: codeTheme(cfg.CodeTheme),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = sync.OnceValue(func() *Extractor {
	return NewExtractor(entities.DefaultExtractionConfig())
})

// ExtractSlides converts markdown into slides using the default configuration
func ExtractSlides(markdown string) ([]entities.Slide, error) {
	presentation, err := defaultExtractor().Extract(context.Background(), []byte(markdown))
	if err != nil {
		return nil, err
	}
	return presentation.Slides, nil
}

// Extract parses content and builds one slide per thematic-break segment
func (e *Extractor) Extract(ctx context.Context, content []byte) (*entities.Presentation, error) {
	if content == nil {
		return nil, entities.ErrNilDocument
	}
	if !utf8.Valid(content) {
		return nil, entities.ErrInvalidEncoding
	}

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	presentation := &entities.Presentation{}
	if e.cfg.Frontmatter {
		var metadata map[string]interface{}
		metadata, content = extractFrontmatter(content)
		presentation.Metadata = metadata
		presentation.Title, _ = getStringFromMap(metadata, "title")
		presentation.Author, _ = getStringFromMap(metadata, "author")
	}

	doc, err := e.parse(content)
	if err != nil {
		return nil, err
	}

	docNamespace := uuid.NewSHA1(slideNamespace, content)
	segments := splitSlides(doc)
	presentation.Slides = make([]entities.Slide, 0, len(segments))
	for i, segment := range segments {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extracting slide %d: %w", i, err)
		}
		slide := e.buildSlide(segment, content, i)
		slide.ID = uuid.NewSHA1(docNamespace, []byte(strconv.Itoa(i))).String()
		presentation.Slides = append(presentation.Slides, slide)
	}

	e.logger.Debug("extracted slides",
		slog.Int("slides", len(presentation.Slides)),
		slog.Int("bytes", len(content)),
	)

	return presentation, nil
}

// parse runs the Goldmark parser, reporting tokenizer panics as ErrParse
func (e *Extractor) parse(source []byte) (doc ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", entities.ErrParse, r)
		}
	}()
	return e.md.Parser().Parse(text.NewReader(source)), nil
}

// extractFrontmatter extracts YAML frontmatter from markdown content
func extractFrontmatter(content []byte) (map[string]interface{}, []byte) {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content
	}

	lines := bytes.Split(content, []byte("\n"))
	endIndex := -1
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			endIndex = i
			break
		}
	}

	if endIndex == -1 {
		// No closing delimiter found
		return nil, content
	}

	frontmatterBytes := bytes.Join(lines[1:endIndex], []byte("\n"))

	var frontmatter map[string]interface{}
	if len(bytes.TrimSpace(frontmatterBytes)) == 0 {
		frontmatter = make(map[string]interface{})
	} else if err := yaml.Unmarshal(frontmatterBytes, &frontmatter); err != nil || frontmatter == nil {
		// Not a YAML mapping, so the block is ordinary slide content
		return nil, content
	}

	return frontmatter, bytes.Join(lines[endIndex+1:], []byte("\n"))
}

// getStringFromMap safely extracts a string value from a map
func getStringFromMap(m map[string]interface{}, key string) (string, bool) {
	if m == nil {
		return "", false
	}

	val, exists := m[key]
	if !exists {
		return "", false
	}

	str, ok := val.(string)
	return str, ok
}

// Ensure Extractor implements ports.SlideExtractor
var _ ports.SlideExtractor = (*Extractor)(nil)
