package parser

import (
	"log/slog"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// codeTheme resolves a chroma style by name; an empty name disables highlighting
func codeTheme(name string) *chroma.Style {
	if name == "" {
		return nil
	}
	style := styles.Get(name)
	if style == nil {
		return styles.Fallback
	}
	return style
}

// codeBlock writes code in a monospace font, coloring tokens when the
// language is known to chroma
func (b *textBuilder) codeBlock(code, language string) {
	base := entities.Style{FontFamily: entities.MonospaceFont}

	theme := b.ext.codeStyle
	if theme == nil || language == "" {
		b.write(code, base)
		return
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		b.write(code, base)
		return
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		b.logger().Debug("code highlighting failed",
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
		b.write(code, base)
		return
	}

	for _, token := range iterator.Tokens() {
		entry := theme.Get(token.Type)
		style := base
		if entry.Colour.IsSet() {
			style.ForegroundColor = entry.Colour.String()
		}
		style.Bold = entry.Bold == chroma.Yes
		style.Italic = entry.Italic == chroma.Yes
		b.write(token.Value, style)
	}
}
