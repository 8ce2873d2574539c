package entities

// BaselineOffset raises or lowers text relative to the baseline
type BaselineOffset string

const (
	BaselineNone        BaselineOffset = ""
	BaselineSubscript   BaselineOffset = "SUBSCRIPT"
	BaselineSuperscript BaselineOffset = "SUPERSCRIPT"
)

// MonospaceFont is the font family applied to inline and block code
const MonospaceFont = "Courier New"

// Style is the set of attributes applied to a text run.
// It is a comparable value so runs can be merged with ==.
type Style struct {
	Bold           bool           `json:"bold,omitempty"`
	Italic         bool           `json:"italic,omitempty"`
	Strikethrough  bool           `json:"strikethrough,omitempty"`
	Underline      bool           `json:"underline,omitempty"`
	BaselineOffset BaselineOffset `json:"baselineOffset,omitempty"`

	// ForegroundColor is a normalized #rrggbb hex color
	ForegroundColor string `json:"foregroundColor,omitempty"`

	FontFamily string `json:"fontFamily,omitempty"`
	Link       string `json:"link,omitempty"`
}

// IsZero returns true if no attribute is set
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns the union of s and inner. Boolean attributes are or-ed,
// scalar attributes set on inner take precedence.
func (s Style) Merge(inner Style) Style {
	out := s
	out.Bold = s.Bold || inner.Bold
	out.Italic = s.Italic || inner.Italic
	out.Strikethrough = s.Strikethrough || inner.Strikethrough
	out.Underline = s.Underline || inner.Underline
	if inner.BaselineOffset != BaselineNone {
		out.BaselineOffset = inner.BaselineOffset
	}
	if inner.ForegroundColor != "" {
		out.ForegroundColor = inner.ForegroundColor
	}
	if inner.FontFamily != "" {
		out.FontFamily = inner.FontFamily
	}
	if inner.Link != "" {
		out.Link = inner.Link
	}
	return out
}
