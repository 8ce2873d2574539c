package parser

import (
	"context"
	"testing"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

func BenchmarkExtractor_Extract(b *testing.B) {
	extractor := NewExtractor(entities.DefaultExtractionConfig())
	ctx, cancel := context.WithCancel(context.Background())
	b.Cleanup(cancel)

	// Typical presentation content
	content := []byte(`# Introduction
## A short tour

Welcome to this deck with **bold**, *italic* and <span style="color:teal">colored</span> text :rocket:

<!-- Remember to smile -->

---

# Main Content

Here's a list:
- Item 1
- Item 2
  - Nested item
- Item 3

{.column}

` + "```go\nfunc main() {\n    fmt.Println(\"Hello, World!\")\n}\n```" + `

---

# Data

| Header 1 | Header 2 |
|----------|----------|
| Cell 1   | Cell 2   |
| Cell 3   | Cell 4   |

![](background.png){.background}

@[youtube](dQw4w9WgXcQ)

1. Ordered item 1
2. Ordered item 2
`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := extractor.Extract(ctx, content); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRichText_Runs(b *testing.B) {
	markdown := "Some **bold *and italic*** text with ~~strikes~~, H<sub>2</sub>O and :heart: emoji\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ExtractSlides(markdown); err != nil {
			b.Fatal(err)
		}
	}
}
