package parser

import (
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/fredcamaral/md2slides/internal/domain/entities"
)

// table records a table on the slide. The header row's cell count is the
// column count; body rows are not checked against it. Tables add no body text.
func (b *textBuilder) table(t *east.Table) {
	var table entities.Table

	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []entities.TextNode
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cb := b.child()
			cb.inlines(cell.FirstChild(), nil, entities.Style{})
			cells = append(cells, cb.node())
		}

		if _, ok := row.(*east.TableHeader); ok {
			table.Columns = len(cells)
		}
		table.Rows++
		table.Cells = append(table.Cells, cells)
	}

	b.slide.addTable(table)
}
