package db

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders rows of strings as a boxed text table.
type Table struct {
	writer table.Writer
	empty  bool
}

func NewTable(w io.Writer) *Table {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	// Headers are printed as written; StyleLight upper-cases them.
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	return &Table{writer: t, empty: true}
}

func (t *Table) Header(headers []string) {
	t.writer.AppendHeader(toRow(headers))
	t.empty = false
}

func (t *Table) Row(row []string) {
	t.writer.AppendRow(toRow(row))
	t.empty = false
}

func (t *Table) Bulk(rows [][]string) {
	for _, row := range rows {
		t.Row(row)
	}
}

// Render writes the table. Nothing is written for a table without headers or rows.
func (t *Table) Render() {
	if t.empty {
		return
	}
	t.writer.Render()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = cell
	}
	return row
}
