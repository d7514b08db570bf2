package render

import (
	"fmt"
	"modfinder/lib/modmeta"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Filler pads the last row of a table.
const Filler = "---"

// Layout decides how a flat list is poured into columns.
type Layout string

const (
	// RowMajor fills each row left to right, the way the chat bot lists results.
	RowMajor Layout = "row"
	// ColumnMajor fills the first column top to bottom before moving on,
	// the way the desktop form splits results in halves.
	ColumnMajor Layout = "column"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(s)) {
	case RowMajor, "":
		return RowMajor, nil
	case ColumnMajor:
		return ColumnMajor, nil
	}
	return "", fmt.Errorf("unknown layout %q, expected %q or %q", s, RowMajor, ColumnMajor)
}

type Options struct {
	Columns int
	Layout  Layout
	Style   table.Style
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = 2
	}
	if o.Layout == "" {
		o.Layout = RowMajor
	}
	if o.Style.Name == "" {
		o.Style = table.StyleLight
	}
	return o
}

// Grid arranges items into rows of opts.Columns cells, padding the
// remainder with Filler. A column-major grid drops trailing columns that
// would hold nothing but Filler.
func Grid(items []string, opts Options) [][]string {
	opts = opts.withDefaults()
	if len(items) == 0 {
		return nil
	}

	rowCount := (len(items) + opts.Columns - 1) / opts.Columns
	columns := opts.Columns
	if opts.Layout == ColumnMajor {
		// columns filled top to bottom can run out before the last one
		columns = (len(items) + rowCount - 1) / rowCount
	}
	rows := make([][]string, rowCount)
	for i := range rows {
		rows[i] = make([]string, columns)
		for j := range rows[i] {
			rows[i][j] = Filler
		}
	}

	for i, item := range items {
		row, col := i/opts.Columns, i%opts.Columns
		if opts.Layout == ColumnMajor {
			row, col = i%rowCount, i/rowCount
		}
		rows[row][col] = item
	}
	return rows
}

func newTable(opts Options) table.Writer {
	style := opts.Style
	// keep headers as written instead of upper casing them
	style.Format.Header = text.FormatDefault
	t := table.NewWriter()
	t.SetStyle(style)
	return t
}

// Table renders items as a text table with a "Column N" header.
func Table(items []string, opts Options) string {
	opts = opts.withDefaults()

	grid := Grid(items, opts)
	columns := opts.Columns
	if len(grid) > 0 {
		columns = len(grid[0])
	}

	t := newTable(opts)
	header := table.Row{}
	for i := 0; i < columns; i++ {
		header = append(header, fmt.Sprintf("Column %d", i+1))
	}
	t.AppendHeader(header)

	for _, cells := range grid {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// Vocabulary renders every shape with the slot it occupies and the primary
// stats it can roll.
func Vocabulary(style table.Style) string {
	if style.Name == "" {
		style = table.StyleLight
	}
	t := newTable(Options{Style: style})
	t.AppendHeader(table.Row{"Shape", "Slot", "Primary stats"})
	for _, shape := range modmeta.Shapes() {
		rule, _ := modmeta.RuleFor(shape)
		t.AppendRow(table.Row{
			shape,
			rule.Slot.String(),
			strings.Join(rule.Primaries(), ", "),
		})
	}
	return t.Render()
}

// Sets renders the list of mod sets.
func Sets(style table.Style) string {
	if style.Name == "" {
		style = table.StyleLight
	}
	t := newTable(Options{Style: style})
	t.AppendHeader(table.Row{"Set"})
	for _, name := range modmeta.SetNames() {
		t.AppendRow(table.Row{name})
	}
	return t.Render()
}
