package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvtab/reader"
)

// ellipsis marks truncated cells
const ellipsis = "…"

// TableFormatter renders rows as a bordered text grid:
//
//	+------+-------+
//	| name | price |
//	+------+-------+
//	| ...  |   999 |
//	+------+-------+
//
// Numeric cells are right aligned. Headers are printed as they appear in
// the source.
type TableFormatter struct {
	writer   io.Writer
	maxWidth int
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// SetMaxWidth truncates cells wider than n terminal columns. Zero disables
// truncation.
func (t *TableFormatter) SetMaxWidth(n int) {
	t.maxWidth = n
}

// Format writes the dataset as a table. A dataset without records still
// prints its header.
func (t *TableFormatter) Format(ds *reader.Dataset) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(t.truncateAll(ds.Columns))

	for _, rec := range ds.Records {
		row := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			row[i] = t.truncate(rec[col])
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

func (t *TableFormatter) truncateAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = t.truncate(c)
	}
	return out
}

// truncate shortens s to maxWidth display columns, counting wide runes twice
func (t *TableFormatter) truncate(s string) string {
	if t.maxWidth <= 0 || runewidth.StringWidth(s) <= t.maxWidth {
		return s
	}
	return runewidth.Truncate(s, t.maxWidth, ellipsis)
}
