package output

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vegasq/csvtab/reader"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a dataset in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the dataset's records with columns in schema order
	Format(ds *reader.Dataset) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name: table, csv or jsonl.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table", "":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, csv, jsonl)", name)
	}
}

// FormatScalar renders a single labelled value as a one row, one column dataset.
func FormatScalar(f Formatter, label, value string) error {
	return f.Format(&reader.Dataset{
		Columns: []string{label},
		Records: []reader.Record{{label: value}},
	})
}

// FormatNumber renders v in the shortest form that reads back exactly,
// so whole numbers print without a fraction ("10", "659.8").
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
