package output

import (
	"encoding/csv"
	"io"

	"github.com/vegasq/csvtab/reader"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header followed by one line per record, columns in
// source order
func (c *CSVFormatter) Format(ds *reader.Dataset) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(ds.Columns); err != nil {
		return err
	}

	record := make([]string, len(ds.Columns))
	for _, rec := range ds.Records {
		for i, col := range ds.Columns {
			record[i] = rec[col]
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
