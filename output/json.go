package output

import (
	"bufio"
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/csvtab/reader"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per record. Keys follow the column order
// of the source rather than alphabetical order.
func (j *JSONFormatter) Format(ds *reader.Dataset) error {
	bw := bufio.NewWriter(j.writer)

	// Keys are the same for every line
	keys := make([][]byte, len(ds.Columns))
	for i, col := range ds.Columns {
		k, err := json.Marshal(col)
		if err != nil {
			return err
		}
		keys[i] = k
	}

	for _, rec := range ds.Records {
		_ = bw.WriteByte('{')
		for i, col := range ds.Columns {
			if i > 0 {
				_ = bw.WriteByte(',')
			}
			v, err := json.Marshal(rec[col])
			if err != nil {
				return err
			}
			_, _ = bw.Write(keys[i])
			_ = bw.WriteByte(':')
			_, _ = bw.Write(v)
		}
		_, _ = bw.WriteString("}\n")
	}

	return bw.Flush()
}
