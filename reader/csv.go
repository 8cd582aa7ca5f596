package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// Options controls how delimited sources are decoded.
type Options struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune

	// Encoding names the text encoding of the source (e.g. "windows-1251").
	// Empty or "utf-8" reads the bytes as is.
	Encoding string
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// CSVReader reads a delimited text file whose first line names the fields.
type CSVReader struct {
	file   *os.File
	source io.ReadCloser
	opts   Options
}

// NewCSVReader opens path for reading.
//
// Compressed files (.gz, .zst) are decompressed transparently and the
// configured text encoding is decoded to UTF-8.
func NewCSVReader(path string, opts Options) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	source, err := decompress(path, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &CSVReader{
		file:   file,
		source: source,
		opts:   opts,
	}, nil
}

// ReadAll reads the header and every record into memory.
func (r *CSVReader) ReadAll() (*Dataset, error) {
	text, err := decodeText(r.source, r.opts.Encoding)
	if err != nil {
		return nil, err
	}
	return ReadCSV(text, r.opts)
}

// Close releases the decompressor and the underlying file.
func (r *CSVReader) Close() error {
	if r.source != nil {
		_ = r.source.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadCSV decodes delimited text from src.
//
// Rows shorter than the header are padded with empty cells. Rows longer than
// the header fail with ErrTooManyFields. Blank lines are skipped and stray
// quotes in unquoted fields are read literally.
func ReadCSV(src io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(src)
	cr.Comma = opts.delimiter()
	cr.FieldsPerRecord = -1
	// A bare quote inside an unquoted field is kept as text
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	ds := &Dataset{
		Columns: header,
		Records: make([]Record, 0),
	}

	for {
		fields, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(fields) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w (%d > %d)", line, ErrTooManyFields, len(fields), len(header))
		}

		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			} else {
				rec[col] = ""
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}
