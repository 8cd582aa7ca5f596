package reader

import "errors"

var (
	// ErrEmptySource is returned when a source has no header line
	ErrEmptySource = errors.New("source has no header")

	// ErrTooManyFields is returned when a row has more fields than the header
	ErrTooManyFields = errors.New("row has more fields than header")

	// ErrHeaderMismatch is returned when files read together have different headers
	ErrHeaderMismatch = errors.New("header mismatch")
)

// Record is a single row keyed by column name. Values are the raw cell text.
type Record map[string]string

// Dataset is an ordered set of records sharing one header-defined schema.
//
// Columns preserves the field order of the source and is used for display.
// Records are never edited in place; filtering and sorting build new slices.
type Dataset struct {
	Columns []string
	Records []Record
}

// HasColumn reports whether name is part of the schema.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// WithRecords returns a dataset with the same schema holding records.
func (d *Dataset) WithRecords(records []Record) *Dataset {
	return &Dataset{
		Columns: d.Columns,
		Records: records,
	}
}

// Values returns the cells of column in record order. Missing cells are "".
func (d *Dataset) Values(column string) []string {
	values := make([]string, len(d.Records))
	for i, rec := range d.Records {
		values[i] = rec[column]
	}
	return values
}
