package query

import (
	"strconv"
	"strings"

	"github.com/vegasq/csvtab/reader"
)

// Column kinds reported by DescribeColumns.
const (
	KindNumber = "number"
	KindText   = "text"
	KindMixed  = "mixed"
	KindEmpty  = "empty"
)

// ColumnInfo summarizes one column of a dataset.
type ColumnInfo struct {
	Name string
	// Kind is the coerced type of the column's non-blank values.
	Kind    string
	Values  int
	Blank   int
	Numbers int
}

// DescribeColumns reports how every column's values coerce.
//
// A column whose non-blank values are all numbers is a number column, one
// with only text is a text column. Columns holding both cannot be sorted and
// are reported as mixed.
func DescribeColumns(ds *reader.Dataset) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(ds.Columns))
	for _, name := range ds.Columns {
		info := ColumnInfo{Name: name}
		for _, rec := range ds.Records {
			v := rec[name]
			if strings.TrimSpace(v) == "" {
				info.Blank++
				continue
			}
			info.Values++
			if _, ok := Coerce(v).(float64); ok {
				info.Numbers++
			}
		}

		switch {
		case info.Values == 0:
			info.Kind = KindEmpty
		case info.Numbers == info.Values:
			info.Kind = KindNumber
		case info.Numbers == 0:
			info.Kind = KindText
		default:
			info.Kind = KindMixed
		}
		infos = append(infos, info)
	}
	return infos
}

// SchemaDataset converts column summaries into a dataset for rendering.
func SchemaDataset(infos []ColumnInfo) *reader.Dataset {
	ds := &reader.Dataset{
		Columns: []string{"name", "type", "values", "blank"},
		Records: make([]reader.Record, 0, len(infos)),
	}
	for _, info := range infos {
		ds.Records = append(ds.Records, reader.Record{
			"name":   info.Name,
			"type":   info.Kind,
			"values": strconv.Itoa(info.Values),
			"blank":  strconv.Itoa(info.Blank),
		})
	}
	return ds
}
