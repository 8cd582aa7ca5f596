// Package output renders datasets for the terminal or for other tools.
//
// Supported formats:
//   - Table: bordered grid, the default for interactive use
//   - CSV: header row followed by records
//   - JSON Lines: one JSON object per record
//
// All formatters write columns in the order they were read from the source.
//
// # Basic Usage
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// # Single Values
//
// Aggregates print as a one cell table labelled with the function name:
//
//	output.FormatScalar(formatter, "avg", output.FormatNumber(602))
//
// # Wide Cells
//
// The table formatter can cut long cells to a display width. Width is
// measured in terminal columns, so CJK text and emoji count double:
//
//	table := output.NewTableFormatter(os.Stdout)
//	table.SetMaxWidth(20)
package output
