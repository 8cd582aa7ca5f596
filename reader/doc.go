// Package reader loads tabular sources into memory as text datasets.
//
// A Dataset holds the header-defined column list and the records read from
// the source. Every cell is kept as raw text; interpreting values as numbers
// is left to the query package.
//
// # Basic Usage
//
// Reading a delimited file:
//
//	ds, err := reader.ReadFile("phones.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range ds.Records {
//	    fmt.Println(rec["brand"], rec["price"])
//	}
//
// Semicolon separated files in a legacy encoding:
//
//	ds, err := reader.ReadFile("export.csv", reader.Options{
//	    Delimiter: ';',
//	    Encoding:  "windows-1251",
//	})
//
// # Supported Sources
//
//   - Delimited text, with the first line naming the fields
//   - Gzip (.gz) and zstd (.zst) compressed delimited text
//   - Parquet files (.parquet), values rendered as text
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	ds, err := reader.ReadFiles("exports/*.csv", reader.Options{})
//
// All matched files must share one header. Each record gets a "_file"
// column with its source path.
//
// The package uses github.com/segmentio/parquet-go for parquet files and
// github.com/klauspost/compress for decompression.
package reader
