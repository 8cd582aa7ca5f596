package reader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// maxFiles limits how many files a glob pattern may expand to
const maxFiles = 1000

// FileColumn is added to every record when several files are read together.
const FileColumn = "_file"

// ReadFile reads a single source into memory.
//
// Files ending in .parquet are read as parquet; everything else is treated
// as delimited text, optionally compressed (.gz, .zst).
func ReadFile(path string, opts Options) (*Dataset, error) {
	if baseExt(path) == ".parquet" {
		r, err := NewParquetReader(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll()
	}

	r, err := NewCSVReader(path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadAll()
}

// ReadFiles reads every file matching a glob pattern.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// A pattern without wildcards behaves like ReadFile. When a glob is used,
// all files must share the same header and each record is tagged with a
// "_file" column holding its source path.
func ReadFiles(pattern string, opts Options) (*Dataset, error) {
	if !strings.ContainsAny(pattern, "*?[]") {
		return ReadFile(pattern, opts)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var combined *Dataset
	for _, path := range matches {
		ds, err := ReadFile(path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if combined == nil {
			combined = &Dataset{
				Columns: append(append([]string{}, ds.Columns...), FileColumn),
				Records: make([]Record, 0, ds.Len()),
			}
		} else if !slices.Equal(combined.Columns[:len(combined.Columns)-1], ds.Columns) {
			return nil, fmt.Errorf("%w: %s has columns %v, want %v",
				ErrHeaderMismatch, path, ds.Columns, combined.Columns[:len(combined.Columns)-1])
		}

		for _, rec := range ds.Records {
			rec[FileColumn] = path
			combined.Records = append(combined.Records, rec)
		}
	}

	return combined, nil
}
