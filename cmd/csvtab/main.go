package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vegasq/csvtab/config"
	"github.com/vegasq/csvtab/output"
	"github.com/vegasq/csvtab/query"
	"github.com/vegasq/csvtab/reader"
)

// options holds the parsed command line
type options struct {
	file       string
	where      string
	orderBy    string
	aggregate  string
	format     string
	delimiter  string
	encoding   string
	maxWidth   int
	configPath string
	verbose    bool
	schema     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("csvtab", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.file, "file", "", "Path to a delimited file (glob patterns read several files)")
	fs.StringVar(&opts.file, "f", "", "Shorthand for --file")
	fs.StringVar(&opts.where, "where", "", "Filter expression (e.g. \"price>500\")")
	fs.StringVar(&opts.where, "w", "", "Shorthand for --where")
	fs.StringVar(&opts.orderBy, "order-by", "", "Sort expression (e.g. \"price=desc\")")
	fs.StringVar(&opts.orderBy, "o", "", "Shorthand for --order-by")
	fs.StringVar(&opts.aggregate, "aggregate", "", "Aggregate expression (e.g. \"price=avg\")")
	fs.StringVar(&opts.aggregate, "a", "", "Shorthand for --aggregate")
	fs.StringVar(&opts.format, "format", "", "Output format: table, csv, jsonl")
	fs.StringVar(&opts.delimiter, "delimiter", "", "Field delimiter of the source (default \",\")")
	fs.StringVar(&opts.encoding, "encoding", "", "Source text encoding (e.g. windows-1251)")
	fs.IntVar(&opts.maxWidth, "max-width", 0, "Truncate table cells wider than N columns (0 = unlimited)")
	fs.StringVar(&opts.configPath, "config", "", "YAML file with default settings (or $"+config.EnvConfigPath+")")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log pipeline stages to stderr")
	fs.BoolVar(&opts.schema, "schema", false, "Show column types instead of data")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvtab --file <path> [options]\n\n")
		fmt.Fprintf(stderr, "Filter, sort and aggregate tabular data from CSV files.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  csvtab -f phones.csv\n")
		fmt.Fprintf(stderr, "  csvtab -f phones.csv -w \"brand=apple\" -o \"price=desc\"\n")
		fmt.Fprintf(stderr, "  csvtab -f phones.csv -w \"rating>4.5\" -a \"price=avg\"\n")
		fmt.Fprintf(stderr, "  csvtab -f \"data/*.csv\" --format jsonl\n")
		fmt.Fprintf(stderr, "  csvtab -f phones.csv --schema\n")
	}

	return fs
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.file == "" {
		fmt.Fprintf(stderr, "Error: missing --file argument\n\n")
		fs.Usage()
		return 1
	}

	if opts.schema && (opts.where != "" || opts.orderBy != "" || opts.aggregate != "") {
		fmt.Fprintf(stderr, "Error: --schema cannot be combined with --where, --order-by or --aggregate\n")
		return 1
	}

	cfg, err := loadConfig(fs, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if table, ok := formatter.(*output.TableFormatter); ok {
		table.SetMaxWidth(cfg.MaxWidth)
	}

	// Expressions are checked before any data is read
	q, err := query.Compile(query.Options{
		Where:     opts.where,
		OrderBy:   opts.orderBy,
		Aggregate: opts.aggregate,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing expression: %v\n", err)
		return 1
	}

	ds, err := reader.ReadFiles(opts.file, reader.Options{
		Delimiter: delimiter,
		Encoding:  cfg.Encoding,
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", opts.file)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	if opts.schema {
		if err := formatter.Format(query.SchemaDataset(query.DescribeColumns(ds))); err != nil {
			fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
			return 1
		}
		return 0
	}

	result, err := q.Execute(ds)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, query.ErrFieldNotFound) {
			fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(ds.Columns, ", "))
		}
		return 1
	}

	if agg := result.Aggregate; agg != nil {
		if agg.Empty {
			fmt.Fprintln(stdout, "no data to aggregate")
			return 0
		}

		value := ""
		if agg.Present {
			value = output.FormatNumber(agg.Value)
		}
		if err := output.FormatScalar(formatter, agg.Function, value); err != nil {
			fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
			return 1
		}
		return 0
	}

	if err := formatter.Format(result.Data); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig reads the config file and applies explicitly set flags on top
func loadConfig(fs *flag.FlagSet, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath, os.Getenv)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = opts.format
		case "delimiter":
			cfg.Delimiter = opts.delimiter
		case "encoding":
			cfg.Encoding = opts.encoding
		case "max-width":
			cfg.MaxWidth = opts.maxWidth
		case "verbose":
			cfg.Verbose = opts.verbose
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a development console logger writing to w when verbose
// is set, and a no-op logger otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
