package query

import (
	"go.uber.org/zap"

	"github.com/vegasq/csvtab/reader"
)

// Options holds the raw expressions of one invocation. Empty expressions
// disable their stage.
type Options struct {
	Where     string
	OrderBy   string
	Aggregate string

	// Registry supplies aggregate functions; nil uses DefaultRegistry.
	Registry *Registry

	// Logger receives per-stage debug output; nil disables logging.
	Logger *zap.Logger
}

// Query is a compiled pipeline: filter, then sort, then aggregate.
type Query struct {
	Filter    *FilterDirective
	Order     *OrderDirective
	Aggregate *AggregateDirective

	registry *Registry
	logger   *zap.Logger
}

// Result is the output of Execute. Aggregate is set only when the query
// has an aggregate stage; Data then holds the rows it was computed from.
type Result struct {
	Data      *reader.Dataset
	Aggregate *AggregateResult
}

// Compile parses every expression in opts. Any malformed expression fails
// here, before a single row is read.
func Compile(opts Options) (*Query, error) {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	q := &Query{
		registry: reg,
		logger:   logger,
	}

	if opts.Where != "" {
		filter, err := ParseWhere(opts.Where)
		if err != nil {
			return nil, err
		}
		q.Filter = filter
		logger.Debug("parsed filter",
			zap.String("key", filter.Key),
			zap.Stringer("operator", filter.Operator),
			zap.Any("value", filter.Value))
	}

	if opts.OrderBy != "" {
		order, err := ParseOrderBy(opts.OrderBy)
		if err != nil {
			return nil, err
		}
		q.Order = order
		logger.Debug("parsed order",
			zap.String("key", order.Key),
			zap.Bool("descending", order.Descending))
	}

	if opts.Aggregate != "" {
		agg, err := NewAggregateParser(reg).Parse(opts.Aggregate)
		if err != nil {
			return nil, err
		}
		q.Aggregate = agg
		logger.Debug("parsed aggregate",
			zap.String("key", agg.Key),
			zap.String("function", agg.Function))
	}

	return q, nil
}

// Execute runs the pipeline over ds. The input dataset is not modified.
func (q *Query) Execute(ds *reader.Dataset) (*Result, error) {
	q.logger.Debug("loaded", zap.Int("rows", ds.Len()), zap.Strings("columns", ds.Columns))

	data, err := ApplyFilter(ds, q.Filter)
	if err != nil {
		return nil, err
	}
	if q.Filter != nil {
		q.logger.Debug("filtered", zap.Int("rows", data.Len()))
	}

	data, err = ApplyOrderBy(data, q.Order)
	if err != nil {
		return nil, err
	}
	if q.Order != nil {
		q.logger.Debug("sorted", zap.String("key", q.Order.Key))
	}

	result := &Result{Data: data}
	if q.Aggregate == nil {
		return result, nil
	}

	agg, err := ApplyAggregate(data, q.Aggregate, q.registry)
	if err != nil {
		return nil, err
	}
	result.Aggregate = agg
	q.logger.Debug("aggregated",
		zap.String("function", agg.Function),
		zap.Int("values", data.Len()),
		zap.Bool("empty", agg.Empty))

	return result, nil
}
