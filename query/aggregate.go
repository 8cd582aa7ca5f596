package query

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vegasq/csvtab/reader"
)

// AggregateFunc reduces a sequence of numbers. The boolean is false when
// the result is absent, which every built-in function reports for empty input.
type AggregateFunc func(values []float64) (float64, bool)

// Registry maps aggregate function names to their implementation.
//
// Parsers derive the accepted function names from a registry, so adding a
// function is a single Register call.
type Registry struct {
	funcs map[string]AggregateFunc
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]AggregateFunc)}
}

// DefaultRegistry returns a new registry holding min, max, avg, sum and count
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.funcs["min"] = aggregateMin
	r.funcs["max"] = aggregateMax
	r.funcs["avg"] = aggregateAvg
	r.funcs["sum"] = aggregateSum
	r.funcs["count"] = aggregateCount
	return r
}

// Register adds fn under name, replacing any existing entry.
// Names follow the column name rules: letters, digits and underscore.
func (r *Registry) Register(name string, fn AggregateFunc) error {
	if !identRegexp.MatchString(name) {
		return fmt.Errorf("invalid aggregate function name %q", name)
	}
	if fn == nil {
		return fmt.Errorf("aggregate function %q is nil", name)
	}
	r.funcs[name] = fn
	return nil
}

// Lookup returns the function registered under name
func (r *Registry) Lookup(name string) (AggregateFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func aggregateMin(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest, true
}

func aggregateMax(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	highest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest, true
}

func aggregateSum(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum, true
}

func aggregateAvg(values []float64) (float64, bool) {
	sum, ok := aggregateSum(values)
	if !ok {
		return 0, false
	}
	return sum / float64(len(values)), true
}

func aggregateCount(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return float64(len(values)), true
}

// ApplyAggregate reduces the agg.Key column of ds with the registered function.
//
// Every value must parse as a number; text fails with ErrNonNumericField.
// An empty dataset yields a result with Empty set instead of calling the function.
func ApplyAggregate(ds *reader.Dataset, agg *AggregateDirective, reg *Registry) (*AggregateResult, error) {
	if !ds.HasColumn(agg.Key) {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, agg.Key)
	}

	fn, ok := reg.Lookup(agg.Function)
	if !ok {
		return nil, fmt.Errorf("%w for aggregation: unknown function %q", ErrInvalidFormat, agg.Function)
	}

	cells := ds.Values(agg.Key)
	values := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %q has %q", ErrNonNumericField, agg.Key, cell)
		}
		values[i] = v
	}

	result := &AggregateResult{
		Key:      agg.Key,
		Function: agg.Function,
	}
	if len(values) == 0 {
		result.Empty = true
		return result, nil
	}

	result.Value, result.Present = fn(values)
	return result, nil
}
