package query

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vegasq/csvtab/reader"
)

// errUnordered is returned by compareValues when either number is NaN
var errUnordered = errors.New("unordered values")

// compare compares two values using the given operator.
//
// Numbers compare numerically regardless of integer or float type and text
// compares byte-wise. A number and text are never equal; ordering them
// fails with ErrIncomparableTypes. NaN is unequal to everything and every
// ordering against it is false.
func compare(left interface{}, operator Operator, right interface{}) (bool, error) {
	cmp, err := compareValues(left, right)
	if errors.Is(err, errUnordered) {
		return operator == OpNotEqual, nil
	}
	if err != nil {
		switch operator {
		case OpEqual:
			return false, nil
		case OpNotEqual:
			return true, nil
		}
		return false, fmt.Errorf("%w: %v %s %v", err, left, operator, right)
	}

	switch operator {
	case OpEqual:
		return cmp == 0, nil
	case OpNotEqual:
		return cmp != 0, nil
	case OpLess:
		return cmp < 0, nil
	case OpGreater:
		return cmp > 0, nil
	case OpLessEqual:
		return cmp <= 0, nil
	case OpGreaterEqual:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unknown operator %v", operator)
	}
}

// compareValues compares two values and returns:
// -1 if a < b
//
//	0 if a == b
//
// +1 if a > b
func compareValues(a, b interface{}) (int, error) {
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		if math.IsNaN(aNum) || math.IsNaN(bNum) {
			return 0, errUnordered
		}
		switch {
		case aNum < bNum:
			return -1, nil
		case aNum > bNum:
			return 1, nil
		default:
			return 0, nil
		}
	}

	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch {
		case aStr < bStr:
			return -1, nil
		case aStr > bStr:
			return 1, nil
		default:
			return 0, nil
		}
	}

	return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrIncomparableTypes, a, b)
}

// ApplyFilter returns a dataset holding the records that satisfy filter.
// The record side is coerced before comparison; the filter value was typed
// at parse time.
func ApplyFilter(ds *reader.Dataset, filter *FilterDirective) (*reader.Dataset, error) {
	if filter == nil {
		return ds, nil
	}

	if !ds.HasColumn(filter.Key) {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, filter.Key)
	}

	filtered := make([]reader.Record, 0)
	for _, rec := range ds.Records {
		match, err := compare(Coerce(rec[filter.Key]), filter.Operator, filter.Value)
		if err != nil {
			return nil, fmt.Errorf("filter on %q: %w", filter.Key, err)
		}
		if match {
			filtered = append(filtered, rec)
		}
	}

	return ds.WithRecords(filtered), nil
}

// ApplyOrderBy returns a dataset with records stably sorted by the coerced
// value of order.Key. The input dataset is left untouched.
func ApplyOrderBy(ds *reader.Dataset, order *OrderDirective) (*reader.Dataset, error) {
	if order == nil {
		return ds, nil
	}

	if !ds.HasColumn(order.Key) {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, order.Key)
	}

	keys := make([]interface{}, len(ds.Records))
	var numeric, textual int
	for i, rec := range ds.Records {
		keys[i] = Coerce(rec[order.Key])
		if _, ok := keys[i].(float64); ok {
			numeric++
		} else {
			textual++
		}
	}

	// Mixed columns have no defined order
	if numeric > 0 && textual > 0 {
		return nil, fmt.Errorf("%w: %q mixes %d numeric and %d text values",
			ErrIncomparableTypes, order.Key, numeric, textual)
	}

	// Sort indexes so keys stay aligned with their records
	idx := make([]int, len(ds.Records))
	for i := range idx {
		idx[i] = i
	}

	// NaN keys go last in both directions
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := keys[idx[i]], keys[idx[j]]
		if aNaN, bNaN := isNaN(a), isNaN(b); aNaN || bNaN {
			return !aNaN && bNaN
		}
		// Keys are all numbers or all text here, so comparison cannot fail
		cmp, _ := compareValues(a, b)
		if order.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	sorted := make([]reader.Record, len(idx))
	for i, k := range idx {
		sorted[i] = ds.Records[k]
	}

	return ds.WithRecords(sorted), nil
}

func isNaN(v interface{}) bool {
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}
