package query

import "fmt"

// Operator is a filter comparison operator
type Operator int

const (
	OpEqual        Operator = iota // =
	OpNotEqual                     // !=
	OpGreater                      // >
	OpLess                         // <
	OpGreaterEqual                 // >=
	OpLessEqual                    // <=
)

var operatorSymbols = map[Operator]string{
	OpEqual:        "=",
	OpNotEqual:     "!=",
	OpGreater:      ">",
	OpLess:         "<",
	OpGreaterEqual: ">=",
	OpLessEqual:    "<=",
}

// String returns the operator symbol
func (o Operator) String() string {
	if s, ok := operatorSymbols[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// ParseOperator maps a symbol to its Operator
func ParseOperator(symbol string) (Operator, bool) {
	for op, s := range operatorSymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

// FilterDirective keeps records whose Key column compares true against Value.
//
// Value is an int64, float64 or string, decided when the expression is parsed.
type FilterDirective struct {
	Key      string
	Operator Operator
	Value    interface{}
}

// OrderDirective sorts records by a single column
type OrderDirective struct {
	Key        string
	Descending bool
}

// AggregateDirective reduces one column with a registered function
type AggregateDirective struct {
	Key      string
	Function string
}

// AggregateResult is the outcome of the aggregate stage.
//
// Empty is set when no records survived filtering; the function is not
// invoked in that case. Present is false when the function reports an
// absent result.
type AggregateResult struct {
	Key      string
	Function string
	Value    float64
	Present  bool
	Empty    bool
}
