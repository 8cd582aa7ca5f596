package query

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identPattern matches a column name: letters, digits and underscore
const identPattern = `[\p{L}\p{N}_]+`

// Patterns are anchored at the start only. Text after a valid match is
// ignored, so "price=ascending" orders ascending by price.
var (
	wherePattern   = regexp.MustCompile(`^(` + identPattern + `)\s*(!=|>=|<=|=|>|<)\s*(.+)`)
	orderByPattern = regexp.MustCompile(`^(` + identPattern + `)\s*=\s*((?i:asc|desc))`)
	identRegexp    = regexp.MustCompile(`^` + identPattern + `$`)
)

// ParseWhere parses a filter expression such as "price>100" or "brand=apple".
//
// The value is typed here: literals containing "." become float64, other
// numeric literals int64, and anything unparseable stays a string.
func ParseWhere(expr string) (*FilterDirective, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	m := wherePattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("%w for filtering: %q", ErrInvalidFormat, expr)
	}

	key, symbol, rest := m[1], m[2], m[3]
	if err := ValidateColumnName(key); err != nil {
		return nil, err
	}

	op, ok := ParseOperator(symbol)
	if !ok {
		return nil, fmt.Errorf("%w for filtering: unknown operator %q", ErrInvalidFormat, symbol)
	}

	return &FilterDirective{
		Key:      key,
		Operator: op,
		Value:    parseLiteral(strings.TrimSpace(rest)),
	}, nil
}

// ParseOrderBy parses a sort expression such as "price=asc" or "rating=DESC".
func ParseOrderBy(expr string) (*OrderDirective, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	m := orderByPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("%w for sorting: %q", ErrInvalidFormat, expr)
	}

	if err := ValidateColumnName(m[1]); err != nil {
		return nil, err
	}

	return &OrderDirective{
		Key:        m[1],
		Descending: strings.EqualFold(m[2], "desc"),
	}, nil
}

// AggregateParser parses "<column>=<function>" expressions.
//
// The accepted function names are taken from the registry when the parser
// is built, so functions registered later need a new parser.
type AggregateParser struct {
	registry *Registry
	pattern  *regexp.Regexp
}

// NewAggregateParser builds a parser accepting the functions in reg
func NewAggregateParser(reg *Registry) *AggregateParser {
	p := &AggregateParser{registry: reg}

	names := reg.Names()
	if len(names) == 0 {
		return p
	}

	// Longest first so "maxabs" is not cut short by "max"
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}

	p.pattern = regexp.MustCompile(`^(` + identPattern + `)\s*=\s*(` + strings.Join(names, "|") + `)`)
	return p
}

// Parse parses an aggregate expression such as "price=avg"
func (p *AggregateParser) Parse(expr string) (*AggregateDirective, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	if p.pattern == nil {
		return nil, fmt.Errorf("%w for aggregation: %q (no functions registered)", ErrInvalidFormat, expr)
	}

	m := p.pattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, fmt.Errorf("%w for aggregation: %q (functions: %s)",
			ErrInvalidFormat, expr, strings.Join(p.registry.Names(), ", "))
	}

	if err := ValidateColumnName(m[1]); err != nil {
		return nil, err
	}

	return &AggregateDirective{
		Key:      m[1],
		Function: m[2],
	}, nil
}

// ParseAggregate parses expr against the default registry
func ParseAggregate(expr string) (*AggregateDirective, error) {
	return NewAggregateParser(DefaultRegistry()).Parse(expr)
}
