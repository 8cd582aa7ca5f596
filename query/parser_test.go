package query

import (
	"errors"
	"strings"
	"testing"
)

func TestParseWhere(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want FilterDirective
	}{
		{"integer value", "price>100", FilterDirective{"price", OpGreater, int64(100)}},
		{"float value", "rating>=4.5", FilterDirective{"rating", OpGreaterEqual, 4.5}},
		{"text value", "brand=apple", FilterDirective{"brand", OpEqual, "apple"}},
		{"not equal", "name!=test", FilterDirective{"name", OpNotEqual, "test"}},
		{"less equal", "price<=500", FilterDirective{"price", OpLessEqual, int64(500)}},
		{"less", "price<500", FilterDirective{"price", OpLess, int64(500)}},
		{"spaces around operator", "price >= 10", FilterDirective{"price", OpGreaterEqual, int64(10)}},
		{"value with spaces", "name=iphone 15 pro", FilterDirective{"name", OpEqual, "iphone 15 pro"}},
		{"value trimmed", "brand=  apple  ", FilterDirective{"brand", OpEqual, "apple"}},
		{"unicode column", "цена>100", FilterDirective{"цена", OpGreater, int64(100)}},
		{"underscore column", "unit_price<2.5", FilterDirective{"unit_price", OpLess, 2.5}},
		{"value starting with operator", "a==1", FilterDirective{"a", OpEqual, "=1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWhere(tt.expr)
			if err != nil {
				t.Fatalf("ParseWhere(%q) error = %v", tt.expr, err)
			}
			if *got != tt.want {
				t.Errorf("ParseWhere(%q) = %+v, want %+v", tt.expr, *got, tt.want)
			}
		})
	}
}

func TestParseWhere_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"no operator", "price"},
		{"no column", ">100"},
		{"no value", "price>"},
		{"leading space", " price>100"},
		{"unknown operator", "price~100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWhere(tt.expr)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseWhere(%q) error = %v, want %v", tt.expr, err, ErrInvalidFormat)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		expr string
		want OrderDirective
	}{
		{"price=asc", OrderDirective{"price", false}},
		{"rating=desc", OrderDirective{"rating", true}},
		{"name=asc", OrderDirective{"name", false}},
		{"brand=desc", OrderDirective{"brand", true}},
		{"brand=DESC", OrderDirective{"brand", true}},
		{"brand = Asc", OrderDirective{"brand", false}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseOrderBy(tt.expr)
			if err != nil {
				t.Fatalf("ParseOrderBy(%q) error = %v", tt.expr, err)
			}
			if *got != tt.want {
				t.Errorf("ParseOrderBy(%q) = %+v, want %+v", tt.expr, *got, tt.want)
			}
		})
	}
}

func TestParseOrderBy_Errors(t *testing.T) {
	for _, expr := range []string{"price=", "=asc", "price=sideways", "price=invalid", "", "invalid expression", "price>asc"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseOrderBy(expr)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseOrderBy(%q) error = %v, want %v", expr, err, ErrInvalidFormat)
			}
		})
	}
}

func TestParseAggregate(t *testing.T) {
	tests := []struct {
		expr string
		want AggregateDirective
	}{
		{"price=avg", AggregateDirective{"price", "avg"}},
		{"rating=max", AggregateDirective{"rating", "max"}},
		{"price=sum", AggregateDirective{"price", "sum"}},
		{"rating=min", AggregateDirective{"rating", "min"}},
		{"name=count", AggregateDirective{"name", "count"}},
		{"price = avg", AggregateDirective{"price", "avg"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseAggregate(tt.expr)
			if err != nil {
				t.Fatalf("ParseAggregate(%q) error = %v", tt.expr, err)
			}
			if *got != tt.want {
				t.Errorf("ParseAggregate(%q) = %+v, want %+v", tt.expr, *got, tt.want)
			}
		})
	}
}

func TestParseAggregate_Errors(t *testing.T) {
	for _, expr := range []string{"price=", "=avg", "price=unknown", "", "invalid", "price=AVG"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseAggregate(expr)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ParseAggregate(%q) error = %v, want %v", expr, err, ErrInvalidFormat)
			}
		})
	}
}

func TestAggregateParser_FollowsRegistry(t *testing.T) {
	reg := DefaultRegistry()

	// Built before registration: does not know the new name
	before := NewAggregateParser(reg)

	if err := reg.Register("median", func(v []float64) (float64, bool) { return 0, len(v) > 0 }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	after := NewAggregateParser(reg)

	if _, err := before.Parse("price=median"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("parser built before Register accepted median: err = %v", err)
	}

	got, err := after.Parse("price=median")
	if err != nil {
		t.Fatalf("Parse(price=median) error = %v", err)
	}
	if got.Function != "median" {
		t.Errorf("Function = %q, want %q", got.Function, "median")
	}
}

func TestAggregateParser_LongestNameWins(t *testing.T) {
	reg := DefaultRegistry()
	if err := reg.Register("maxabs", func(v []float64) (float64, bool) { return 0, true }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, err := NewAggregateParser(reg).Parse("x=maxabs")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Function != "maxabs" {
		t.Errorf("Function = %q, want %q", got.Function, "maxabs")
	}
}

func TestAggregateParser_EmptyRegistry(t *testing.T) {
	_, err := NewAggregateParser(NewRegistry()).Parse("price=avg")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse() error = %v, want %v", err, ErrInvalidFormat)
	}
}

// Matching is anchored at the start only: text after a valid expression is
// ignored rather than rejected.
func TestParsers_TrailingText(t *testing.T) {
	t.Run("order by", func(t *testing.T) {
		got, err := ParseOrderBy("price=descending please")
		if err != nil {
			t.Fatalf("ParseOrderBy() error = %v", err)
		}
		if got.Key != "price" || !got.Descending {
			t.Errorf("ParseOrderBy() = %+v, want price descending", *got)
		}
	})

	t.Run("aggregate", func(t *testing.T) {
		got, err := ParseAggregate("price=maximum")
		if err != nil {
			t.Fatalf("ParseAggregate() error = %v", err)
		}
		if got.Function != "max" {
			t.Errorf("Function = %q, want %q", got.Function, "max")
		}
	})

	t.Run("filter keeps the whole remainder", func(t *testing.T) {
		got, err := ParseWhere("price>100 and more")
		if err != nil {
			t.Fatalf("ParseWhere() error = %v", err)
		}
		if got.Value != "100 and more" {
			t.Errorf("Value = %#v, want %q", got.Value, "100 and more")
		}
	})
}

func TestParsers_Limits(t *testing.T) {
	long := strings.Repeat("a", MaxExpressionLength) + "=asc"
	if _, err := ParseOrderBy(long); !errors.Is(err, ErrExpressionTooLong) {
		t.Errorf("ParseOrderBy(long) error = %v, want %v", err, ErrExpressionTooLong)
	}

	wide := strings.Repeat("c", MaxColumnNameLength+1) + ">1"
	if _, err := ParseWhere(wide); !errors.Is(err, ErrColumnNameTooLong) {
		t.Errorf("ParseWhere(wide) error = %v, want %v", err, ErrColumnNameTooLong)
	}
}

func TestOperator_String(t *testing.T) {
	for _, symbol := range []string{"=", "!=", ">", "<", ">=", "<="} {
		op, ok := ParseOperator(symbol)
		if !ok {
			t.Fatalf("ParseOperator(%q) failed", symbol)
		}
		if op.String() != symbol {
			t.Errorf("Operator.String() = %q, want %q", op.String(), symbol)
		}
	}

	if _, ok := ParseOperator("=="); ok {
		t.Error("ParseOperator(==) should fail")
	}
}
