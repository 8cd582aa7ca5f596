// Package query parses and evaluates csvtab expressions over in-memory datasets.
//
// Three small grammars are supported, one per pipeline stage:
//   - Filter: "<column><op><value>" with op one of = != > < >= <=
//   - Order:  "<column>=asc" or "<column>=desc"
//   - Aggregate: "<column>=<function>" with function from a Registry
//
// Stages always run in the order filter, sort, aggregate. Each one is
// optional.
//
// # Basic Usage
//
//	q, err := query.Compile(query.Options{
//	    Where:   "brand=apple",
//	    OrderBy: "price=desc",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := q.Execute(ds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Value Typing
//
// Cells are raw text. Before comparing or sorting, a cell is coerced to a
// number when it parses as one (see Coerce). Filter values are typed when
// the expression is parsed: "4.5" is a float, "100" an integer and "apple"
// text. Numbers and text are never equal, and ordering one against the
// other fails with ErrIncomparableTypes.
//
// # Aggregation
//
// Aggregate functions live in a Registry. The parser built from a registry
// accepts exactly its names, so extending the language takes one call:
//
//	reg := query.DefaultRegistry()
//	_ = reg.Register("median", medianFunc)
//
//	q, err := query.Compile(query.Options{
//	    Aggregate: "price=median",
//	    Registry:  reg,
//	})
//
// Aggregated columns must be numeric in every surviving record. When the
// filter leaves nothing, the result is marked Empty rather than failing.
//
// # Matching
//
// Expressions are matched from the start; trailing text after a valid
// expression is ignored, so "price=descending" sorts descending.
package query
