package query

import (
	"errors"
	"fmt"
)

// Validation limits for user supplied expressions
const (
	// MaxExpressionLength is the maximum allowed expression length in bytes
	MaxExpressionLength = 4096

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrInvalidFormat is returned when an expression does not match its grammar
	ErrInvalidFormat = errors.New("invalid expression format")

	// ErrFieldNotFound is returned when a directive names a column absent from the data
	ErrFieldNotFound = errors.New("field not found")

	// ErrNonNumericField is returned when an aggregated column holds non-numeric text
	ErrNonNumericField = errors.New("field contains non-numeric values")

	// ErrIncomparableTypes is returned when a number and text are ordered against each other
	ErrIncomparableTypes = errors.New("incomparable types")

	// ErrExpressionTooLong is returned when an expression exceeds MaxExpressionLength
	ErrExpressionTooLong = errors.New("expression too long")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateExpression checks the expression length limit
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(expr), MaxExpressionLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}
