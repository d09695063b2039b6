package xrow

import (
	"database/sql"
	"fmt"
)

// convert turns a stored driver value into T. Values already of type T pass
// through; everything else goes through database/sql's Scan conversion
// (numeric parsing with range checks, []byte→string, sql.Scanner targets such
// as decimal.Decimal and uuid.UUID).
func convert[T any](src any) (T, error) {
	if v, ok := src.(T); ok {
		return v, nil
	}
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	if !n.Valid {
		return n.V, ErrNullValue
	}
	return n.V, nil
}
