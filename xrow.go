package xrow

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cursor is the current row of a forward-only result, addressed by ordinal.
// *Record, *Rows and pgxrow.Cursor implement it; any driver-specific reader can
// too. The accessors in this package never advance a Cursor.
//
// Typed readers return an error matching [ErrNullValue] when the stored value is
// NULL and [ErrTypeMismatch] when it cannot be converted.
type Cursor interface {
	// Ordinal maps a column name to its zero-based position.
	Ordinal(name string) (int, error)
	IsNull(i int) (bool, error)

	Bool(i int) (bool, error)
	Byte(i int) (byte, error)
	Int16(i int) (int16, error)
	Int32(i int) (int32, error)
	Int64(i int) (int64, error)
	Float32(i int) (float32, error)
	Float64(i int) (float64, error)
	Decimal(i int) (decimal.Decimal, error)
	Time(i int) (time.Time, error)
	String(i int) (string, error)
	UUID(i int) (uuid.UUID, error)

	// Value returns the stored value untyped; nil means NULL.
	Value(i int) (any, error)

	// ReadChunk copies at most n bytes of the binary value at ordinal i, starting
	// at srcOff, into dst[dstOff:] and reports how many bytes it copied. It may
	// copy fewer than n. With a nil dst and n == 0 it returns the full length of
	// the value instead.
	ReadChunk(i int, srcOff int64, dst []byte, dstOff, n int) (int, error)
}

// Ordinal resolves a column name against c. Lookup failures match
// [ErrUnknownColumn] and still wrap the cursor's own error.
func Ordinal(c Cursor, name string) (int, error) {
	i, err := resolve(c, name)
	if err != nil {
		return 0, columnErr("Ordinal", name, err)
	}
	return i, nil
}

func resolve(c Cursor, name string) (int, error) {
	i, err := c.Ordinal(name)
	if err == nil {
		return i, nil
	}
	if errors.Is(err, ErrUnknownColumn) {
		return 0, err
	}
	return 0, fmt.Errorf("%w: %w", ErrUnknownColumn, err)
}
