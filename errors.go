package xrow

import (
	"errors"
	"strconv"
)

// ErrUnknownColumn is returned when a column name does not resolve to an ordinal
// in the cursor's current schema.
var ErrUnknownColumn = errors.New("xrow: unknown column")

// ErrNullValue is returned by a typed read whose type cannot represent an absent
// value (numbers, bool, decimal, time, uuid). Use the Null* accessors to tolerate NULL.
var ErrNullValue = errors.New("xrow: null value")

// ErrTypeMismatch is returned when a stored value cannot be converted to the
// requested Go type.
var ErrTypeMismatch = errors.New("xrow: type mismatch")

// ErrShortRead is returned by Bytes when the cursor stops transferring data
// before the declared length of a binary value has been read.
var ErrShortRead = errors.New("xrow: short binary read")

// ErrNoRow is returned when a cursor is read before a row has been loaded.
var ErrNoRow = errors.New("xrow: no current row")

// ErrOrdinalRange is returned when an ordinal is outside the cursor's schema.
var ErrOrdinalRange = errors.New("xrow: ordinal out of range")

// ColumnError records the accessor and column name behind a failed read.
type ColumnError struct {
	Op     string // accessor, e.g. "Int32" or "NullTime"
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return "xrow: " + e.Op + " " + strconv.Quote(e.Column) + ": " + e.Err.Error()
}

func (e *ColumnError) Unwrap() error { return e.Err }

func columnErr(op, column string, err error) error {
	return &ColumnError{Op: op, Column: column, Err: err}
}
