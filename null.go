package xrow

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// nullWith is the single path behind every Null* accessor. It fetches the
// untyped value, maps nil to an invalid sql.Null[T] and converts anything else.
func nullWith[T any](c Cursor, op, name string) (sql.Null[T], error) {
	i, err := resolve(c, name)
	if err != nil {
		return sql.Null[T]{}, columnErr(op, name, err)
	}
	raw, err := c.Value(i)
	if err != nil {
		return sql.Null[T]{}, columnErr(op, name, err)
	}
	if raw == nil {
		return sql.Null[T]{}, nil
	}
	v, err := convert[T](raw)
	if err != nil {
		return sql.Null[T]{}, columnErr(op, name, err)
	}
	return sql.Null[T]{V: v, Valid: true}, nil
}

// NullBool reads a nullable bool column. NULL yields Valid == false.
func NullBool(c Cursor, name string) (sql.Null[bool], error) {
	return nullWith[bool](c, "NullBool", name)
}

func NullByte(c Cursor, name string) (sql.Null[byte], error) {
	return nullWith[byte](c, "NullByte", name)
}

func NullInt16(c Cursor, name string) (sql.Null[int16], error) {
	return nullWith[int16](c, "NullInt16", name)
}

// NullInt32 reads a nullable 32-bit integer column.
//
// A stored value is converted with database/sql's Scan rules, so an int64
// holding 42 reads as 42 while one outside the int32 range fails with
// [ErrTypeMismatch].
func NullInt32(c Cursor, name string) (sql.Null[int32], error) {
	return nullWith[int32](c, "NullInt32", name)
}

func NullInt64(c Cursor, name string) (sql.Null[int64], error) {
	return nullWith[int64](c, "NullInt64", name)
}

func NullFloat32(c Cursor, name string) (sql.Null[float32], error) {
	return nullWith[float32](c, "NullFloat32", name)
}

func NullFloat64(c Cursor, name string) (sql.Null[float64], error) {
	return nullWith[float64](c, "NullFloat64", name)
}

// NullDecimal reads a nullable exact numeric column.
func NullDecimal(c Cursor, name string) (sql.Null[decimal.Decimal], error) {
	return nullWith[decimal.Decimal](c, "NullDecimal", name)
}

// NullTime reads a nullable date/time column.
func NullTime(c Cursor, name string) (sql.Null[time.Time], error) {
	return nullWith[time.Time](c, "NullTime", name)
}

func NullUUID(c Cursor, name string) (sql.Null[uuid.UUID], error) {
	return nullWith[uuid.UUID](c, "NullUUID", name)
}
