package xrow

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// getWith is the single path behind every non-nullable accessor: resolve name,
// apply the null policy of k, then call read at the resolved ordinal.
// present is false only when k degrades and the column is NULL.
func getWith[T any](c Cursor, op, name string, k Kind, read func(int) (T, error)) (v T, present bool, err error) {
	i, err := resolve(c, name)
	if err != nil {
		return v, false, columnErr(op, name, err)
	}
	absent, err := absentByPolicy(c, i, k)
	if err != nil {
		return v, false, columnErr(op, name, err)
	}
	if absent {
		return v, false, nil
	}
	v, err = read(i)
	if err != nil {
		return v, false, columnErr(op, name, err)
	}
	return v, true, nil
}

// absentByPolicy reports whether the value at i is NULL and k degrades to
// absence. Propagating kinds never consult IsNull.
func absentByPolicy(c Cursor, i int, k Kind) (bool, error) {
	if PolicyFor(k) != DegradeToAbsent {
		return false, nil
	}
	return c.IsNull(i)
}

// Bool reads a bool column of the current row.
func Bool(c Cursor, name string) (bool, error) {
	v, _, err := getWith(c, "Bool", name, KindBool, c.Bool)
	return v, err
}

// Byte reads a byte column of the current row.
func Byte(c Cursor, name string) (byte, error) {
	v, _, err := getWith(c, "Byte", name, KindByte, c.Byte)
	return v, err
}

// Int16 reads a 16-bit integer column of the current row.
func Int16(c Cursor, name string) (int16, error) {
	v, _, err := getWith(c, "Int16", name, KindInt16, c.Int16)
	return v, err
}

// Int32 reads a 32-bit integer column of the current row.
//
// It does not check for NULL itself: the cursor's typed reader decides, and a
// NULL column yields an error matching [ErrNullValue]. Use [NullInt32] when the
// column is nullable.
//
// Example:
//
//	rows, err := xrow.NewRows(sqlRows)
//	if err != nil {
//	    return err
//	}
//	for rows.Next() {
//	    id, err := xrow.Int32(rows, "id")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(id)
//	}
//	return rows.Err()
func Int32(c Cursor, name string) (int32, error) {
	v, _, err := getWith(c, "Int32", name, KindInt32, c.Int32)
	return v, err
}

// Int64 reads a 64-bit integer column of the current row.
func Int64(c Cursor, name string) (int64, error) {
	v, _, err := getWith(c, "Int64", name, KindInt64, c.Int64)
	return v, err
}

func Float32(c Cursor, name string) (float32, error) {
	v, _, err := getWith(c, "Float32", name, KindFloat32, c.Float32)
	return v, err
}

func Float64(c Cursor, name string) (float64, error) {
	v, _, err := getWith(c, "Float64", name, KindFloat64, c.Float64)
	return v, err
}

// Decimal reads an exact numeric column as a [decimal.Decimal].
func Decimal(c Cursor, name string) (decimal.Decimal, error) {
	v, _, err := getWith(c, "Decimal", name, KindDecimal, c.Decimal)
	return v, err
}

// Time reads a date/time column of the current row.
func Time(c Cursor, name string) (time.Time, error) {
	v, _, err := getWith(c, "Time", name, KindTime, c.Time)
	return v, err
}

// UUID reads a uuid column of the current row.
func UUID(c Cursor, name string) (uuid.UUID, error) {
	v, _, err := getWith(c, "UUID", name, KindUUID, c.UUID)
	return v, err
}

// String reads a text column of the current row.
//
// Unlike the numeric accessors, String checks for NULL before reading and
// returns an invalid [sql.Null] instead of an error, so a nullable text column
// never fails on absence:
//
//	name, err := xrow.String(rows, "name")
//	if err != nil {
//	    return err
//	}
//	if !name.Valid {
//	    // NULL
//	}
func String(c Cursor, name string) (sql.Null[string], error) {
	v, ok, err := getWith(c, "String", name, KindString, c.String)
	return sql.Null[string]{V: v, Valid: ok}, err
}
