/*
Package xrow reads columns of the current row of a forward-only result by name,
as concrete Go types, with predictable NULL handling. It sits on top of any
[Cursor]: a *sql.Rows wrapped by [NewRows], pgx rows wrapped by pgxrow.New, or a
driver-specific reader of your own.

# Overview

Every accessor has the shape (cursor, column name) -> value. It resolves the
name to an ordinal, reads that one column of the current row, and never
advances the cursor.

	rows, err := xrow.NewRows(sqlRows)
	...
	for rows.Next() {
	    id, err := xrow.Int32(rows, "id")
	    name, err := xrow.String(rows, "name")       // sql.Null[string]
	    score, err := xrow.NullFloat64(rows, "score") // sql.Null[float64]
	    payload, err := xrow.Bytes(rows, "payload")   // nil when NULL
	}

# NULL handling

  - Bool, Byte, Int16, Int32, Int64, Float32, Float64, Decimal, Time and UUID
    leave NULL to the cursor's typed reader, which fails with ErrNullValue.
  - String and Bytes check for NULL first and return the absent value instead:
    an invalid sql.Null[string] or a nil slice.
  - The Null* accessors read the untyped value and return sql.Null[T], invalid
    for NULL.

The split is a table, not ad hoc control flow; see [PolicyFor].

# Conversion

Stored values are converted with database/sql's Scan rules: numeric parsing
with range checks, []byte to string, and sql.Scanner targets such as
decimal.Decimal and uuid.UUID. A value that cannot be converted fails with
ErrTypeMismatch.

# Binary values

Bytes reassembles a binary value of any length from a cursor that transfers at
most a bounded chunk per call. By default offsets advance by the fixed chunk
size after every call; WithReassembly(ReassembleStrict) advances them by the
bytes actually transferred instead, which keeps the value intact when a cursor
returns short chunks.

# Error handling

Failures are wrapped in *ColumnError naming the accessor and column, and match
ErrUnknownColumn, ErrNullValue, ErrTypeMismatch or ErrShortRead with errors.Is.
Errors raised by a cursor's ReadChunk are returned unchanged. Nothing is
retried.

# Concurrency

A Cursor belongs to one goroutine. The accessors keep no state of their own.
*/
package xrow
