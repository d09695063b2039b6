package xrow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var _ Cursor = (*Record)(nil)

// Record is a Cursor over one materialized row: column names plus the driver
// values of the current row. Rows and pgxrow.Cursor load each row into a
// Record; it is also handy on its own for fixtures.
//
// Names match case-insensitively and ignore one layer of "", `` or [] quoting.
// When a name repeats, the first column wins.
type Record struct {
	columns []string
	index   map[string]int
	values  []any
}

// NewRecord builds a Record for columns. values may be nil until Reset loads a row.
func NewRecord(columns []string, values []any) *Record {
	r := &Record{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		key := normalizeColAscii(c)
		if _, ok := r.index[key]; !ok {
			r.index[key] = i
		}
	}
	r.Reset(values)
	return r
}

// Reset replaces the current row. The slice is retained, not copied.
func (r *Record) Reset(values []any) { r.values = values }

// Columns returns a copy of the column names in ordinal order.
func (r *Record) Columns() []string { return append([]string(nil), r.columns...) }

func (r *Record) Len() int { return len(r.columns) }

func (r *Record) Ordinal(name string) (int, error) {
	if i, ok := r.index[normalizeColAscii(name)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColumn, name)
}

func (r *Record) value(i int) (any, error) {
	if r.values == nil {
		return nil, ErrNoRow
	}
	if i < 0 || i >= len(r.values) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrOrdinalRange, i, len(r.values))
	}
	return r.values[i], nil
}

func (r *Record) IsNull(i int) (bool, error) {
	v, err := r.value(i)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// Value returns the stored driver value at i; nil means NULL.
func (r *Record) Value(i int) (any, error) { return r.value(i) }

func readAs[T any](r *Record, i int) (T, error) {
	v, err := r.value(i)
	if err != nil {
		var zero T
		return zero, err
	}
	if v == nil {
		var zero T
		return zero, ErrNullValue
	}
	return convert[T](v)
}

func (r *Record) Bool(i int) (bool, error)               { return readAs[bool](r, i) }
func (r *Record) Byte(i int) (byte, error)               { return readAs[byte](r, i) }
func (r *Record) Int16(i int) (int16, error)             { return readAs[int16](r, i) }
func (r *Record) Int32(i int) (int32, error)             { return readAs[int32](r, i) }
func (r *Record) Int64(i int) (int64, error)             { return readAs[int64](r, i) }
func (r *Record) Float32(i int) (float32, error)         { return readAs[float32](r, i) }
func (r *Record) Float64(i int) (float64, error)         { return readAs[float64](r, i) }
func (r *Record) Decimal(i int) (decimal.Decimal, error) { return readAs[decimal.Decimal](r, i) }
func (r *Record) Time(i int) (time.Time, error)          { return readAs[time.Time](r, i) }
func (r *Record) String(i int) (string, error)           { return readAs[string](r, i) }
func (r *Record) UUID(i int) (uuid.UUID, error)          { return readAs[uuid.UUID](r, i) }

// ReadChunk copies part of a []byte or string value. See [Cursor].
func (r *Record) ReadChunk(i int, srcOff int64, dst []byte, dstOff, n int) (int, error) {
	v, err := r.value(i)
	if err != nil {
		return 0, err
	}
	switch b := v.(type) {
	case []byte:
		return copyChunk(b, srcOff, dst, dstOff, n)
	case string:
		return copyChunk(b, srcOff, dst, dstOff, n)
	case nil:
		return 0, ErrNullValue
	default:
		return 0, fmt.Errorf("%w: %T is not binary", ErrTypeMismatch, v)
	}
}

func copyChunk[S []byte | string](src S, srcOff int64, dst []byte, dstOff, n int) (int, error) {
	if dst == nil && n == 0 {
		return len(src), nil
	}
	if srcOff < 0 || n < 0 {
		return 0, fmt.Errorf("%w: source offset %d, length %d", ErrOrdinalRange, srcOff, n)
	}
	if dstOff < 0 || dstOff > len(dst) {
		return 0, fmt.Errorf("xrow: destination offset %d outside buffer of %d", dstOff, len(dst))
	}
	if srcOff >= int64(len(src)) {
		return 0, nil
	}
	rest := src[srcOff:]
	n = min(n, len(rest), len(dst)-dstOff)
	return copy(dst[dstOff:dstOff+n], rest[:n]), nil
}

// ---------------- Column normalization (ASCII fast-path) ----------------

func normalizeColAscii(s string) string {
	if l := len(s); l >= 2 {
		switch s[0] {
		case '"':
			if s[l-1] == '"' {
				s = s[1 : l-1]
			}
		case '`':
			if s[l-1] == '`' {
				s = s[1 : l-1]
			}
		case '[':
			if s[l-1] == ']' {
				s = s[1 : l-1]
			}
		}
	}
	return toLowerAscii(s)
}

func toLowerAscii(s string) string {
	var need bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			need = true
			break
		}
	}
	if !need {
		return s
	}
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c = c + ('a' - 'A')
		}
		b[i] = c
	}
	return string(b)
}
