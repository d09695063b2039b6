// Package pgxrow adapts pgx result rows to xrow.Cursor, so the xrow accessors
// can read a pgx query result by column name.
package pgxrow

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/go-mizu/xrow"
)

var _ xrow.Cursor = (*Cursor)(nil)

// Cursor is an xrow.Cursor over pgx.Rows. Column names come from the row
// description; each Next decodes the row with Values and loads it into an
// embedded xrow.Record.
type Cursor struct {
	*xrow.Record

	rows   pgx.Rows
	err    error
	logger *zap.Logger
}

type Option func(*Cursor)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Cursor) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New wraps rows. The caller keeps ownership of the connection.
func New(rows pgx.Rows, opts ...Option) *Cursor {
	c := &Cursor{
		rows:   rows,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Record = xrow.NewRecord(columnNames(rows), nil)
	return c
}

func columnNames(rows pgx.Rows) []string {
	fds := rows.FieldDescriptions()
	names := make([]string, len(fds))
	for i, fd := range fds {
		names[i] = fd.Name
	}
	return names
}

// Next advances to the next row and decodes it. It returns false at the end
// of the result or when decoding fails; check Err afterwards.
func (c *Cursor) Next() bool {
	if c.err != nil || !c.rows.Next() {
		c.Reset(nil)
		return false
	}
	if c.Len() == 0 {
		// Row description was not available before the first row.
		c.Record = xrow.NewRecord(columnNames(c.rows), nil)
		c.logger.Debug("columns resolved", zap.Strings("columns", c.Columns()))
	}
	values, err := c.rows.Values()
	if err != nil {
		c.logger.Error("decode row failed", zap.Error(err))
		c.err = err
		c.Reset(nil)
		return false
	}
	for i, v := range values {
		if values[i], err = normalize(v); err != nil {
			c.logger.Error("normalize value failed", zap.Int("ordinal", i), zap.Error(err))
			c.err = err
			c.Reset(nil)
			return false
		}
	}
	c.Reset(values)
	return true
}

// normalize maps pgx-decoded values onto types the xrow conversions accept.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, []byte, string, bool, time.Time:
		return v, nil
	case [16]byte:
		return uuid.UUID(t), nil
	case driver.Valuer:
		// pgtype.Numeric, pgtype.Interval and friends
		return t.Value()
	}
	return v, nil
}

func (c *Cursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

// Close closes the underlying rows and returns their error, if any.
func (c *Cursor) Close() error {
	c.rows.Close()
	c.Reset(nil)
	return c.rows.Err()
}
