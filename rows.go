package xrow

import (
	"database/sql"
	"errors"

	"go.uber.org/zap"
)

var _ Cursor = (*Rows)(nil)

// Rows is a Cursor over *sql.Rows. Each Next scans the row into a Record, so
// every accessor in this package can read it by column name.
//
// Rows does not own the query: run it with your *sql.DB, *sql.Tx or *sql.Conn
// and hand over the result.
//
// Example:
//
//	sqlRows, err := db.QueryContext(ctx, `SELECT id, name, payload FROM docs`)
//	if err != nil {
//	    return err
//	}
//	rows, err := xrow.NewRows(sqlRows)
//	if err != nil {
//	    return err
//	}
//	defer rows.Close()
//	for rows.Next() {
//	    id, err := xrow.Int32(rows, "id")
//	    ...
//	}
//	return rows.Err()
type Rows struct {
	*Record

	rows   *sql.Rows
	dest   []any
	err    error
	logger *zap.Logger
}

// RowsOption configures Rows.
type RowsOption func(*Rows)

func WithRowsLogger(logger *zap.Logger) RowsOption {
	return func(r *Rows) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRows wraps rows. It reads the column names once; a result with no
// columns is an error.
func NewRows(rows *sql.Rows, opts ...RowsOption) (*Rows, error) {
	r := &Rows{
		rows:   rows,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, errors.New("xrow: query returned zero columns")
	}
	r.Record = NewRecord(cols, nil)
	r.dest = make([]any, len(cols))
	r.logger.Debug("rows opened", zap.Strings("columns", cols))
	return r, nil
}

// Next advances to the next row and loads it. It returns false at the end of
// the result or on a scan failure; check Err afterwards.
func (r *Rows) Next() bool {
	if r.err != nil || !r.rows.Next() {
		r.Reset(nil)
		return false
	}
	values := make([]any, len(r.dest))
	for i := range values {
		r.dest[i] = &values[i]
	}
	if err := r.rows.Scan(r.dest...); err != nil {
		r.logger.Error("scan failed", zap.Error(err))
		r.err = err
		r.Reset(nil)
		return false
	}
	r.Reset(values)
	return true
}

// Err returns the first scan error, or the iteration error of the underlying rows.
func (r *Rows) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

func (r *Rows) Close() error {
	r.Reset(nil)
	return r.rows.Close()
}
