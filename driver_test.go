package xrow

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type DBHandler func(query string, args []driver.NamedValue) (cols []string, rows [][]driver.Value, err error)

type testConnector struct {
	h DBHandler
}

func (c *testConnector) Connect(context.Context) (driver.Conn, error) { return &testConn{h: c.h}, nil }
func (c *testConnector) Driver() driver.Driver                        { return testDriver{} }

type testDriver struct{}

func (testDriver) Open(name string) (driver.Conn, error) {
	return nil, errors.New("testDriver.Open should not be called; use sql.OpenDB with connector")
}

type testConn struct {
	h DBHandler
}

func (c *testConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *testConn) Close() error                        { return nil }
func (c *testConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

func (c *testConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	cols, data, err := c.h(query, args)
	if err != nil {
		return nil, err
	}
	return &testRows{cols: cols, data: data}, nil
}

type testRows struct {
	cols []string
	data [][]driver.Value
	i    int
}

func (r *testRows) Columns() []string { return append([]string(nil), r.cols...) }
func (r *testRows) Close() error      { return nil }
func (r *testRows) Next(dest []driver.Value) error {
	if r.i >= len(r.data) {
		return io.EOF
	}
	row := r.data[r.i]
	for i := range dest {
		if i < len(row) {
			dest[i] = row[i]
		} else {
			dest[i] = nil
		}
	}
	r.i++
	return nil
}

// newTestDB creates a *sql.DB backed by the in-memory test driver.
func newTestDB(t *testing.T, h DBHandler) *sql.DB {
	t.Helper()
	db := sql.OpenDB(&testConnector{h: h})
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// queryRows runs a query against a test driver serving cols and data.
func queryRows(t *testing.T, cols []string, data ...[]driver.Value) *sql.Rows {
	t.Helper()
	db := newTestDB(t, func(string, []driver.NamedValue) ([]string, [][]driver.Value, error) {
		return cols, data, nil
	})
	rows, err := db.QueryContext(context.Background(), "SELECT")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rows.Close() })
	return rows
}

/* -------------------------------------------------------
   Connector whose rows fail on the first Next
--------------------------------------------------------*/

type errNextConnector struct{}

func (c *errNextConnector) Connect(context.Context) (driver.Conn, error) { return &errNextConn{}, nil }
func (c *errNextConnector) Driver() driver.Driver                        { return testDriver{} }

type errNextConn struct{}

func (c *errNextConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *errNextConn) Close() error                        { return nil }
func (c *errNextConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }
func (c *errNextConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &errRows{}, nil
}

// errRows fails on first Next(); database/sql exposes it via rows.Err() after Next() returns false.
type errRows struct{}

func (e *errRows) Columns() []string { return []string{"a"} }
func (e *errRows) Close() error      { return nil }
func (e *errRows) Next(dest []driver.Value) error {
	return errors.New("driver next error")
}
