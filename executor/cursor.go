package executor

import (
	"context"
	"database/sql"
)

// Cursor is a result set whose close is logged by the executor that opened it.
type Cursor struct {
	*sql.Rows
	onClose func()
	closed  bool
}

func (c *Cursor) Close() error {
	err := c.Rows.Close()
	if !c.closed && c.onClose != nil {
		c.onClose()
	}
	c.closed = true
	return err
}

// OpenCursor runs query on ex. A pretty logging executor logs
// "<===Close cursor(id)" once the cursor is closed.
func OpenCursor(ctx context.Context, ex Executor, query string, args ...any) (*Cursor, error) {
	if logged, ok := ex.(*loggingExecutor); ok {
		return logged.openCursor(ctx, query, args)
	}
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Cursor{Rows: rows}, nil
}
