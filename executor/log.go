package executor

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"strings"
	"time"
)

const (
	request  = "===>"
	response = "<==="
)

type loggingExecutor struct {
	raw       Executor
	logger    *zap.SugaredLogger
	pretty    bool
	translate func(error) error
}

type statement struct {
	label   string
	query   string
	args    []any
	purpose Purpose
}

func (e *loggingExecutor) enabled() bool {
	return e.logger.Desugar().Core().Enabled(zapcore.InfoLevel)
}

func (e *loggingExecutor) translated(err error) error {
	if err == nil || e.translate == nil {
		return err
	}
	return e.translate(err)
}

func (e *loggingExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if !e.enabled() {
		result, err := e.raw.ExecContext(ctx, query, args...)
		return result, e.translated(err)
	}

	s := statement{label: "Execute SQL", query: query, args: args, purpose: PurposeOf(query)}
	if !e.pretty {
		e.simpleLog(s)
		result, err := e.raw.ExecContext(ctx, query, args...)
		return result, e.translated(err)
	}

	start := time.Now()
	result, err := e.raw.ExecContext(ctx, query, args...)
	elapsed := time.Since(start)

	affected := int64(-1)
	if err == nil && s.purpose.modifiesRows() {
		if n, rowsErr := result.RowsAffected(); rowsErr == nil {
			affected = n
		}
	}
	e.prettyLog(s, affected, err, elapsed)
	return result, e.translated(err)
}

// QueryContext logs the open of the cursor. *sql.Rows is concrete, so its close
// is only logged for cursors opened through OpenCursor.
func (e *loggingExecutor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, _, err := e.query(ctx, query, args)
	return rows, err
}

// query returns the cursor id when the open was logged in pretty mode.
func (e *loggingExecutor) query(ctx context.Context, query string, args []any) (*sql.Rows, string, error) {
	if !e.enabled() {
		rows, err := e.raw.QueryContext(ctx, query, args...)
		return rows, "", e.translated(err)
	}

	s := statement{label: "Execute SQL", query: query, args: args, purpose: PurposeOf(query)}
	if !e.pretty {
		e.simpleLog(s)
		rows, err := e.raw.QueryContext(ctx, query, args...)
		return rows, "", e.translated(err)
	}

	id := uuid.NewString()
	s.label = fmt.Sprintf("Open cursor(%s)", id)
	start := time.Now()
	rows, err := e.raw.QueryContext(ctx, query, args...)
	e.prettyLog(s, -1, err, time.Since(start))
	if err != nil {
		return nil, "", e.translated(err)
	}
	return rows, id, nil
}

func (e *loggingExecutor) openCursor(ctx context.Context, query string, args []any) (*Cursor, error) {
	rows, id, err := e.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	c := &Cursor{Rows: rows}
	if id != "" {
		c.onClose = func() {
			e.logger.Info(fmt.Sprintf("%sClose cursor(%s)", response, id))
		}
	}
	return c, nil
}

func (e *loggingExecutor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if !e.enabled() {
		return e.raw.QueryRowContext(ctx, query, args...)
	}

	s := statement{label: "Execute SQL", query: query, args: args, purpose: PurposeOf(query)}
	if !e.pretty {
		e.simpleLog(s)
		return e.raw.QueryRowContext(ctx, query, args...)
	}

	start := time.Now()
	row := e.raw.QueryRowContext(ctx, query, args...)
	e.prettyLog(s, -1, row.Err(), time.Since(start))
	return row
}

func (e *loggingExecutor) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	if !e.enabled() {
		stmt, err := e.raw.PrepareContext(ctx, query)
		return stmt, e.translated(err)
	}

	s := statement{label: "Prepare SQL", query: query, purpose: PurposeOf(query)}
	if !e.pretty {
		e.simpleLog(s)
		stmt, err := e.raw.PrepareContext(ctx, query)
		return stmt, e.translated(err)
	}

	start := time.Now()
	stmt, err := e.raw.PrepareContext(ctx, query)
	e.prettyLog(s, -1, err, time.Since(start))
	return stmt, e.translated(err)
}

func (e *loggingExecutor) Batch(ctx context.Context, query string) (Batch, error) {
	raw, err := newStmtBatch(ctx, e.raw, query)
	if err != nil {
		return nil, e.translated(err)
	}
	b := &loggingBatch{raw: raw, executor: e}
	b.reset()
	return b, nil
}

func (e *loggingExecutor) simpleLog(s statement) {
	e.logger.Infof("sql: %s, variables: %s, purpose: %s", s.query, formatVariables(s.args), s.purpose)
}

func (e *loggingExecutor) prettyLog(s statement, affected int64, err error, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(s.label + request + "\n")
	sb.WriteString("Purpose: " + string(s.purpose) + "\n")
	sb.WriteString("SQL: " + compact(s.query) + "\n")
	if len(s.args) > 0 {
		sb.WriteString("Variables: " + formatVariables(s.args) + "\n")
	}
	if affected != -1 {
		sb.WriteString(fmt.Sprintf("Affected row count: %d\n", affected))
	}
	if err == nil {
		sb.WriteString("Response status: success\n")
	} else {
		sb.WriteString(fmt.Sprintf("Response status: failed<%T>\n", err))
	}
	sb.WriteString(fmt.Sprintf("Time cost: %dms\n", elapsed.Milliseconds()))
	sb.WriteString(response + s.label)

	e.logger.Info(sb.String())
}

func formatVariables(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if b, ok := arg.([]byte); ok {
			parts[i] = fmt.Sprintf("<%d bytes>", len(b))
			continue
		}
		parts[i] = fmt.Sprintf("%v", arg)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
