package executor

import (
	"context"
	"database/sql"
	"rowkit/tuple"
	"strings"
)

// Batch runs one prepared statement once per added set of arguments.
type Batch interface {
	SQL() string
	Add(args ...any)
	AddTuple(t tuple.Tuple)
	// Execute runs every pending set in order and returns the affected row
	// counts. On failure the counts of the sets that succeeded are returned
	// with the error. Pending sets are cleared either way.
	Execute(ctx context.Context) ([]int64, error)
	Close() error
}

type batcher interface {
	Batch(ctx context.Context, query string) (Batch, error)
}

func NewBatch(ctx context.Context, ex Executor, query string) (Batch, error) {
	if b, ok := ex.(batcher); ok {
		return b.Batch(ctx, query)
	}
	return newStmtBatch(ctx, ex, query)
}

type stmtBatch struct {
	query   string
	stmt    *sql.Stmt
	pending [][]any
}

func newStmtBatch(ctx context.Context, ex Executor, query string) (*stmtBatch, error) {
	stmt, err := ex.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &stmtBatch{query: query, stmt: stmt}, nil
}

func (b *stmtBatch) SQL() string {
	return b.query
}

func (b *stmtBatch) Add(args ...any) {
	b.pending = append(b.pending, args)
}

func (b *stmtBatch) AddTuple(t tuple.Tuple) {
	b.Add(tuple.Slice(t)...)
}

func (b *stmtBatch) Execute(ctx context.Context) ([]int64, error) {
	pending := b.pending
	b.pending = nil

	counts := make([]int64, 0, len(pending))
	for _, args := range pending {
		result, err := b.stmt.ExecContext(ctx, args...)
		if err != nil {
			return counts, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return counts, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func (b *stmtBatch) Close() error {
	return b.stmt.Close()
}

type loggingBatch struct {
	raw      *stmtBatch
	executor *loggingExecutor
	sb       strings.Builder
}

func (b *loggingBatch) reset() {
	b.sb.Reset()
	b.sb.WriteString(b.raw.SQL())
}

func (b *loggingBatch) SQL() string {
	return b.raw.SQL()
}

func (b *loggingBatch) Add(args ...any) {
	b.raw.Add(args...)
	b.sb.WriteString("\nbatch variables: " + formatVariables(args))
}

func (b *loggingBatch) AddTuple(t tuple.Tuple) {
	b.Add(tuple.Slice(t)...)
}

func (b *loggingBatch) Execute(ctx context.Context) ([]int64, error) {
	if b.executor.enabled() {
		b.executor.logger.Info(b.sb.String())
	}
	b.reset()

	counts, err := b.raw.Execute(ctx)
	return counts, b.executor.translated(err)
}

func (b *loggingBatch) Close() error {
	return b.raw.Close()
}
