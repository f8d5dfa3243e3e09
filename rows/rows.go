package rows

import (
	"context"
	"database/sql"
	"fmt"
	"rowkit/h"
	"rowkit/logging"
	"rowkit/tuple"
)

// Querier is satisfied by *sql.DB, *sql.Tx, *sql.Conn and executor.Executor.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type ColumnCountError struct {
	Expected int
	Actual   int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("result has %d columns, expected %d", e.Actual, e.Expected)
}

func checkColumns(rows *sql.Rows, expected int) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}
	if len(columns) != expected {
		return &ColumnCountError{Expected: expected, Actual: len(columns)}
	}
	return nil
}

// scanAll reads every remaining row with scan. rows is not closed.
func scanAll[T any](rows *sql.Rows, arity int, scan func(*T) []any) ([]T, error) {
	if err := checkColumns(rows, arity); err != nil {
		return nil, err
	}

	result := make([]T, 0)
	for rows.Next() {
		var row T
		if err := rows.Scan(scan(&row)...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func run[T any](ctx context.Context, q Querier, sqlString string, args []any, scan func(*sql.Rows) ([]T, error)) ([]T, error) {
	logging.Logger.Debugf("executing sql: %s", sqlString)
	rows, err := q.QueryContext(ctx, sqlString, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scan(rows)
}

func ScanT2[Ta, Tb any](rows *sql.Rows) ([]tuple.T2[Ta, Tb], error) {
	return scanAll(rows, 2, func(t *tuple.T2[Ta, Tb]) []any {
		return []any{&t.First, &t.Second}
	})
}

func ScanT3[Ta, Tb, Tc any](rows *sql.Rows) ([]tuple.T3[Ta, Tb, Tc], error) {
	return scanAll(rows, 3, func(t *tuple.T3[Ta, Tb, Tc]) []any {
		return []any{&t.First, &t.Second, &t.Third}
	})
}

func ScanT4[Ta, Tb, Tc, Td any](rows *sql.Rows) ([]tuple.T4[Ta, Tb, Tc, Td], error) {
	return scanAll(rows, 4, func(t *tuple.T4[Ta, Tb, Tc, Td]) []any {
		return []any{&t.First, &t.Second, &t.Third, &t.Fourth}
	})
}

func QueryT2[Ta, Tb any](ctx context.Context, q Querier, sqlString string, args ...any) ([]tuple.T2[Ta, Tb], error) {
	return run(ctx, q, sqlString, args, ScanT2[Ta, Tb])
}

func QueryT3[Ta, Tb, Tc any](ctx context.Context, q Querier, sqlString string, args ...any) ([]tuple.T3[Ta, Tb, Tc], error) {
	return run(ctx, q, sqlString, args, ScanT3[Ta, Tb, Tc])
}

func QueryT4[Ta, Tb, Tc, Td any](ctx context.Context, q Querier, sqlString string, args ...any) ([]tuple.T4[Ta, Tb, Tc, Td], error) {
	return run(ctx, q, sqlString, args, ScanT4[Ta, Tb, Tc, Td])
}

// QueryFirstT3 scans only the first row; the rest of the result set is discarded.
func QueryFirstT3[Ta, Tb, Tc any](ctx context.Context, q Querier, sqlString string, args ...any) (h.Opt[tuple.T3[Ta, Tb, Tc]], error) {
	logging.Logger.Debugf("executing sql: %s", sqlString)
	rows, err := q.QueryContext(ctx, sqlString, args...)
	if err != nil {
		return h.None[tuple.T3[Ta, Tb, Tc]](), err
	}
	defer rows.Close()

	if err := checkColumns(rows, 3); err != nil {
		return h.None[tuple.T3[Ta, Tb, Tc]](), err
	}
	if !rows.Next() {
		return h.None[tuple.T3[Ta, Tb, Tc]](), rows.Err()
	}

	var row tuple.T3[Ta, Tb, Tc]
	if err := rows.Scan(&row.First, &row.Second, &row.Third); err != nil {
		return h.None[tuple.T3[Ta, Tb, Tc]](), err
	}
	if err := rows.Err(); err != nil {
		return h.None[tuple.T3[Ta, Tb, Tc]](), err
	}
	return h.Some(row), nil
}

// ScanTuples reads every remaining row into an untyped tuple whose arity is
// the column count. Values are whatever the driver returns.
func ScanTuples(rows *sql.Rows) ([]tuple.Tuple, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(columns) < 2 || len(columns) > 4 {
		return nil, &tuple.ArityError{Arity: len(columns)}
	}

	result := make([]tuple.Tuple, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		t, err := tuple.Of(values...)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func QueryTuples(ctx context.Context, q Querier, sqlString string, args ...any) ([]tuple.Tuple, error) {
	return run(ctx, q, sqlString, args, ScanTuples)
}
