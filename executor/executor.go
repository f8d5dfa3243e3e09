package executor

import (
	"context"
	"database/sql"
	"errors"
	"go.uber.org/zap"
	"rowkit/logging"
)

// Executor runs SQL statements. *sql.DB, *sql.Tx and *sql.Conn all satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type Options struct {
	// Logger defaults to logging.Logger.
	Logger *zap.SugaredLogger

	// Pretty runs the statement first and logs a multi-line block including
	// the outcome and the time it took.
	Pretty bool

	// Translate is applied to every error returned by the raw executor.
	// Errors of QueryRowContext surface on Scan and are not translated.
	Translate func(error) error
}

var ErrNoExecutor = errors.New("no executor to wrap")

// Wrap returns an executor that logs every statement before passing it to raw.
// An executor that is already wrapped is returned as is.
func Wrap(raw Executor, opts Options) (Executor, error) {
	if raw == nil {
		return nil, ErrNoExecutor
	}
	if wrapped, ok := raw.(*loggingExecutor); ok {
		return wrapped, nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Logger
	}

	return &loggingExecutor{
		raw:       raw,
		logger:    logger,
		pretty:    opts.Pretty,
		translate: opts.Translate,
	}, nil
}
