package database

import (
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"rowkit/config"
	"rowkit/executor"
	"rowkit/logging"
)

const memoryPath = ":memory:"

func Connect() (*sql.DB, error) {
	cfg := config.C.Database
	if cfg.Driver == config.DriverSqlite {
		logging.Logger.Infof("Connecting to sqlite3 database %s", cfg.Path)
	} else {
		logging.Logger.Infof("Connecting to database %s via %s:%d",
			cfg.Database,
			cfg.Host,
			cfg.Port)
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}
	return db, nil
}

func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	connectionString, err := ConnectionString(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, connectionString)
	if err != nil {
		return nil, err
	}

	// every sqlite3 connection to :memory: opens its own empty database
	if cfg.Driver == config.DriverSqlite && cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

func ConnectionString(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Database,
			cfg.Username,
			cfg.Password,
			cfg.SslMode), nil
	case config.DriverSqlite:
		if cfg.Path == "" {
			return memoryPath, nil
		}
		return cfg.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver '%s'", cfg.Driver)
	}
}

// NewExecutor wraps db with the logging executor unless statement logging is
// turned off in config.C.
func NewExecutor(db executor.Executor) (executor.Executor, error) {
	if !config.C.Executor.Log {
		return db, nil
	}
	return executor.Wrap(db, executor.Options{
		Logger:    logging.Logger,
		Pretty:    config.C.Executor.Pretty,
		Translate: MapError,
	})
}
