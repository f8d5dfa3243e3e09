package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"io/fs"
)

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SslMode  string

	// Path is the sqlite3 database file, ":memory:" for an in-memory database.
	Path string
}

type RowkitConfig struct {
	Environment string

	Logging struct {
		Level string
	}

	Database DatabaseConfig

	Executor struct {
		Log    bool
		Pretty bool
	}
}

const (
	Production  = "Production"
	Staging     = "Staging"
	Development = "Development"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite3"
)

func (c *RowkitConfig) IsProduction() bool {
	return c.Environment == Production
}

func (c *RowkitConfig) IsStaging() bool {
	return c.Environment == Staging
}

func (c *RowkitConfig) IsDevelopment() bool {
	return !(c.IsStaging() || c.IsProduction())
}

var C RowkitConfig

// Init resets C to its defaults and applies the config file at path (if it
// exists) and ROWKIT_* environment variables on top.
func Init(configFilePath string) error {
	C = RowkitConfig{}
	setDefaultConfigValues()
	if err := readConfigValues(configFilePath); err != nil {
		return err
	}
	return validateConfig()
}

func setDefaultConfigValues() {
	C.Environment = Production

	C.Logging.Level = "info"

	C.Database.Driver = DriverPostgres
	C.Database.Host = "localhost"
	C.Database.Port = 5432
	C.Database.Database = "rowkit"
	C.Database.SslMode = "disable"
	C.Database.Path = ":memory:"

	C.Executor.Log = true
	C.Executor.Pretty = false
}

func readConfigValues(configFilePath string) error {
	v := viper.NewWithOptions(viper.KeyDelimiter("_"))

	v.SetEnvPrefix("ROWKIT")
	v.AutomaticEnv()
	setKeyDefaults(v)

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)

		err := v.ReadInConfig()
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("reading config file %s: %w", configFilePath, err)
		}
	}

	if err := v.Unmarshal(&C); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// AutomaticEnv only resolves keys viper already knows about, so every key
// needs a default before Unmarshal.
func setKeyDefaults(v *viper.Viper) {
	v.SetDefault("environment", C.Environment)
	v.SetDefault("logging_level", C.Logging.Level)
	v.SetDefault("database_driver", C.Database.Driver)
	v.SetDefault("database_host", C.Database.Host)
	v.SetDefault("database_port", C.Database.Port)
	v.SetDefault("database_username", C.Database.Username)
	v.SetDefault("database_password", C.Database.Password)
	v.SetDefault("database_database", C.Database.Database)
	v.SetDefault("database_sslmode", C.Database.SslMode)
	v.SetDefault("database_path", C.Database.Path)
	v.SetDefault("executor_log", C.Executor.Log)
	v.SetDefault("executor_pretty", C.Executor.Pretty)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

func validateConfig() error {
	switch C.Database.Driver {
	case DriverPostgres, DriverSqlite:
	default:
		return fmt.Errorf("unsupported database driver '%s'", C.Database.Driver)
	}
	return nil
}
