package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func Test_Init_Defaults(t *testing.T) {
	// act
	err := Init(filepath.Join(t.TempDir(), "missing.yml"))

	// assert
	require.NoError(t, err)
	assert.True(t, C.IsProduction())
	assert.Equal(t, DriverPostgres, C.Database.Driver)
	assert.Equal(t, 5432, C.Database.Port)
	assert.Equal(t, "disable", C.Database.SslMode)
	assert.True(t, C.Executor.Log)
	assert.False(t, C.Executor.Pretty)
}

func Test_Init_File(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
environment: Development
database:
  driver: sqlite3
  path: /tmp/rowkit.db
executor:
  pretty: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// act
	err := Init(path)

	// assert
	require.NoError(t, err)
	assert.True(t, C.IsDevelopment())
	assert.Equal(t, DriverSqlite, C.Database.Driver)
	assert.Equal(t, "/tmp/rowkit.db", C.Database.Path)
	assert.True(t, C.Executor.Pretty)
	assert.Equal(t, "localhost", C.Database.Host)
}

func Test_Init_Env(t *testing.T) {
	// arrange
	t.Setenv("ROWKIT_DATABASE_PORT", "6543")
	t.Setenv("ROWKIT_ENVIRONMENT", Staging)

	// act
	err := Init("")

	// assert
	require.NoError(t, err)
	assert.Equal(t, 6543, C.Database.Port)
	assert.True(t, C.IsStaging())
}

func Test_Init_UnsupportedDriver(t *testing.T) {
	t.Setenv("ROWKIT_DATABASE_DRIVER", "oracle")

	err := Init("")

	assert.ErrorContains(t, err, "unsupported database driver 'oracle'")
}
