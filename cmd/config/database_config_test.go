package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "recetas.db?_foreign_keys=on"},
		{in: "data/recetas.db", want: "data/recetas.db?_foreign_keys=on"},
		{in: "file::memory:?cache=shared", want: "file::memory:?cache=shared&_foreign_keys=on"},
		{in: "recetas.db?_foreign_keys=off", want: "recetas.db?_foreign_keys=off"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.in), tt.in)
	}
}

func TestDialector(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	d, err := Dialector()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	t.Setenv("DB_DRIVER", "postgres")
	d, err = Dialector()
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	t.Setenv("DB_DRIVER", "oracle")
	_, err = Dialector()
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestConnectDBWithSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "file::memory:")
	t.Setenv("LOG_LEVEL", "silent")

	db, err := ConnectDB()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
}
