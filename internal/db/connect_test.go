package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_CreatesSchema(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "course.db") + "?_pragma=foreign_keys(1)"
	ctx := context.Background()

	dbh, err := Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	defer dbh.Close()

	for _, table := range []string{"tracks", "modules", "lessons", "exercises", "event_log"} {
		var n int
		err := dbh.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=$1`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}

	// Reopening is idempotent.
	again, err := Open(ctx, DriverSQLite, dsn)
	require.NoError(t, err)
	again.Close()
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("mysql"), "")
	assert.ErrorContains(t, err, "unsupported driver")
}
