package syncx_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/pppcourse/internal/db"
	syncx "github.com/mind-engage/pppcourse/internal/sync"
)

func TestEventRepo_AppendSince(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer dbh.Close()

	repo := syncx.NewEventRepo(dbh)
	require.NoError(t, repo.Append(ctx, syncx.Event{Type: syncx.EventCatalogSeeded, Key: "run-1", DataJSON: `{"modules":2}`}))
	require.NoError(t, repo.Append(ctx, syncx.Event{Type: "Other", Key: "x", DataJSON: `{}`, SiteID: "lab"}))
	require.NoError(t, repo.Append(ctx, syncx.Event{Type: syncx.EventCatalogSeeded, Key: "run-2", DataJSON: `{}`, CreatedAt: 42}))

	seeded, err := repo.Since(ctx, syncx.EventCatalogSeeded, 0, 0)
	require.NoError(t, err)
	require.Len(t, seeded, 2)
	assert.Equal(t, "run-1", seeded[0].Key)
	assert.Equal(t, "local", seeded[0].SiteID)
	assert.Equal(t, int64(42), seeded[1].CreatedAt)

	all, err := repo.Since(ctx, "", seeded[0].Seq, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "lab", all[0].SiteID)
}

func TestEventRepo_WithTxRollback(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	defer dbh.Close()

	repo := syncx.NewEventRepo(dbh)
	tx, err := dbh.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Append(ctx, syncx.Event{Type: syncx.EventCatalogSeeded, Key: "r", DataJSON: "{}"}))
	require.NoError(t, tx.Rollback())

	got, err := repo.Since(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
