package export_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/pppcourse/internal/curriculum"
	"github.com/mind-engage/pppcourse/internal/db"
	"github.com/mind-engage/pppcourse/internal/export"
	"github.com/mind-engage/pppcourse/internal/qti"
	"github.com/mind-engage/pppcourse/internal/storage"
	syncx "github.com/mind-engage/pppcourse/internal/sync"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{"json": export.FormatJSON, "YAML": export.FormatYAML, " yml ": export.FormatYAML} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := export.ParseFormat("xml")
	assert.Error(t, err)
}

func TestBundleRoundTrip(t *testing.T) {
	tracks := curriculum.MustTracks()
	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, f, export.NewBundle(tracks)))

			got, err := export.ReadBundle(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(export.NewBundle(tracks), got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("bundle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteJSON_KeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, map[string]string{"pt": "Ação <já>"}))
	assert.Contains(t, buf.String(), `"Ação <já>"`)
}

func TestReadBundle_RejectsOtherVersion(t *testing.T) {
	_, err := export.ReadBundle(strings.NewReader(`{"schemaVersion":99,"tracks":[]}`), export.FormatJSON)
	assert.ErrorContains(t, err, "schema version 99")
}

func TestPublisher_WritesCourseAndModules(t *testing.T) {
	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	tracks := curriculum.MustTracks()

	keys, err := export.NewPublisher(store, nil).Publish(context.Background(), tracks, export.FormatYAML)
	require.NoError(t, err)

	n := 0
	for _, tr := range tracks {
		n += len(tr.Modules)
	}
	require.Len(t, keys, n+1)
	assert.Equal(t, "course.yaml", keys[0])
	assert.Contains(t, keys, "modules/m1.yaml")

	rc, err := store.Get(context.Background(), "course.yaml")
	require.NoError(t, err)
	defer rc.Close()
	b, err := export.ReadBundle(rc, export.FormatYAML)
	require.NoError(t, err)
	assert.Len(t, b.Tracks, len(tracks))
}

func TestPublisher_QTI(t *testing.T) {
	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)

	keys, err := export.NewPublisher(store, nil).PublishQTI(context.Background(), curriculum.MustTracks())
	require.NoError(t, err)
	assert.Contains(t, keys, "qti/m1.zip")

	rc, err := store.Get(context.Background(), "qti/m1.zip")
	require.NoError(t, err)
	defer rc.Close()
	pkg, err := io.ReadAll(rc)
	require.NoError(t, err)
	res, err := qti.ReadManifest(pkg)
	require.NoError(t, err)
	assert.NotEmpty(t, res)
}

func TestSeeder_SeedAndLoad(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "seed.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer dbh.Close()

	tracks := curriculum.MustTracks()
	s := export.NewSeeder(dbh, "test-site", nil)

	rep, err := s.Seed(ctx, tracks)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, len(tracks), rep.Tracks)

	// Seeding twice replaces rather than duplicates.
	rep2, err := s.Seed(ctx, tracks)
	require.NoError(t, err)
	assert.Equal(t, rep.Exercises, rep2.Exercises)
	assert.NotEqual(t, rep.RunID, rep2.RunID)

	var count int
	require.NoError(t, dbh.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count))
	assert.Equal(t, rep.Exercises, count)

	for _, tr := range tracks {
		for _, want := range tr.Modules {
			got, err := s.LoadModule(ctx, want.ID)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("module %s (-want +got):\n%s", want.ID, diff)
			}
		}
	}

	_, err = s.LoadModule(ctx, "nope")
	assert.ErrorIs(t, err, export.ErrModuleNotSeeded)

	events, err := s.Events().Since(ctx, syncx.EventCatalogSeeded, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, rep.RunID, events[0].Key)
	assert.Equal(t, "test-site", events[0].SiteID)
	assert.Contains(t, events[1].DataJSON, rep2.RunID)
}
