package storage

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_PutGet(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key, err := s.Put(ctx, "modules/m1.json", strings.NewReader(`{"id":"m1"}`))
	require.NoError(t, err)
	assert.Equal(t, "modules/m1.json", key)

	rc, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"m1"}`, string(b))

	// Overwrite replaces the content.
	_, err = s.Put(ctx, key, strings.NewReader("v2"))
	require.NoError(t, err)
	rc2, err := s.Get(ctx, key)
	require.NoError(t, err)
	defer rc2.Close()
	b, _ = io.ReadAll(rc2)
	assert.Equal(t, "v2", string(b))

	u, err := s.URL(key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "file://"))
	assert.True(t, strings.HasSuffix(u, "/modules/m1.json"))
}

func TestFSStore_GetDirectoryIsNotFound(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	_, err = s.Put(ctx, "modules/m1.json", strings.NewReader("{}"))
	require.NoError(t, err)

	_, err = s.Get(ctx, "modules")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = s.Get(ctx, "modules/m2.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSStore_RejectsEscapingKeys(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../x.json", "a/../../x", "a//b"} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestFSStore_CanceledContext(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Put(ctx, "course.json", strings.NewReader("{}"))
	assert.ErrorIs(t, err, context.Canceled)
}
