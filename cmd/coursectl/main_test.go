package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COURSE_CONFIG", "")
	t.Setenv("DB_DRIVER", "")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := runCmd(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestStats(t *testing.T) {
	out, err := runCmd(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "m1")
	assert.Contains(t, out, "physical-classes")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "pronunciation")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "export", "--format", "yaml", "--out-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "course.yaml"))

	_, err = os.Stat(filepath.Join(dir, "modules", "m1.yaml"))
	assert.NoError(t, err)

	_, err = runCmd(t, "export", "--format", "qti", "--out-dir", dir)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "qti", "m1.zip"))
	assert.NoError(t, err)

	_, err = runCmd(t, "export", "--format", "csv", "--out-dir", dir)
	assert.Error(t, err)
}

func TestSeedAndHistory(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "c.db")
	out, err := runCmd(t, "seed", "--driver", "sqlite", "--dsn", dsn)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "run "), out)

	out, err = runCmd(t, "seed", "--driver", "sqlite", "--dsn", dsn, "--history")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestLesson(t *testing.T) {
	full, err := runCmd(t, "lesson", "m1", "m1l1", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, full, `"correct": "Bom dia"`)

	learner, err := runCmd(t, "lesson", "m1", "m1l1", "--format", "json", "--learner")
	require.NoError(t, err)
	assert.NotContains(t, learner, `"correct"`)

	_, err = runCmd(t, "lesson", "m1", "nope")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	out, err := runCmd(t, "search", "ola")
	require.NoError(t, err)
	assert.Contains(t, out, "Olá")
}
