package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "CORS_ORIGINS", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("AUTHOR_PASS_HASH", "$2a$10$abc")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "$2a$10$abc", cfg.AuthorPassHash)
}

func TestLoad_FileThenEnv(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "CORS_ORIGINS", "REQUEST_TIMEOUT", "SITE_ID"} {
		t.Setenv(k, "")
	}
	t.Setenv("DB_DSN", "file:from-env.db")

	path := filepath.Join(t.TempDir(), "course.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_addr: ":7070"
db_driver: postgres
db_dsn: postgres://localhost/course
request_timeout: 2m
cors_origins: [https://learn.example]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "file:from-env.db", cfg.DBDSN)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://learn.example"}, cfg.CORSOrigins)
	assert.Equal(t, "local", cfg.SiteID)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_driver: mysql\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unsupported db_driver")
}
