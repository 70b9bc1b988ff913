package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures the course snapshot schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:pppcourse.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/pppcourse?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// One writer; avoids SQLITE_BUSY inside the seeding transaction.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS tracks (
  slug TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS modules (
  id TEXT PRIMARY KEY,
  track_slug TEXT NOT NULL REFERENCES tracks(slug) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS lessons (
  module_id TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  xp INTEGER NOT NULL,
  content_json TEXT NOT NULL,
  PRIMARY KEY (module_id, id)
);

CREATE TABLE IF NOT EXISTS exercises (
  module_id TEXT NOT NULL,
  lesson_id TEXT NOT NULL,
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  typ TEXT NOT NULL,
  data_json TEXT NOT NULL,
  PRIMARY KEY (module_id, lesson_id, id),
  FOREIGN KEY (module_id, lesson_id) REFERENCES lessons(module_id, id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS event_log (
  seq INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,                     -- e.g., CatalogSeeded
  key TEXT NOT NULL,                     -- natural key: seed run id
  data TEXT NOT NULL,                    -- JSON payload
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS tracks (
  slug TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS modules (
  id TEXT PRIMARY KEY,
  track_slug TEXT NOT NULL REFERENCES tracks(slug) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS lessons (
  module_id TEXT NOT NULL REFERENCES modules(id) ON DELETE CASCADE,
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  xp INTEGER NOT NULL,
  content_json TEXT NOT NULL,
  PRIMARY KEY (module_id, id)
);

CREATE TABLE IF NOT EXISTS exercises (
  module_id TEXT NOT NULL,
  lesson_id TEXT NOT NULL,
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  typ TEXT NOT NULL,
  data_json TEXT NOT NULL,
  PRIMARY KEY (module_id, lesson_id, id),
  FOREIGN KEY (module_id, lesson_id) REFERENCES lessons(module_id, id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS event_log (
  seq BIGSERIAL PRIMARY KEY,
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
