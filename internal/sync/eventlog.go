package syncx

import (
	"context"
	"database/sql"
	"time"
)

const EventCatalogSeeded = "CatalogSeeded"

type Event struct {
	Seq       int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// DBTX is satisfied by both *sql.DB and *sql.Tx, so events can be written
// inside the transaction they describe.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type EventRepo struct{ db DBTX }

func NewEventRepo(db DBTX) *EventRepo { return &EventRepo{db: db} }

// WithTx returns a repo bound to tx.
func (r *EventRepo) WithTx(tx *sql.Tx) *EventRepo { return &EventRepo{db: tx} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if e.SiteID == "" {
		e.SiteID = "local"
	}
	created := e.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, created)
	return err
}

// Since lists events of type typ with seq greater than after, oldest first.
// An empty typ matches every type.
func (r *EventRepo) Since(ctx context.Context, typ string, after int64, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at
		   FROM event_log
		  WHERE seq > $1 AND ($2 = '' OR typ = $2)
		  ORDER BY seq
		  LIMIT $3`,
		after, typ, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
