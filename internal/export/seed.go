package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/logger"
	syncx "github.com/mind-engage/pppcourse/internal/sync"
)

var ErrModuleNotSeeded = errors.New("module not seeded")

// SeedReport summarises one seeding run.
type SeedReport struct {
	RunID     string `json:"runId"`
	Tracks    int    `json:"tracks"`
	Modules   int    `json:"modules"`
	Lessons   int    `json:"lessons"`
	Exercises int    `json:"exercises"`
}

// Seeder copies the course into SQL. The tables are a snapshot for external
// consumers; the application never reads content back from them.
type Seeder struct {
	db     *sql.DB
	events *syncx.EventRepo
	siteID string
	log    *logger.Logger
}

func NewSeeder(db *sql.DB, siteID string, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{db: db, events: syncx.NewEventRepo(db), siteID: siteID, log: log}
}

// Events exposes the event log the seeder writes to.
func (s *Seeder) Events() *syncx.EventRepo { return s.events }

// Seed replaces the stored snapshot with tracks in a single transaction and
// records a CatalogSeeded event in the same transaction.
func (s *Seeder) Seed(ctx context.Context, tracks []course.Track) (SeedReport, error) {
	rep := SeedReport{RunID: uuid.NewString()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return rep, err
	}
	defer tx.Rollback() // no-op after Commit

	for _, table := range []string{"exercises", "lessons", "modules", "tracks"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return rep, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for ti, t := range tracks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tracks (slug, position, title, description) VALUES ($1,$2,$3,$4)`,
			t.Slug, ti, t.Title, t.Description); err != nil {
			return rep, fmt.Errorf("track %s: %w", t.Slug, err)
		}
		rep.Tracks++
		for mi, m := range t.Modules {
			if err := seedModule(ctx, tx, t.Slug, mi, m, &rep); err != nil {
				return rep, err
			}
		}
	}

	data, err := json.Marshal(rep)
	if err != nil {
		return rep, err
	}
	if err := s.events.WithTx(tx).Append(ctx, syncx.Event{
		SiteID:   s.siteID,
		Type:     syncx.EventCatalogSeeded,
		Key:      rep.RunID,
		DataJSON: string(data),
	}); err != nil {
		return rep, fmt.Errorf("append event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return rep, err
	}
	s.log.Info("catalog seeded", "run_id", rep.RunID, "modules", rep.Modules, "lessons", rep.Lessons, "exercises", rep.Exercises)
	return rep, nil
}

func seedModule(ctx context.Context, tx *sql.Tx, track string, pos int, m course.Module, rep *SeedReport) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO modules (id, track_slug, position, title, description) VALUES ($1,$2,$3,$4,$5)`,
		m.ID, track, pos, m.Title, m.Description); err != nil {
		return fmt.Errorf("module %s: %w", m.ID, err)
	}
	rep.Modules++
	for li, l := range m.Lessons {
		content, err := json.Marshal(l.Content)
		if err != nil {
			return fmt.Errorf("lesson %s/%s content: %w", m.ID, l.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lessons (module_id, id, position, title, xp, content_json) VALUES ($1,$2,$3,$4,$5,$6)`,
			m.ID, l.ID, li, l.Title, l.XP, string(content)); err != nil {
			return fmt.Errorf("lesson %s/%s: %w", m.ID, l.ID, err)
		}
		rep.Lessons++
		for ei, e := range l.Exercises {
			data, err := course.MarshalExercise(e)
			if err != nil {
				return fmt.Errorf("exercise %s/%s/%d: %w", m.ID, l.ID, ei, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO exercises (module_id, lesson_id, id, position, typ, data_json) VALUES ($1,$2,$3,$4,$5,$6)`,
				m.ID, l.ID, e.ExerciseID(), ei, string(e.Kind()), string(data)); err != nil {
				return fmt.Errorf("exercise %s/%s/%s: %w", m.ID, l.ID, e.ExerciseID(), err)
			}
			rep.Exercises++
		}
	}
	return nil
}

// LoadModule reads a seeded module back, for verifying a seed.
func (s *Seeder) LoadModule(ctx context.Context, id string) (course.Module, error) {
	var m course.Module
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description FROM modules WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return course.Module{}, fmt.Errorf("%s: %w", id, ErrModuleNotSeeded)
	}
	if err != nil {
		return course.Module{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, xp, content_json FROM lessons WHERE module_id = $1 ORDER BY position`, id)
	if err != nil {
		return course.Module{}, err
	}
	for rows.Next() {
		var l course.Lesson
		var content string
		if err := rows.Scan(&l.ID, &l.Title, &l.XP, &content); err != nil {
			rows.Close()
			return course.Module{}, err
		}
		if err := json.Unmarshal([]byte(content), &l.Content); err != nil {
			rows.Close()
			return course.Module{}, fmt.Errorf("lesson %s/%s content: %w", id, l.ID, err)
		}
		m.Lessons = append(m.Lessons, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return course.Module{}, err
	}

	// Exercises are read after the lesson cursor is closed; sqlite runs on
	// one connection.
	for i := range m.Lessons {
		exs, err := s.loadExercises(ctx, id, m.Lessons[i].ID)
		if err != nil {
			return course.Module{}, err
		}
		m.Lessons[i].Exercises = exs
	}
	return m, nil
}

func (s *Seeder) loadExercises(ctx context.Context, moduleID, lessonID string) (course.ExerciseList, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data_json FROM exercises WHERE module_id = $1 AND lesson_id = $2 ORDER BY position`,
		moduleID, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out course.ExerciseList
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		e, err := course.UnmarshalExercise([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", moduleID, lessonID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
