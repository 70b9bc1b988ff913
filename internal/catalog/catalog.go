// Package catalog is a read-only index over the course tracks.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mind-engage/pppcourse/internal/course"
)

var ErrNotFound = errors.New("not found")

type lessonRef struct {
	module int
	lesson int
}

// Catalog indexes tracks by module and lesson id. It is built once and never
// mutated, so it is safe for concurrent readers.
type Catalog struct {
	tracks  []course.Track
	modules []course.Module
	byID    map[string]int
	order   []lessonRef
	pos     map[string]int // "module/lesson" -> index in order
	terms   []entry
}

// New validates tracks and builds the indexes. Every shape problem is
// returned, combined with multierr.
func New(tracks []course.Track) (*Catalog, error) {
	if err := course.ValidateTracks(tracks); err != nil {
		return nil, fmt.Errorf("invalid course content: %w", err)
	}
	c := &Catalog{
		tracks: tracks,
		byID:   make(map[string]int),
		pos:    make(map[string]int),
	}
	for _, t := range tracks {
		for _, m := range t.Modules {
			mi := len(c.modules)
			c.modules = append(c.modules, m)
			c.byID[m.ID] = mi
			for li, l := range m.Lessons {
				c.pos[m.ID+"/"+l.ID] = len(c.order)
				c.order = append(c.order, lessonRef{module: mi, lesson: li})
			}
		}
	}
	c.terms = buildIndex(c.modules)
	return c, nil
}

// Tracks returns the tracks in catalog order.
func (c *Catalog) Tracks() []course.Track { return c.tracks }

// Modules returns every module in catalog order.
func (c *Catalog) Modules() []course.Module { return c.modules }

func (c *Catalog) Module(id string) (course.Module, error) {
	i, ok := c.byID[id]
	if !ok {
		return course.Module{}, fmt.Errorf("module %q: %w", id, ErrNotFound)
	}
	return c.modules[i], nil
}

func (c *Catalog) Lesson(moduleID, lessonID string) (course.Lesson, error) {
	i, ok := c.pos[moduleID+"/"+lessonID]
	if !ok {
		return course.Lesson{}, fmt.Errorf("lesson %s/%s: %w", moduleID, lessonID, ErrNotFound)
	}
	ref := c.order[i]
	return c.modules[ref.module].Lessons[ref.lesson], nil
}

// LessonRef names a lesson by its module.
type LessonRef struct {
	ModuleID string `json:"moduleId"`
	LessonID string `json:"lessonId"`
	Title    string `json:"title"`
}

// Next returns the lesson after moduleID/lessonID, moving into the following
// module when the current one is finished. ok is false after the last lesson.
func (c *Catalog) Next(moduleID, lessonID string) (ref LessonRef, ok bool, err error) {
	i, found := c.pos[moduleID+"/"+lessonID]
	if !found {
		return LessonRef{}, false, fmt.Errorf("lesson %s/%s: %w", moduleID, lessonID, ErrNotFound)
	}
	if i+1 >= len(c.order) {
		return LessonRef{}, false, nil
	}
	n := c.order[i+1]
	m := c.modules[n.module]
	l := m.Lessons[n.lesson]
	return LessonRef{ModuleID: m.ID, LessonID: l.ID, Title: l.Title}, true, nil
}

// ModuleSummary is a module without its lesson bodies.
type ModuleSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Track       string `json:"track"`
	Lessons     int    `json:"lessons"`
	Exercises   int    `json:"exercises"`
	XP          int    `json:"xp"`
}

func (c *Catalog) Summaries() []ModuleSummary {
	out := make([]ModuleSummary, 0, len(c.modules))
	for _, t := range c.tracks {
		for _, m := range t.Modules {
			out = append(out, ModuleSummary{
				ID:          m.ID,
				Title:       m.Title,
				Description: m.Description,
				Track:       t.Slug,
				Lessons:     len(m.Lessons),
				Exercises:   m.ExerciseCount(),
				XP:          m.TotalXP(),
			})
		}
	}
	return out
}

type Stats struct {
	Tracks    int                 `json:"tracks"`
	Modules   int                 `json:"modules"`
	Lessons   int                 `json:"lessons"`
	Exercises int                 `json:"exercises"`
	TotalXP   int                 `json:"totalXp"`
	ByKind    map[course.Kind]int `json:"byKind"`
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Tracks:  len(c.tracks),
		Modules: len(c.modules),
		Lessons: len(c.order),
		ByKind:  make(map[course.Kind]int, len(course.Kinds)),
	}
	for _, m := range c.modules {
		s.TotalXP += m.TotalXP()
		for _, l := range m.Lessons {
			s.Exercises += len(l.Exercises)
			for k, n := range l.Exercises.CountByKind() {
				s.ByKind[k] += n
			}
		}
	}
	return s
}
