package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/curriculum"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(curriculum.MustTracks())
	require.NoError(t, err)
	return c
}

func lesson(id string, xp int, exs ...course.Exercise) course.Lesson {
	return course.Lesson{
		ID:        id,
		Title:     "Lesson " + id,
		XP:        xp,
		Exercises: exs,
	}
}

func TestNew_RejectsInvalidContent(t *testing.T) {
	tracks := []course.Track{{
		Slug:  "t",
		Title: "T",
		Modules: []course.Module{
			{ID: "m1", Title: "One", Lessons: []course.Lesson{lesson("l1", 0, course.NewFlashcard("e1", "a", "b"))}},
			{ID: "m1", Title: "Dup", Lessons: []course.Lesson{lesson("l1", 5, course.NewMCQ("e1", "?", "x", "y", "z"))}},
		},
	}}

	_, err := catalog.New(tracks)
	require.Error(t, err)
	msgs := make([]string, 0)
	for _, e := range multierr.Errors(errors.Unwrap(err)) {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, "m1: duplicate module id")
	assert.Contains(t, msgs, "m1/l1: xp must be a positive integer, got 0")
	assert.Contains(t, msgs, `m1/l1/e1: mcq correct answer "x" not among options`)
}

func TestLookups(t *testing.T) {
	c := newCatalog(t)

	m, err := c.Module("m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)

	l, err := c.Lesson("m1", "m1l1")
	require.NoError(t, err)
	assert.Equal(t, "e1", l.Exercises[0].ExerciseID())

	_, err = c.Module("nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = c.Lesson("m1", "m2l1")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestNext(t *testing.T) {
	c := newCatalog(t)

	ref, ok, err := c.Next("m1", "m1l1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog.LessonRef{ModuleID: "m1", LessonID: "m1l2", Title: "Introducing Yourself"}, ref)

	// Crosses into the next module.
	ref, ok, err = c.Next("m1", "m1l2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "m2", ref.ModuleID)
	assert.Equal(t, "m2l1", ref.LessonID)

	mods := c.Modules()
	last := mods[len(mods)-1]
	_, ok, err = c.Next(last.ID, last.Lessons[len(last.Lessons)-1].ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = c.Next("m1", "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestStatsAndSummaries(t *testing.T) {
	tracks := []course.Track{{
		Slug:  "t",
		Title: "T",
		Modules: []course.Module{
			{ID: "a", Title: "A", Lessons: []course.Lesson{
				lesson("a1", 10, course.NewFlashcard("e1", "um", "one"), course.NewTyping("e2", "?", "dois")),
				lesson("a2", 5, course.NewFlashcard("e1", "três", "three")),
			}},
			{ID: "b", Title: "B", Lessons: []course.Lesson{
				lesson("b1", 20, course.NewOrder("e1", "I am", "Eu", "sou")),
			}},
		},
	}}
	c, err := catalog.New(tracks)
	require.NoError(t, err)

	s := c.Stats()
	assert.Equal(t, 1, s.Tracks)
	assert.Equal(t, 2, s.Modules)
	assert.Equal(t, 3, s.Lessons)
	assert.Equal(t, 4, s.Exercises)
	assert.Equal(t, 35, s.TotalXP)
	assert.Equal(t, 2, s.ByKind[course.KindFlashcard])
	assert.Equal(t, 1, s.ByKind[course.KindOrder])

	sums := c.Summaries()
	require.Len(t, sums, 2)
	assert.Equal(t, catalog.ModuleSummary{ID: "a", Title: "A", Track: "t", Lessons: 2, Exercises: 3, XP: 15}, sums[0])
}

func TestSearch_IgnoresAccentsAndCase(t *testing.T) {
	c := newCatalog(t)

	hits := c.Search("ola", 0)
	require.NotEmpty(t, hits)
	var found bool
	for _, h := range hits {
		if h.PT == "Olá" && h.ModuleID == "m1" {
			found = true
		}
	}
	assert.True(t, found, "expected Olá in %v", hits)

	assert.NotEmpty(t, c.Search("  ATÉ   amanha ", 0))
	assert.Len(t, c.Search("a", 3), 3)
	assert.Empty(t, c.Search("   ", 10))
	assert.Empty(t, c.Search("zzzzqqq", 10))
}

func TestSearch_MatchesOneLanguageAtATime(t *testing.T) {
	c := newCatalog(t)

	assert.NotEmpty(t, c.Search("bom dia", 0))
	assert.NotEmpty(t, c.Search("good morning", 0))
	assert.Empty(t, c.Search("dia good", 0))
	assert.Empty(t, c.Search("morning bom", 0))
}
