package course

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ValidationError locates one shape problem, e.g. "m1/m1l1/e6: correct
// answer not among options".
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return e.Path + ": " + e.Msg
}

func invalid(path, format string, args ...any) error {
	return &ValidationError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

func joinPath(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "/")
}

// ValidateTracks checks every track and the collection-wide uniqueness of
// track slugs and module ids. Individual problems are combined with
// multierr; use multierr.Errors to list them.
func ValidateTracks(tracks []Track) error {
	var err error
	slugs := make(map[string]bool, len(tracks))
	var all []Module
	for _, t := range tracks {
		if strings.TrimSpace(t.Slug) == "" {
			err = multierr.Append(err, invalid(t.Title, "track slug is required"))
		} else if slugs[t.Slug] {
			err = multierr.Append(err, invalid(t.Slug, "duplicate track slug"))
		}
		slugs[t.Slug] = true
		if len(t.Modules) == 0 {
			err = multierr.Append(err, invalid(t.Slug, "track has no modules"))
		}
		all = append(all, t.Modules...)
	}
	return multierr.Append(err, ValidateModules(all))
}

// ValidateModules validates each module and requires module ids to be
// unique across mods.
func ValidateModules(mods []Module) error {
	var err error
	seen := make(map[string]bool, len(mods))
	for _, m := range mods {
		if m.ID != "" && seen[m.ID] {
			err = multierr.Append(err, invalid(m.ID, "duplicate module id"))
		}
		seen[m.ID] = true
		err = multierr.Append(err, m.Validate())
	}
	return err
}

func (m Module) Validate() error {
	var err error
	if strings.TrimSpace(m.ID) == "" {
		err = multierr.Append(err, invalid(m.Title, "module id is required"))
	}
	if strings.TrimSpace(m.Title) == "" {
		err = multierr.Append(err, invalid(m.ID, "module title is required"))
	}
	if len(m.Lessons) == 0 {
		err = multierr.Append(err, invalid(m.ID, "module has no lessons"))
	}
	seen := make(map[string]bool, len(m.Lessons))
	for _, l := range m.Lessons {
		if l.ID != "" && seen[l.ID] {
			err = multierr.Append(err, invalid(joinPath(m.ID, l.ID), "duplicate lesson id"))
		}
		seen[l.ID] = true
		err = multierr.Append(err, l.validate(m.ID))
	}
	return err
}

func (l Lesson) Validate() error { return l.validate("") }

func (l Lesson) validate(prefix string) error {
	path := joinPath(prefix, l.ID)
	var err error
	if strings.TrimSpace(l.ID) == "" {
		err = multierr.Append(err, invalid(path, "lesson id is required"))
	}
	if strings.TrimSpace(l.Title) == "" {
		err = multierr.Append(err, invalid(path, "lesson title is required"))
	}
	if l.XP <= 0 {
		err = multierr.Append(err, invalid(path, "xp must be a positive integer, got %d", l.XP))
	}
	for i, s := range l.Content.Sections {
		if strings.TrimSpace(s.Title) == "" {
			err = multierr.Append(err, invalid(path, "section %d has no title", i))
		}
		for j, ex := range s.Examples {
			if strings.TrimSpace(ex.PT) == "" || strings.TrimSpace(ex.EN) == "" {
				err = multierr.Append(err, invalid(path, "section %q example %d is incomplete", s.Title, j))
			}
		}
	}
	if len(l.Exercises) == 0 {
		err = multierr.Append(err, invalid(path, "lesson has no exercises"))
	}
	seen := make(map[string]bool, len(l.Exercises))
	for i, e := range l.Exercises {
		if e == nil {
			err = multierr.Append(err, invalid(path, "exercise %d is nil", i))
			continue
		}
		id := e.ExerciseID()
		epath := joinPath(path, id)
		if strings.TrimSpace(id) == "" {
			err = multierr.Append(err, invalid(path, "exercise %d has no id", i))
		} else if seen[id] {
			err = multierr.Append(err, invalid(epath, "duplicate exercise id"))
		}
		seen[id] = true
		if !e.Kind().Valid() {
			err = multierr.Append(err, invalid(epath, "%v %q", ErrUnknownKind, e.Kind()))
		}
		for _, msg := range e.check() {
			err = multierr.Append(err, invalid(epath, "%s", msg))
		}
	}
	return err
}

// ValidateExercise checks the required fields of a single exercise.
func ValidateExercise(e Exercise) error {
	if e == nil {
		return errNilExercise
	}
	var err error
	for _, msg := range e.check() {
		err = multierr.Append(err, invalid(e.ExerciseID(), "%s", msg))
	}
	return err
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (e Flashcard) check() []string {
	var p []string
	if blank(e.Term) {
		p = append(p, "flashcard term is required")
	}
	if blank(e.Translation) {
		p = append(p, "flashcard translation is required")
	}
	return p
}

func (e MCQ) check() []string {
	var p []string
	if blank(e.Prompt) {
		p = append(p, "mcq prompt is required")
	}
	if len(e.Options) < 2 {
		p = append(p, fmt.Sprintf("mcq needs at least 2 options, got %d", len(e.Options)))
	}
	seen := make(map[string]bool, len(e.Options))
	for _, o := range e.Options {
		if seen[o] {
			p = append(p, fmt.Sprintf("mcq option %q repeated", o))
		}
		seen[o] = true
	}
	if blank(e.Correct) {
		p = append(p, "mcq correct answer is required")
	} else if !contains(e.Options, e.Correct) {
		p = append(p, fmt.Sprintf("mcq correct answer %q not among options", e.Correct))
	}
	return p
}

func (e Typing) check() []string {
	var p []string
	if blank(e.Prompt) {
		p = append(p, "typing prompt is required")
	}
	if blank(e.Correct) {
		p = append(p, "typing correct answer is required")
	}
	return p
}

func (e Listening) check() []string {
	var p []string
	if blank(e.AudioTextPT) {
		p = append(p, "listening audioTextPt is required")
	}
	if blank(e.Correct) {
		p = append(p, "listening correct answer is required")
	} else if len(e.Options) > 0 && !contains(e.Options, e.Correct) {
		p = append(p, fmt.Sprintf("listening correct answer %q not among options", e.Correct))
	}
	return p
}

func (e Matching) check() []string {
	var p []string
	if len(e.Pairs) < 2 {
		p = append(p, fmt.Sprintf("matching needs at least 2 pairs, got %d", len(e.Pairs)))
	}
	for i, pr := range e.Pairs {
		if blank(pr.Left) || blank(pr.Right) {
			p = append(p, fmt.Sprintf("matching pair %d is incomplete", i))
		}
	}
	return p
}

func (e Order) check() []string {
	var p []string
	if len(e.Items) < 2 {
		p = append(p, fmt.Sprintf("order needs at least 2 items, got %d", len(e.Items)))
	}
	for i, it := range e.Items {
		if blank(it) {
			p = append(p, fmt.Sprintf("order item %d is empty", i))
		}
	}
	return p
}

func (e Pronunciation) check() []string {
	if blank(e.AudioTextPT) {
		return []string{"pronunciation audioTextPt is required"}
	}
	return nil
}
