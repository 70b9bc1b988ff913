package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mind-engage/pppcourse/internal/course"
)

// Hit is one search match.
type Hit struct {
	ModuleID string `json:"moduleId"`
	LessonID string `json:"lessonId"`
	Source   string `json:"source"` // example, flashcard, cheatsheet
	PT       string `json:"pt"`
	EN       string `json:"en"`
}

// entry keeps the folded sides apart so a query never spans both.
type entry struct {
	hit    Hit
	pt, en string
}

// fold lowercases s and strips combining marks, so "Olá" and "ola" compare
// equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

func buildIndex(mods []course.Module) []entry {
	var idx []entry
	add := func(h Hit) {
		idx = append(idx, entry{hit: h, pt: fold(h.PT), en: fold(h.EN)})
	}
	for _, m := range mods {
		for _, l := range m.Lessons {
			for _, s := range l.Content.Sections {
				for _, ex := range s.Examples {
					add(Hit{ModuleID: m.ID, LessonID: l.ID, Source: "example", PT: ex.PT, EN: ex.EN})
				}
			}
			if cs := l.Content.CheatSheet; cs != nil {
				for _, r := range cs.Rows {
					add(Hit{ModuleID: m.ID, LessonID: l.ID, Source: "cheatsheet", PT: r.Value, EN: r.Label})
				}
			}
			for _, e := range l.Exercises {
				if f, ok := e.(course.Flashcard); ok {
					add(Hit{ModuleID: m.ID, LessonID: l.ID, Source: "flashcard", PT: f.Term, EN: f.Translation})
				}
			}
		}
	}
	return idx
}

// Search returns up to limit entries whose Portuguese text or English text
// contains q, ignoring case and accents. A limit of zero or less means no
// limit. Duplicate phrases within one lesson are reported once.
func (c *Catalog) Search(q string, limit int) []Hit {
	needle := fold(q)
	if needle == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []Hit
	for _, e := range c.terms {
		if !strings.Contains(e.pt, needle) && !strings.Contains(e.en, needle) {
			continue
		}
		k := e.hit.ModuleID + "/" + e.hit.LessonID + "/" + e.pt + "|" + e.en
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e.hit)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
