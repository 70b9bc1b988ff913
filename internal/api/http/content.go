package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/rbac"
)

const defaultSearchLimit = 20

// showAnswers is true for roles allowed to see answers, unless they ask for
// the learner view with ?view=learner.
func showAnswers(r *http.Request) bool {
	return rbac.Can(r.Context(), rbac.PermViewAnswers) && r.URL.Query().Get("view") != "learner"
}

type trackSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Modules     []string `json:"modules"`
}

// GET /tracks
func ListTracksHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracks := cat.Tracks()
		out := make([]trackSummary, 0, len(tracks))
		for _, t := range tracks {
			ids := make([]string, 0, len(t.Modules))
			for _, m := range t.Modules {
				ids = append(ids, m.ID)
			}
			out = append(out, trackSummary{Slug: t.Slug, Title: t.Title, Description: t.Description, Modules: ids})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /modules
func ListModulesHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cat.Summaries())
	}
}

// GET /modules/{moduleID}
func GetModuleHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cat.Module(chi.URLParam(r, "moduleID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !showAnswers(r) {
			m = m.ForLearner()
		}
		writeJSON(w, http.StatusOK, m)
	}
}

// GET /modules/{moduleID}/lessons/{lessonID}
func GetLessonHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := cat.Lesson(chi.URLParam(r, "moduleID"), chi.URLParam(r, "lessonID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !showAnswers(r) {
			l = l.ForLearner()
		}
		writeJSON(w, http.StatusOK, l)
	}
}

// GET /modules/{moduleID}/lessons/{lessonID}/next -> 204 after the last lesson
func NextLessonHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, ok, err := cat.Next(chi.URLParam(r, "moduleID"), chi.URLParam(r, "lessonID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, ref)
	}
}

// GET /stats
func StatsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cat.Stats())
	}
}

// GET /search?q=&limit=
func SearchHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Error(w, "q required", http.StatusBadRequest)
			return
		}
		limit := defaultSearchLimit
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}
		hits := cat.Search(q, limit)
		if hits == nil {
			hits = []catalog.Hit{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"query": q, "hits": hits})
	}
}

// GET /kinds lists the exercise types clients must be able to render.
func KindsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, course.Kinds)
	}
}
