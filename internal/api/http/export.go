package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/export"
	"github.com/mind-engage/pppcourse/internal/logger"
	"github.com/mind-engage/pppcourse/internal/qti"
)

func formatParam(r *http.Request) (export.Format, error) {
	f := r.URL.Query().Get("format")
	if f == "" {
		return export.FormatJSON, nil
	}
	return export.ParseFormat(f)
}

// GET /export?format=json|yaml streams the full bundle with answers.
func ExportHandler(cat *catalog.Catalog, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := formatParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", f.ContentType())
		w.Header().Set("Content-Disposition", `attachment; filename="course.`+f.Ext()+`"`)
		if err := export.Write(w, f, export.NewBundle(cat.Tracks())); err != nil {
			log.Error("export write failed", "format", f, "error", err)
		}
	}
}

// POST /publish?format=json|yaml writes the bundle into the blob store.
func PublishHandler(cat *catalog.Catalog, pub *export.Publisher, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := formatParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		keys, err := pub.Publish(r.Context(), cat.Tracks(), f)
		if err != nil {
			log.Error("publish failed", "format", f, "error", err)
			http.Error(w, "publish failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"keys": keys})
	}
}

// GET /modules/{moduleID}/qti returns the module as a QTI 2.1 package.
func QTIPackageHandler(cat *catalog.Catalog, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := cat.Module(chi.URLParam(r, "moduleID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		pkg, err := qti.BuildPackage(m)
		if err != nil {
			log.Error("qti build failed", "module", m.ID, "error", err)
			http.Error(w, "qti build failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="`+m.ID+`.zip"`)
		_, _ = w.Write(pkg)
	}
}
