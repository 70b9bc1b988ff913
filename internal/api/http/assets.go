package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/pppcourse/internal/storage"
)

// MountAssets serves published bundles read-only.
func MountAssets(r chi.Router, bs storage.BlobStore) {
	// GET /assets/*   -> returns the blob at whatever follows /assets/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		rc, err := bs.Get(r.Context(), key)
		switch {
		case errors.Is(err, storage.ErrInvalidKey):
			http.Error(w, "bad key", http.StatusBadRequest)
			return
		case errors.Is(err, fs.ErrNotExist):
			http.Error(w, "not found", http.StatusNotFound)
			return
		case err != nil:
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
		defer rc.Close()
		switch path.Ext(key) {
		case ".json":
			w.Header().Set("Content-Type", "application/json")
		case ".yaml":
			w.Header().Set("Content-Type", "application/yaml")
		default:
			w.Header().Set("Content-Type", "application/octet-stream")
		}
		_, _ = io.Copy(w, rc)
	})
}
