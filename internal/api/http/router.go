package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	auth "github.com/mind-engage/pppcourse/internal/auth/middleware"
	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/export"
	"github.com/mind-engage/pppcourse/internal/logger"
	"github.com/mind-engage/pppcourse/internal/rbac"
	"github.com/mind-engage/pppcourse/internal/storage"
)

type Deps struct {
	Catalog *catalog.Catalog
	Auth    *auth.AuthService
	Author  auth.Credentials
	Log     *logger.Logger

	// Blobs enables POST /publish and GET /assets/*. Optional.
	Blobs storage.BlobStore

	CORSOrigins []string
	Timeout     time.Duration
}

func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Timeout <= 0 {
		d.Timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger(d.Log), middleware.Recoverer)
	r.Use(middleware.Timeout(d.Timeout))
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Post("/auth/login", auth.LoginHandler(d.Auth, d.Author, d.Log))

	// Content API (optional JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(d.Auth))
		pr.Use(rbac.Require(rbac.PermView))

		pr.Get("/kinds", KindsHandler())
		pr.Get("/tracks", ListTracksHandler(d.Catalog))
		pr.Get("/modules", ListModulesHandler(d.Catalog))
		pr.Get("/modules/{moduleID}", GetModuleHandler(d.Catalog))
		pr.Get("/modules/{moduleID}/lessons/{lessonID}", GetLessonHandler(d.Catalog))
		pr.Get("/modules/{moduleID}/lessons/{lessonID}/next", NextLessonHandler(d.Catalog))
		pr.Get("/stats", StatsHandler(d.Catalog))
		pr.Get("/search", SearchHandler(d.Catalog))

		pr.With(rbac.Require(rbac.PermExport)).
			Get("/export", ExportHandler(d.Catalog, d.Log))
		pr.With(rbac.Require(rbac.PermExport)).
			Get("/modules/{moduleID}/qti", QTIPackageHandler(d.Catalog, d.Log))
		if d.Blobs != nil {
			pub := export.NewPublisher(d.Blobs, d.Log)
			pr.With(rbac.Require(rbac.PermExport)).
				Post("/publish", PublishHandler(d.Catalog, pub, d.Log))

			// published bundles carry answers
			pr.Route("/assets", func(ar chi.Router) {
				ar.Use(rbac.Require(rbac.PermExport))
				MountAssets(ar, d.Blobs)
			})
		}
	})

	return r
}
