package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/mind-engage/pppcourse/internal/api/http"
	auth "github.com/mind-engage/pppcourse/internal/auth/middleware"
	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/config"
	"github.com/mind-engage/pppcourse/internal/curriculum"
	"github.com/mind-engage/pppcourse/internal/logger"
	"github.com/mind-engage/pppcourse/internal/storage"
)

func main() {
	configPath := flag.String("config", os.Getenv("COURSE_CONFIG"), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("gateway stopped", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	// --- Content ---
	tracks, err := curriculum.Tracks()
	if err != nil {
		return fmt.Errorf("load curriculum: %w", err)
	}
	cat, err := catalog.New(tracks)
	if err != nil {
		return err
	}
	st := cat.Stats()
	log.Info("catalog ready", "modules", st.Modules, "lessons", st.Lessons, "exercises", st.Exercises)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		return fmt.Errorf("blob store: %w", err)
	}
	if cfg.AuthorPassHash == "" {
		log.Warn("AUTHOR_PASS_HASH not set; author login disabled")
	}

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewRouter(api.Deps{
			Catalog:     cat,
			Auth:        auth.NewAuthService(cfg.AuthHMACSecret),
			Author:      auth.Credentials{User: cfg.AuthorUser, PassHash: cfg.AuthorPassHash},
			Log:         log,
			Blobs:       bs,
			CORSOrigins: cfg.CORSOrigins,
			Timeout:     cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "blobs", cfg.BlobBasePath)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
