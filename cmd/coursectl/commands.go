package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mind-engage/pppcourse/internal/catalog"
	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/db"
	"github.com/mind-engage/pppcourse/internal/export"
	"github.com/mind-engage/pppcourse/internal/storage"
	syncx "github.com/mind-engage/pppcourse/internal/sync"
)

var errInvalidContent = errors.New("course content is invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every module, lesson and exercise and list all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := multierr.Errors(course.ValidateTracks(a.tracks))
			out := cmd.OutOrStdout()
			for _, err := range errs {
				fmt.Fprintln(out, err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%w: %d problem(s)", errInvalidContent, len(errs))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}

func (a *app) catalog() (*catalog.Catalog, error) {
	return catalog.New(a.tracks)
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-module counts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MODULE\tTRACK\tLESSONS\tEXERCISES\tXP\tTITLE")
			for _, s := range cat.Summaries() {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", s.ID, s.Track, s.Lessons, s.Exercises, s.XP, s.Title)
			}
			st := cat.Stats()
			fmt.Fprintf(tw, "TOTAL\t%d tracks\t%d\t%d\t%d\t\n", st.Tracks, st.Lessons, st.Exercises, st.TotalXP)
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, k := range course.Kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", k, st.ByKind[k])
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format, outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write course.<ext> and modules/<id>.<ext> (or qti/<id>.zip) to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.catalog(); err != nil {
				return err
			}
			if outDir == "" {
				outDir = a.cfg.BlobBasePath
			}
			store, err := storage.NewFSStore(outDir)
			if err != nil {
				return err
			}
			pub := export.NewPublisher(store, a.log)

			var keys []string
			if format == "qti" {
				keys, err = pub.PublishQTI(cmd.Context(), a.tracks)
			} else {
				var f export.Format
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
				keys, err = pub.Publish(cmd.Context(), a.tracks, f)
			}
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, filepath.FromSlash(k)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "json, yaml or qti")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "target directory (default: config blob_base_path)")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	var driver, dsn string
	var history bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy the course into a SQL database as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if driver == "" {
				driver = a.cfg.DBDriver
			}
			if dsn == "" {
				dsn = a.cfg.DBDSN
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			dbh, err := db.Open(ctx, db.Driver(driver), dsn)
			if err != nil {
				return fmt.Errorf("db open: %w", err)
			}
			defer dbh.Close()
			s := export.NewSeeder(dbh, a.cfg.SiteID, a.log)

			out := cmd.OutOrStdout()
			if history {
				events, err := s.Events().Since(ctx, syncx.EventCatalogSeeded, 0, 0)
				if err != nil {
					return err
				}
				for _, e := range events {
					fmt.Fprintf(out, "%d\t%s\t%s\n", e.Seq, e.Key, e.DataJSON)
				}
				return nil
			}

			if _, err := a.catalog(); err != nil {
				return err
			}
			rep, err := s.Seed(ctx, a.tracks)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "run %s: %d tracks, %d modules, %d lessons, %d exercises\n",
				rep.RunID, rep.Tracks, rep.Modules, rep.Lessons, rep.Exercises)
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "sqlite or postgres (default: config db_driver)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "data source name (default: config db_dsn)")
	cmd.Flags().BoolVar(&history, "history", false, "list previous seeding runs instead of seeding")
	return cmd
}

func newLessonCmd(a *app) *cobra.Command {
	var learner bool
	var format string
	cmd := &cobra.Command{
		Use:   "lesson <module> <lesson>",
		Short: "Print one lesson",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			l, err := cat.Lesson(args[0], args[1])
			if err != nil {
				return err
			}
			if learner {
				l = l.ForLearner()
			}
			return export.Write(cmd.OutOrStdout(), f, l)
		},
	}
	cmd.Flags().BoolVar(&learner, "learner", false, "hide answers as learners see them")
	cmd.Flags().StringVar(&format, "format", "yaml", "json or yaml")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find examples, flashcards and cheat-sheet rows, ignoring accents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			hits := cat.Search(args[0], limit)
			if len(hits) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, h := range hits {
				fmt.Fprintf(tw, "%s/%s\t%s\t%s\t%s\n", h.ModuleID, h.LessonID, h.Source, h.PT, h.EN)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results (0 for all)")
	return cmd
}
