// Command coursectl validates, inspects and exports the course content.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/pppcourse/internal/config"
	"github.com/mind-engage/pppcourse/internal/course"
	"github.com/mind-engage/pppcourse/internal/curriculum"
	"github.com/mind-engage/pppcourse/internal/logger"
)

// app carries what every subcommand needs; PersistentPreRunE fills it.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	log    *logger.Logger
	tracks []course.Track
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "coursectl",
		Short:         "Inspect and export the Portuguese course content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logger.Nop()
			if a.verbose {
				if a.log, err = logger.New(a.cfg.LogMode); err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			a.tracks, err = curriculum.Tracks()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("COURSE_CONFIG"), "optional YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newValidateCmd(a),
		newStatsCmd(a),
		newExportCmd(a),
		newSeedCmd(a),
		newLessonCmd(a),
		newSearchCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
