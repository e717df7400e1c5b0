package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"videofix/internal/config"
	"videofix/internal/discovery"
	"videofix/internal/history"
	"videofix/internal/logging"
	"videofix/internal/processing"
	"videofix/internal/reporter"
)

func newCheckCommand(cctx *commandContext) *cobra.Command {
	var (
		fix        bool
		targetName string
		jsonOutput bool
		verbose    bool
		noLog      bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check media files against a format target",
		Long: `Check inspects the given file, or every media file directly inside the
given directory, against a named format target from the configuration.
With --fix, non-compliant files are remediated by a minimal transcode
that stream-copies every dimension that already complies.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			name := targetName
			if name == "" {
				name = cfg.DefaultTarget
			}
			target, err := config.ResolveTarget(name, cfg.Targets)
			if err != nil {
				return err
			}

			return runCheck(cmd, cfg, *target, root, checkOptions{
				fix:     fix,
				json:    jsonOutput,
				verbose: verbose,
				noLog:   noLog,
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Remediate non-compliant files")
	cmd.Flags().StringVarP(&targetName, "target", "t", "", "Format target name (defaults to the configured default_target)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit NDJSON events instead of terminal output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Disable the run log file")

	return cmd
}

type checkOptions struct {
	fix     bool
	json    bool
	verbose bool
	noLog   bool
}

func runCheck(cmd *cobra.Command, cfg *config.Config, target config.Target, root string, opts checkOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	files, err := discovery.SelectFiles(root)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogDir, opts.verbose, opts.noLog)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	var rep reporter.Reporter
	if opts.json {
		rep = reporter.NewJSONReporter()
	} else {
		rep = reporter.NewTerminalReporter()
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("scan history disabled: %v", err)
			rep.Warning(fmt.Sprintf("scan history disabled: %v", err))
		} else {
			defer func() { _ = store.Close() }()
		}
	}

	if opts.fix {
		lock, err := processing.AcquireFixLock(cfg.LogDir)
		if err != nil {
			return err
		}
		defer func() { _ = lock.Release() }()
	}

	results, err := processing.ProcessFiles(ctx, files, processing.Options{
		Target:  target,
		Fix:     opts.fix,
		History: store,
		RunID:   uuid.NewString(),
		Logger:  logger,
	}, rep)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	return nil
}
