package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/agestamp/internal/config"
	"github.com/backmassage/agestamp/internal/display"
	"github.com/backmassage/agestamp/internal/logging"
	"github.com/backmassage/agestamp/internal/pipeline"
	"github.com/backmassage/agestamp/internal/renamelog"
)

const longHelp = `Rename image files based on a person's age at the time the photo was
taken, or undo renames using the log file.

Renames follow the pattern Name_YYYYMMDD_Age_NNN.ext, where the age is
DDdays under 28 days, MMmonths under 12 months, and YYyears beyond.
The three-digit counter resets per capture date. Every executed rename
is recorded in rename_log.csv inside the target directory; --undo
replays that log newest-first and then deletes it.

Examples:
  agestamp ./photos "Jane Doe" 01-15-2023
  agestamp ./photos "Jane Doe" 01-15-2023 --recursive --dry-run
  agestamp ./photos --undo --force
  agestamp --config tasks.json --dry-run`

// newRootCmd wires flags into a Config and dispatches on the selected
// mode: rename, undo, or config batch.
func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var forceColor, noColor bool

	cmd := &cobra.Command{
		Use:           "agestamp [path] [name] [birth]",
		Short:         "Rename photos by the subject's age at capture time",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(3),
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Path = config.NormalizeDirArg(args[0])
			}
			if len(args) > 1 {
				cfg.Name = args[1]
			}
			if len(args) > 2 {
				cfg.Birth = args[2]
			}
			if noColor {
				cfg.ColorMode = config.ColorNever
			} else if forceColor {
				cfg.ColorMode = config.ColorAlways
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&cfg.ConfigFile, "config", "", "JSON config file listing multiple tasks")
	fl.BoolVar(&cfg.Undo, "undo", false, "Reverse renames recorded in the log file")
	fl.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Process directories recursively")
	fl.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Show changes without applying them")
	fl.BoolVarP(&cfg.Force, "force", "f", false, "Skip confirmation on undo")
	fl.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fl.StringVarP(&cfg.LogFile, "log", "l", "", "Append status output to a file")
	fl.BoolVar(&forceColor, "color", false, "Force colored output")
	fl.BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// run executes the selected mode with a configured logger. Task-level
// errors propagate to main for the "agestamp: ..." prefix; per-file
// errors are already reported by the pipeline.
func run(cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.Undo {
		renamelog.New(undoRoot(cfg.Path)).Undo(cfg.Force, renamelog.StdinConfirm, log)
		return nil
	}

	if cfg.ConfigFile != "" {
		return runBatch(cfg, log)
	}

	runner := &pipeline.Runner{Log: log}
	if _, err := runner.Run(cfg.Task()); err != nil {
		return err
	}
	return nil
}

// runBatch processes every task from the JSON config file strictly in
// order. A task that fails validation or execution is reported and the
// batch moves on; batch mode never aborts the invocation over one task.
func runBatch(cfg *config.Config, log *logging.Logger) error {
	tf, err := config.LoadTaskFile(cfg.ConfigFile)
	if err != nil {
		return err
	}

	log.Info("Processing %s from config file...", display.FormatCount(len(tf.Tasks), "task"))
	runner := &pipeline.Runner{Log: log}

	failed := 0
	for i, entry := range tf.Tasks {
		log.Info("")
		log.Info("Task %d/%d:", i+1, len(tf.Tasks))

		if err := entry.Validate(); err != nil {
			log.Error("%v", err)
			failed++
			continue
		}

		task := entry.Task(cfg.DryRun)
		log.Info("Processing: %s for %s (born %s)", task.Path, task.Name, entry.Birth)
		if _, err := runner.Run(task); err != nil {
			log.Error("%v", err)
			failed++
		}
	}

	if failed > 0 {
		log.Warn("%d of %d tasks failed", failed, len(tf.Tasks))
	}
	return nil
}

// undoRoot resolves the directory whose rename log should be replayed:
// the path itself when it is an existing directory, otherwise its parent.
func undoRoot(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
