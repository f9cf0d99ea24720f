// Package pipeline orchestrates one rename task: discovery, date
// grouping, name allocation, the physical rename loop, and log appends.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/agestamp/internal/config"
	"github.com/backmassage/agestamp/internal/display"
	"github.com/backmassage/agestamp/internal/logging"
	"github.com/backmassage/agestamp/internal/naming"
	"github.com/backmassage/agestamp/internal/probe"
	"github.com/backmassage/agestamp/internal/renamelog"
)

// Runner executes rename tasks sequentially. Resolve defaults to the
// EXIF/mtime resolver in [probe.CaptureDate]; tests substitute it.
type Runner struct {
	Log     *logging.Logger
	Resolve DateResolver
}

// Run processes one task end to end and returns its stats. The error
// covers task-level failures only (bad path, no eligible images,
// unwritable log header); individual rename failures are reported,
// counted, and survived.
func (r *Runner) Run(task config.Task) (RunStats, error) {
	var stats RunStats

	resolve := r.Resolve
	if resolve == nil {
		resolve = probe.CaptureDate
	}

	root, err := taskRoot(task.Path)
	if err != nil {
		return stats, err
	}
	rlog := renamelog.New(root)

	files, err := Discover(task.Path, task.Recursive)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("no images found at %s", task.Path)
	}
	stats.Total = len(files)
	r.Log.Info("Found %s", display.FormatCount(stats.Total, "image"))

	already := rlog.AlreadyRenamed()

	// The log file exists from the first moment a live task could rename
	// anything, so even a task that fails every rename leaves a header
	// for the next run. Dry runs never touch it.
	if !task.DryRun {
		if err := rlog.EnsureHeader(); err != nil {
			return stats, fmt.Errorf("cannot create rename log: %w", err)
		}
	}

	groups := GroupByDate(files, resolve)
	alloc := &naming.Allocator{Subject: task.Name, Birth: task.Birth}

	for _, date := range SortedDates(groups) {
		bucket := groups[date]
		r.Log.Debug("Bucket %s: %s", display.DateLabel(date), display.FormatCount(len(bucket), "file"))
		for _, a := range alloc.Allocate(date, bucket, already) {
			r.apply(task, rlog, a, &stats)
		}
	}

	logTaskSummary(r.Log, task, &stats)
	return stats, nil
}

// apply executes one allocation: a skip notice, a dry-run preview, or a
// physical rename followed by the log append.
func (r *Runner) apply(task config.Task, rlog *renamelog.Log, a naming.Allocation, stats *RunStats) {
	if a.Skipped {
		r.Log.Warn("[SKIP] Already renamed: %s", a.OldName)
		stats.Skipped++
		return
	}

	if task.DryRun {
		r.Log.Info("[DRY-RUN] %s -> %s", a.OldName, a.NewName)
		stats.Planned++
		return
	}

	newPath := filepath.Join(filepath.Dir(a.Path), a.NewName)
	if err := os.Rename(a.Path, newPath); err != nil {
		r.Log.Error("Failed to rename %s: %v", a.OldName, err)
		stats.Failed++
		return
	}
	r.Log.Success("Renamed: %s -> %s", a.OldName, a.NewName)
	stats.Renamed++

	// The rename already happened; a failed append just costs this
	// file's idempotence on the next run.
	if err := rlog.Append(a.OldName, a.NewName); err != nil {
		r.Log.Error("Failed to log rename of %s: %v", a.NewName, err)
	}
}

// taskRoot resolves the directory owning the rename log: the path itself
// when it is a directory, otherwise its parent.
func taskRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

func logTaskSummary(log *logging.Logger, task config.Task, stats *RunStats) {
	if task.DryRun {
		log.Info("Done: %d planned, %d skipped (dry run)", stats.Planned, stats.Skipped)
		return
	}
	log.Info("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped, stats.Failed)
}
