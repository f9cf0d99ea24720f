// Package renamelog persists the append-only record of executed renames
// and drives undo replay. One log file lives in each task root directory;
// entries are never mutated or reordered once written.
package renamelog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// FileName is the fixed log filename in every task root directory.
	FileName = "rename_log.csv"

	header     = "timestamp,old_filename,new_filename"
	timeLayout = "2006-01-02T15:04:05"
)

// Log is the append-only rename record for one task root directory.
// The zero value is not usable; construct with [New].
type Log struct {
	path string
}

// New returns the log handle for root; the file itself lives at
// root/rename_log.csv. Nothing is opened until first use.
func New(root string) *Log {
	return &Log{path: filepath.Join(root, FileName)}
}

// Path returns the log file's location.
func (l *Log) Path() string { return l.path }

// Exists reports whether the log file is present on disk.
func (l *Log) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// EnsureHeader creates the log file with its header line when absent.
// Called at the start of every live task so a rerun sees a log even when
// all of the task's renames fail.
func (l *Log) EnsureHeader() error {
	if l.Exists() {
		return nil
	}
	return os.WriteFile(l.path, []byte(header+"\n"), 0o644)
}

// Append records one completed rename. Must be called only after the
// physical rename succeeded; the log reflects completed renames only.
func (l *Log) Append(oldName, newName string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(time.Now().Format(timeLayout) + "," + oldName + "," + newName + "\n")
	return err
}

// Entry is one parsed log line.
type Entry struct {
	Timestamp string
	OldName   string
	NewName   string
}

// Entries parses the log body (header excluded) in file order. A missing
// log yields no entries and no error; malformed lines are dropped. The
// naming scheme guarantees filenames contain no commas, so a plain split
// is safe.
func (l *Log) Entries() ([]Entry, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 {
			continue // header
		}
		parts := strings.SplitN(strings.TrimSpace(line), ",", 3)
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			continue
		}
		entries = append(entries, Entry{Timestamp: parts[0], OldName: parts[1], NewName: parts[2]})
	}
	return entries, nil
}

// AlreadyRenamed returns the set of original filenames ever logged for
// this directory. Reruns consult it so previously renamed files are
// never renamed again. Rebuilt once per task, not re-read per file.
func (l *Log) AlreadyRenamed() map[string]struct{} {
	entries, err := l.Entries()
	if err != nil {
		return map[string]struct{}{}
	}
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e.OldName] = struct{}{}
	}
	return set
}
