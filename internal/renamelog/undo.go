package renamelog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/agestamp/internal/logging"
)

// Confirm answers a yes/no prompt. Injected into [Log.Undo] so tests and
// --force runs never block on stdin.
type Confirm func(prompt string) bool

// StdinConfirm prompts on stdout and reads one line from stdin. Only an
// answer of "y" (case-insensitive) counts as yes.
func StdinConfirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return affirmative(line)
}

func affirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// Undo replays the log newest-first, renaming new -> old, then deletes the
// log file.
//
// With force the confirmation step is skipped; otherwise any
// non-affirmative answer leaves the log and every file untouched.
// Entries whose new-name path is missing or whose old-name path already
// exists are skipped silently (partial or already-reverted state), and a
// failed rename is reported without aborting the remaining replay. Log
// deletion failure is reported and non-fatal.
func (l *Log) Undo(force bool, confirm Confirm, log *logging.Logger) {
	if !l.Exists() {
		log.Warn("No log file found at %s", l.path)
		return
	}

	if !force {
		prompt := fmt.Sprintf("Undo all renames and delete %s? [y/N] ", FileName)
		if !confirm(prompt) {
			log.Info("Undo cancelled.")
			return
		}
	}

	entries, err := l.Entries()
	if err != nil {
		log.Error("Cannot read log: %v", err)
		return
	}

	root := filepath.Dir(l.path)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		newPath := filepath.Join(root, e.NewName)
		oldPath := filepath.Join(root, e.OldName)
		if !pathExists(newPath) || pathExists(oldPath) {
			continue
		}
		if err := os.Rename(newPath, oldPath); err != nil {
			log.Error("Failed to revert %s: %v", e.NewName, err)
			continue
		}
		log.Success("Reverted: %s -> %s", e.NewName, e.OldName)
	}

	if err := os.Remove(l.path); err != nil {
		log.Error("Failed to remove log: %v", err)
		return
	}
	log.Info("Log file removed: %s", FileName)
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
