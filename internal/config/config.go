// Package config holds runtime configuration: the task model, defaults,
// mode validation, birth-date parsing, and JSON task-file loading.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BirthDateLayout is the accepted birth-date input format (MM-DD-YYYY).
const BirthDateLayout = "01-02-2006"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig]
// and then mutated by CLI flag parsing before being passed (by pointer)
// to packages that need it.
type Config struct {
	// Mode selection (positional args and mode flags).
	Path       string // Image file or directory.
	Name       string // Subject name (rename mode).
	Birth      string // Birth date, MM-DD-YYYY (rename mode).
	ConfigFile string // JSON task file (batch mode).
	Undo       bool   // Replay the rename log in reverse.

	// Behavior flags.
	Recursive bool
	DryRun    bool
	Force     bool // Skip the undo confirmation prompt.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional status log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before CLI flags are bound.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// Validate checks that the flag and positional-argument combination
// selects exactly one mode: batch (--config), undo (--undo path), or
// rename (path name birth).
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ConfigFile != "" {
		if c.Undo {
			return errors.New("--undo cannot be used with --config")
		}
		if c.Path != "" || c.Name != "" || c.Birth != "" {
			return errors.New("--config cannot be combined with positional arguments")
		}
		return nil
	}

	if c.Path == "" {
		return errors.New("need an image file or directory path")
	}

	if c.Undo {
		if c.Name != "" || c.Birth != "" {
			return errors.New("--undo takes only a path")
		}
		return nil
	}

	if c.Name == "" || c.Birth == "" {
		return errors.New("provide name and birth date, or use --undo or --config")
	}
	if _, err := ParseBirthDate(c.Birth); err != nil {
		return err
	}
	return nil
}

// Task is one rename job: a path, a subject, a birth date, and the flags
// governing traversal and mutation. Immutable once constructed.
type Task struct {
	Path      string
	Name      string
	Birth     time.Time
	Recursive bool
	DryRun    bool
}

// Task builds the runnable task for command-line rename mode. Validate
// must have accepted the config first.
func (c *Config) Task() Task {
	birth, _ := ParseBirthDate(c.Birth)
	return Task{
		Path:      c.Path,
		Name:      c.Name,
		Birth:     birth,
		Recursive: c.Recursive,
		DryRun:    c.DryRun,
	}
}

// ParseBirthDate parses an MM-DD-YYYY birth date in local time.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(BirthDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth date %q must be in MM-DD-YYYY format", s)
	}
	return t, nil
}

// NormalizeDirArg strips trailing slashes from a path argument.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
