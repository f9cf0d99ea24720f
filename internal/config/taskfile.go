package config

// This file implements the JSON task-file format for batch mode:
//
//	{"tasks": [{"path": ..., "name": ..., "birth": ..., "recursive": bool}]}
//
// Structural problems fail the whole load; per-entry validation is a
// separate step so one bad task does not abort the rest of the batch.

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var taskValidate = validator.New()

// TaskEntry is one raw entry from the JSON task file.
type TaskEntry struct {
	Path      string `json:"path" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Birth     string `json:"birth" validate:"required"`
	Recursive bool   `json:"recursive"`
}

// TaskFile is the parsed batch config.
type TaskFile struct {
	Tasks []TaskEntry `json:"tasks"`
}

// LoadTaskFile reads and parses the JSON task file at path. An unreadable
// file, malformed JSON, or a missing/empty tasks array is an error.
func LoadTaskFile(path string) (*TaskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	var tf TaskFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	if len(tf.Tasks) == 0 {
		return nil, errors.New("config file must contain a non-empty 'tasks' array")
	}
	return &tf, nil
}

// Validate checks the entry's required fields and birth-date format.
func (e *TaskEntry) Validate() error {
	if err := taskValidate.Struct(e); err != nil {
		return fmt.Errorf("each task must include 'path', 'name' and 'birth': %w", err)
	}
	_, err := ParseBirthDate(e.Birth)
	return err
}

// Task converts a validated entry into a runnable Task. dryRun comes from
// the command line and applies to every task in the batch.
func (e *TaskEntry) Task(dryRun bool) Task {
	birth, _ := ParseBirthDate(e.Birth)
	return Task{
		Path:      NormalizeDirArg(e.Path),
		Name:      e.Name,
		Birth:     birth,
		Recursive: e.Recursive,
		DryRun:    dryRun,
	}
}
