package naming

import (
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/agestamp/internal/age"
)

// Allocation is one planned rename: the source file and its final name.
type Allocation struct {
	Path    string // Source path as discovered.
	OldName string // Basename before renaming.
	NewName string // Basename after renaming; empty when Skipped.
	Skipped bool   // Original name already present in the rename log.
}

// Allocator assigns per-date-bucket counter IDs and resolves filename
// collisions. Names claimed earlier in the run are tracked in an owner
// map so IDs stay unique within a bucket even before the physical
// renames land on disk; everything else is probed through Exists, which
// defaults to an os.Stat check.
type Allocator struct {
	Subject string
	Birth   time.Time
	Exists  func(path string) bool

	claimed map[string]string // candidate path → source path that owns it
}

// Allocate plans the renames for one date bucket. paths must already be
// sorted; that order is the sole determinant of ID assignment. Files
// whose original name appears in already are marked Skipped and do not
// advance the bucket counter. The counter advances by one for every
// other file, whether or not its rename later succeeds.
//
// The collision probe walks a local ID upward from the bucket counter
// until the candidate is unclaimed and absent from disk, or is the
// file's own current name (an idempotent rerun keeps the name as is).
func (a *Allocator) Allocate(date time.Time, paths []string, already map[string]struct{}) []Allocation {
	if a.claimed == nil {
		a.claimed = make(map[string]string)
	}
	exists := a.Exists
	if exists == nil {
		exists = func(p string) bool {
			_, err := os.Stat(p)
			return err == nil
		}
	}
	label := age.Label(a.Birth, date)

	out := make([]Allocation, 0, len(paths))
	counter := 1
	for _, path := range paths {
		oldName := filepath.Base(path)
		if _, ok := already[oldName]; ok {
			out = append(out, Allocation{Path: path, OldName: oldName, Skipped: true})
			continue
		}

		dir := filepath.Dir(path)
		ext := filepath.Ext(path)

		id := counter
		name := BuildName(a.Subject, date, label, id, ext)
		for a.taken(exists, filepath.Join(dir, name), path) && name != oldName {
			id++
			name = BuildName(a.Subject, date, label, id, ext)
		}
		a.claimed[filepath.Join(dir, name)] = path

		out = append(out, Allocation{Path: path, OldName: oldName, NewName: name})
		counter++
	}
	return out
}

// taken reports whether candidate is unavailable to self: claimed by
// another file earlier in the run, or occupied on disk.
func (a *Allocator) taken(exists func(string) bool, candidate, self string) bool {
	if owner, ok := a.claimed[candidate]; ok && owner != self {
		return true
	}
	return exists(candidate)
}
