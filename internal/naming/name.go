// Package naming builds candidate filenames and resolves collisions for
// the per-date rename sequence.
package naming

import (
	"fmt"
	"strings"
	"time"
)

// BuildName assembles the canonical filename for a renamed photo:
//
//	<Name>_<YYYYMMDD>_<age>_<NNN><ext>
//
// Spaces in the subject name become underscores, the counter is
// zero-padded to three digits, and the extension (with leading dot) is
// lowercased.
func BuildName(subject string, date time.Time, ageLabel string, id int, ext string) string {
	return fmt.Sprintf("%s_%s_%s_%03d%s",
		strings.ReplaceAll(subject, " ", "_"),
		date.Format("20060102"),
		ageLabel,
		id,
		strings.ToLower(ext))
}
