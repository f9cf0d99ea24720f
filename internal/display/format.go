package display

import (
	"fmt"
	"time"
)

// FormatCount returns "N noun" with a plural "s" when N != 1
// (e.g. "1 file", "3 files").
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// DateLabel formats a capture date for status output (YYYY-MM-DD).
func DateLabel(t time.Time) string {
	return t.Format("2006-01-02")
}
