// Command agestamp renames photo files to encode a subject's age at
// capture time (Name_YYYYMMDD_Age_NNN.ext), and reverses those renames
// from the append-only log written next to the photos.
package main

import (
	"fmt"
	"os"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agestamp: %v\n", err)
		os.Exit(1)
	}
}
