package display

import (
	"fmt"
	"os"

	"github.com/backmassage/agestamp/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `    _              ____  _
   / \   __ _  ___/ ___|| |_ __ _ _ __ ___  _ __
  / _ \ / _`+"`"+` |/ _ \___ \| __/ _`+"`"+` | '_ `+"`"+` _ \| '_ \
 / ___ \ (_| |  __/___) | || (_| | | | | | | |_) |
/_/   \_\__, |\___|____/ \__\__,_|_| |_| |_| .__/
        |___/                              |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
