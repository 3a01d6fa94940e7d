package display

import (
	"fmt"
	"os"

	"github.com/backmassage/photosort/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _           _       ____             _
|  _ \| |__   ___ | |_ ___/ ___|  ___  _ __| |_
| |_) | '_ \ / _ \| __/ _ \___ \ / _ \| '__| __|
|  __/| | | | (_) | || (_) |__) | (_) | |  | |_
|_|   |_| |_|\___/ \__\___/____/ \___/|_|   \__|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
