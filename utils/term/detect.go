package main

import (
	"fmt"
	"os"

	"github.com/antgroup/progressors/modules/term"
)

// Prints what modules/term decided about the current terminal.
func main() {
	fmt.Fprintf(os.Stderr, "stdout terminal: %v level: %s\n", term.IsTerminal(os.Stdout.Fd()), term.StdoutLevel)
	fmt.Fprintf(os.Stderr, "stderr terminal: %v level: %s\n", term.IsTerminal(os.Stderr.Fd()), term.StderrLevel)
	fmt.Fprintf(os.Stderr, "environment level: %s\n", term.DetectLevel(os.Getenv))
}
