// keypad computes the fewest button presses needed to type door codes
// through a chain of robot-operated directional keypads.
//
// Usage:
//
//	keypad score [file]        - Score codes read from file or stdin
//	keypad cost <from> <to>    - Presses for a single button transition
//	keypad sample              - Check the built-in samples
//
// Global flags:
//
//	--config <path>  - YAML config (default: ~/.config/keypad/config.yaml)
//	-v, --verbose    - Debug logging, including every cache fill
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
