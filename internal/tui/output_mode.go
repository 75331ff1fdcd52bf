package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a command renders its result.
type OutputMode int

const (
	// OutputModePlain writes an unstyled table, suitable for pipes.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes Lip Gloss styled output without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full Bubble Tea program.
	OutputModeInteractive
)

// defaultTerminalWidth is assumed when the real width cannot be determined.
const defaultTerminalWidth = 80

// DetectOutputMode picks the output mode from flags and terminal state.
// Plain always wins; a non-terminal stdout forces plain; NO_COLOR (or
// --no-color) downgrades to plain; otherwise an interactive terminal on both
// ends gets the TUI and a terminal-only stdout gets styled output.
func DetectOutputMode(plainFlag, noColorFlag bool) OutputMode {
	if plainFlag {
		return OutputModePlain
	}
	if !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if isTerminal(os.Stdin) {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// TerminalWidth returns the current stdout width, or a default when stdout
// is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
