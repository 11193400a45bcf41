package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

// Output modes.
const (
	// OutputModePlain is unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is colored, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen browser.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode inspects stdout and the environment. plain always wins;
// forceColor styles output even when stdout is not a terminal; noColor (or
// NO_COLOR) never yields styled output. CI environments get styled output
// rather than the interactive browser.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
	return detectOutputMode(isTTY, os.Getenv, forceColor, noColor, plain)
}

func detectOutputMode(isTTY bool, getenv func(string) string, forceColor, noColor, plain bool) OutputMode {
	noColor = noColor || getenv("NO_COLOR") != ""

	switch {
	case plain:
		return OutputModePlain
	case !isTTY:
		if forceColor && !noColor {
			return OutputModeStyled
		}
		return OutputModePlain
	case getenv("TERM") == "dumb":
		return OutputModePlain
	case getenv("CI") != "":
		if noColor {
			return OutputModePlain
		}
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// WriterWidth returns the terminal width of w, or fallback when w is not a
// terminal (a buffer, pipe or regular file).
func WriterWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
