package devtools

import (
	"os"

	"golang.org/x/term"
)

const (
	defaultTermWidth  = 80
	defaultTermHeight = 24
)

// terminalSize returns the current terminal width and height, falling back
// to 80x24 when the size cannot be determined.
func terminalSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return defaultTermWidth, defaultTermHeight
	}
	return width, height
}

// FitsTerminal reports whether a map of the given size fits the current
// terminal, leaving two rows for the prompt.
func FitsTerminal(mapWidth, mapHeight int) bool {
	width, height := terminalSize()
	return mapWidth <= width && mapHeight <= height-2
}
