// Package terminal provides utilities for terminal operations such as prompting
// for input and clearing it afterwards.
package terminal

import (
	"math"
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// LinesUsed returns how many terminal rows textLength characters occupy at the
// given width (80 when width is not positive).
func LinesUsed(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	n := int(math.Ceil(float64(textLength) / float64(width)))
	if n < 1 {
		n = 1
	}
	return n
}

// ClearPreviousLines clears a prompt line of textLength characters after the user
// pressed Enter. The cursor sits on the row below the prompt, so only the rows the
// prompt wrapped onto are cleared.
func ClearPreviousLines(textLength int) {
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	clearLines(textLength, width)
}

func clearLines(textLength, width int) {
	cursor.ClearLinesUp(LinesUsed(textLength, width))
	cursor.StartOfLine()
}
