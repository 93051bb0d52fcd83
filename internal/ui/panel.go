package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel draws lines inside a rounded frame using the current theme.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

// PanelString frames already rendered content.
func PanelString(inner string) string {
	return NewStyles(Current()).Frame.Render(inner)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, NewStyles(Current()).Success.Render("✔ "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, NewStyles(Current()).Error.Render("✖ "+msg))
}
