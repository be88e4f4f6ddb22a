// Package ui holds the lipgloss themes and the small CLI feedback helpers.
package ui

import (
	"fmt"
	"io"
)

// OK prints a success line to w.
func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

// Fail prints an error line to w.
func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
