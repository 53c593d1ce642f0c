package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders a node's markdown body using
// glamour, auto-detecting light/dark terminal background.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
