package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the preview CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(` _          _
| |__  _ __(_)_ __`).Foreground(p.Color("#38bdf8"))
	s2 := termenv.String(`| '_ \| '__| | '_ \`).Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(`| |_) | |  | | | | |`).Foreground(p.Color("#2dd4bf"))
	s4 := termenv.String(`|_.__/|_|  |_|_| |_|`).Foreground(p.Color("#34d399"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println()
}
