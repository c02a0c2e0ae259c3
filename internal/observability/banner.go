package observability

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Terminal palette. lipgloss drops the colors when stdout is not a TTY.
var (
	NeonCyan = lipgloss.Color("#5FD7FF")
	NeonMag  = lipgloss.Color("#FF87D7")
	Muted    = lipgloss.Color("#888888")

	BannerStyle = lipgloss.NewStyle().Foreground(NeonCyan).Bold(true)
	PromptStyle = lipgloss.NewStyle().Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(NeonMag)
	HintStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// ------------------------------------------------------------
// Utility
// ------------------------------------------------------------

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

// ------------------------------------------------------------
// Banner
// ------------------------------------------------------------

const banner = `
  ___ ___  _   _ _  _ _____ ___ _   _ ___  ___ _____
 / __/ _ \| | | | \| |_   _| _ \ | | | _ )/ _ \_   _|
| (_| (_) | |_| | .' | | | |   /\_, | _ \ (_) || |
 \___\___/ \___/|_|\_| |_| |_|_\ |__/|___/\___/ |_|
`

// PrintBanner writes the centered logo to w.
func PrintBanner(w io.Writer) {
	printBanner(w, termWidth())
}

func printBanner(w io.Writer, width int) {
	for _, l := range strings.Split(banner, "\n") {
		padding := (width - lipgloss.Width(l)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", padding), BannerStyle.Render(l))
	}
}
