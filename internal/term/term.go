// Package term provides color state and terminal detection.
//
// Styles are package-level variables because the logger and the check report
// both paint level tags. [Configure] decides once during startup whether
// colors are on; when they are off [Paint] returns its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"github.com/backmassage/shotrename/internal/config"
)

// Level tag styles.
var (
	Red    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Green  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Yellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Blue   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Cyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

var enabled bool

// Configure resolves the color mode and sets the lipgloss color profile.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if enabled {
		// lipgloss would otherwise sniff stdout and drop colors for --color
		// when output is piped.
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// Paint renders text with style when colors are enabled.
func Paint(style lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return style.Render(text)
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}
