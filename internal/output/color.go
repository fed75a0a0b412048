package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // Auto-detect based on TTY
	ColorAlways                  // Always use colors
	ColorNever                   // Never use colors
)

// ParseColorMode converts "auto", "always" or "never" to a ColorMode,
// defaulting to auto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "true", "on":
		return ColorAlways
	case "never", "false", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether r is a terminal rather than a pipe or file.
func IsInteractive(r any) bool {
	f, ok := r.(*os.File)
	return ok && isTerminal(f)
}

// shouldColorize determines if output should be colorized based on mode and TTY detection.
func shouldColorize(mode ColorMode, w any) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isTerminal(f)
		}
		return false
	}
	return false
}

var (
	colorAccent  = lipgloss.Color("#3B82F6")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	file  lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	muted lipgloss.Style
}

// newStyles returns the text styles; all of them render plain text when
// colour is off.
func newStyles(colorize bool) styles {
	if !colorize {
		plain := lipgloss.NewStyle()
		return styles{file: plain, ok: plain, warn: plain, err: plain, muted: plain}
	}

	return styles{
		file:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ok:    lipgloss.NewStyle().Foreground(colorSuccess),
		warn:  lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		err:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
