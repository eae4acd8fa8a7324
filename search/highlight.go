package search

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// HighlightStyle describes how matches are painted
type HighlightStyle struct {
	Foreground string
	Background string
	Bold       bool
}

// DefaultHighlightStyle is yellow bold text on a dark grey background
var DefaultHighlightStyle = HighlightStyle{
	Foreground: "220",
	Background: "236",
	Bold:       true,
}

// Highlighter paints matches with ANSI escape sequences
type Highlighter struct {
	style lipgloss.Style
}

// NewHighlighter creates a Highlighter rendering for w. Colour output is
// forced to the 256-colour profile: asking for highlighting is explicit, so
// it is not dropped when w is not a terminal.
func NewHighlighter(w io.Writer, hs HighlightStyle) *Highlighter {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)

	style := renderer.NewStyle().
		Bold(hs.Bold).
		TabWidth(lipgloss.NoTabConversion)
	if hs.Foreground != "" {
		style = style.Foreground(lipgloss.Color(hs.Foreground))
	}
	if hs.Background != "" {
		style = style.Background(lipgloss.Color(hs.Background))
	}

	return &Highlighter{style: style}
}

// Decorate renders a single match
func (h *Highlighter) Decorate(match string) string {
	return h.style.Render(match)
}
