package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1") // C1
	ColorGold     = lipgloss.Color("#ffe3b3") // C5
)

// Text tones (dark theme)
var (
	ColorMutedText = lipgloss.Color("#6b6d8a")
)

// Styles used by the text report. Only single-line strings without tabs
// should be rendered through them.
type Styles struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	Total   lipgloss.Style
}

// NewStyles builds styles for output written to w. Color is detected from
// w, so pipes and files get plain text. With color false every style is a
// no-op.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return Styles{Header: plain, Section: plain, Total: plain}
	}
	return Styles{
		Header:  r.NewStyle().Foreground(ColorMutedText),
		Section: r.NewStyle().Foreground(ColorLavender).Bold(true),
		Total:   r.NewStyle().Foreground(ColorGold).Bold(true),
	}
}
