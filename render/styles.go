package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/coinweigh/coins"
)

// Palette.
var (
	ColorHeavy    = lipgloss.Color("#E74C3C")
	ColorBalanced = lipgloss.Color("#F4D03F")
	ColorLight    = lipgloss.Color("#2CD7C7")
	ColorMuted    = lipgloss.Color("#5C6B73")
	ColorTitle    = lipgloss.Color("#20B9B4")
)

// Styles decorates the tokens of the text output. The zero value prints
// plain text.
type Styles struct {
	enabled bool

	Title   lipgloss.Style
	Branch  [3]lipgloss.Style
	Sizes   lipgloss.Style
	Label   lipgloss.Style
	Zero    lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles returns styles writing ANSI colors for w. With color false
// every token is printed verbatim.
func NewStyles(w io.Writer, color bool) Styles {
	if !color {
		return Styles{}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return Styles{
		enabled: true,
		Title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		Branch: [3]lipgloss.Style{
			coins.LeftHeavy:  r.NewStyle().Bold(true).Foreground(ColorHeavy),
			coins.Balanced:   r.NewStyle().Bold(true).Foreground(ColorBalanced),
			coins.RightHeavy: r.NewStyle().Bold(true).Foreground(ColorLight),
		},
		Sizes:   r.NewStyle().Foreground(ColorMuted),
		Label:   r.NewStyle().Bold(true),
		Zero:    r.NewStyle().Foreground(ColorMuted),
		Summary: r.NewStyle().Bold(true),
	}
}

// Enabled reports whether the styles emit escape sequences.
func (s Styles) Enabled() bool { return s.enabled }

func (s Styles) paint(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return st.Render(text)
}
