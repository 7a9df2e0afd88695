package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorTitle = "#7D56F4"
	colorOK    = "#04B575"
	colorError = "#FF0000"
)

// Palette holds the styles used to print replies. Styles are bound to the
// output writer, so colours are dropped when it is not a terminal.
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
}

// NewPalette builds the default palette for w.
func NewPalette(w io.Writer) *Palette {
	r := lipgloss.NewRenderer(w)
	return &Palette{
		title: newBold(r, colorTitle),
		ok:    newBold(r, colorOK),
		err:   newBold(r, colorError),
	}
}

func newStyle(r *lipgloss.Renderer, fg string) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color(fg))
}

func newBold(r *lipgloss.Renderer, fg string) lipgloss.Style {
	return newStyle(r, fg).Bold(true)
}

// Title renders the welcome banner.
func (p *Palette) Title(s string) string { return p.title.Render(s) }

// OK renders a farewell or confirmation.
func (p *Palette) OK(s string) string { return p.ok.Render(s) }

// Error renders a failed command's reply.
func (p *Palette) Error(s string) string { return p.err.Render(s) }
