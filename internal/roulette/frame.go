package roulette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles collects the lipgloss styles used by the console frame.
type Styles struct {
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Pin       lipgloss.Style
}

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// NewStyles builds the frame styles from bare RRGGBB hex codes.
func NewStyles(textHex, highlightHex string) (Styles, error) {
	if !hexColorPattern.MatchString(textHex) {
		return Styles{}, fmt.Errorf("roulette: invalid hex color %q", textHex)
	}
	if !hexColorPattern.MatchString(highlightHex) {
		return Styles{}, fmt.Errorf("roulette: invalid hex color %q", highlightHex)
	}
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("#" + textHex)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#" + highlightHex)).Bold(true),
		Pin:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}, nil
}

// Frame renders the wheel as a two-line band: a pin marker over the pointed
// sector, and the sector numbers with the pointed one highlighted.
func (w *Wheel) Frame(st Styles) string {
	width := len(strconv.Itoa(w.sectors))
	cell := width + 2
	pointed := w.Pointed()

	var band strings.Builder
	band.WriteString("|")
	for i := 1; i <= w.sectors; i++ {
		label := fmt.Sprintf(" %*d ", width, i)
		if i == pointed {
			band.WriteString(st.Highlight.Render(label))
		} else {
			band.WriteString(st.Text.Render(label))
		}
		band.WriteString("|")
	}

	pinCol := 1 + (pointed-1)*(cell+1) + cell/2
	pin := strings.Repeat(" ", pinCol) + st.Pin.Render("v")

	return pin + "\n" + band.String()
}
