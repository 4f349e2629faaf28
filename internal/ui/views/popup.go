package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centers the popup over a greyed-out copy of the main content.
// Without a known terminal size the popup is appended below the content.
func (pr *PopupRenderer) RenderPopup(mainContent, popupContent string, width, height int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return mainContent + "\n" + styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	modal := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)

	top := (height - len(modal)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - modalW) / 2
	if left < 0 {
		left = 0
	}

	for len(base) < top+len(modal) {
		base = append(base, "")
	}
	// Modal rows replace the base rows they cover
	for i, line := range modal {
		base[top+i] = strings.Repeat(" ", left) + line
	}
	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// stripANSI removes all color/style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
