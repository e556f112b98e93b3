package tui

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// The xterm-256 grey ramp runs from 232 (near black) to 255 (near white).
const (
	greyFirst = 232
	greyLast  = 255
)

// shade maps an opacity onto the grey ramp. Opacity outside 0..1 is clamped.
func shade(opacity float64) lipgloss.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	step := int(math.Round(opacity * float64(greyLast-greyFirst)))
	return lipgloss.Color(strconv.Itoa(greyFirst + step))
}

type styles struct {
	Slide  lipgloss.Style
	Footer lipgloss.Style
}

func newStyles() styles {
	return styles{
		Slide: lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}
