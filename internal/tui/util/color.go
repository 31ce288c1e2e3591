package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Border  lipgloss.Color
}

// PaletteFor returns the palette for a dark or light terminal background.
func PaletteFor(dark bool) Palette {
	if dark {
		return Palette{
			Primary: lipgloss.Color("#7AA2FF"),
			Success: lipgloss.Color("#4CC38A"),
			Danger:  lipgloss.Color("#FF6B6B"),
			Warning: lipgloss.Color("#F0AD4E"),
			Muted:   lipgloss.Color("#8B949E"),
			Text:    lipgloss.Color("#E6EDF3"),
			Border:  lipgloss.Color("#3D444D"),
		}
	}
	return Palette{
		Primary: lipgloss.Color("#3D6DFF"),
		Success: lipgloss.Color("#2AA876"),
		Danger:  lipgloss.Color("#D9534F"),
		Warning: lipgloss.Color("#B7791F"),
		Muted:   lipgloss.Color("#6C757D"),
		Text:    lipgloss.Color("#1F2328"),
		Border:  lipgloss.Color("#D0D7DE"),
	}
}
