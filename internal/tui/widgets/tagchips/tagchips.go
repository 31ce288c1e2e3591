package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devtoys/internal/tui/state"
	"devtoys/internal/tui/util"
)

// View renders status chips in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled.
func View(chips []state.Chip, noColor bool, pal util.Palette) string {
	if len(chips) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		parts = append(parts, renderChip(c, noColor, pal))
	}
	return strings.Join(parts, " ")
}

func renderChip(c state.Chip, noColor bool, pal util.Palette) string {
	label := chipLabel(c)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(c, pal).Render(label)
}

func chipLabel(c state.Chip) string {
	switch c.Kind {
	case state.PRETTY:
		return "Pretty"
	case state.MINIFIED:
		return "Minified"
	case state.ERROR:
		return "Error"
	case state.COPIED:
		return "Copied"
	case state.IN_LEN:
		return fmt.Sprintf("In %d", c.Value)
	case state.OUT_LEN:
		return fmt.Sprintf("Out %d", c.Value)
	default:
		return "Chip"
	}
}

func chipStyle(c state.Chip, pal util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch c.Kind {
	case state.PRETTY:
		return base.Background(pal.Primary)
	case state.MINIFIED:
		return base.Background(pal.Success)
	case state.ERROR:
		return base.Background(pal.Danger)
	case state.COPIED:
		return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
	default:
		return base.Background(pal.Muted)
	}
}
