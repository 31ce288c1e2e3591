package tools

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devtoys/internal/catalog"
)

// Styles used by the sidebar list.
type Styles struct {
	Item     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
}

// RenderList renders the sidebar menu. cursor is highlighted only while the
// sidebar has focus; the open tool is marked with a bullet.
func RenderList(items []catalog.Descriptor, cursor int, open catalog.ID, focused bool, st Styles) string {
	var b strings.Builder
	for i, it := range items {
		mark := "  "
		if it.ID == open {
			mark = "• "
		}
		line := mark + it.Title
		switch {
		case focused && i == cursor:
			line = st.Cursor.Render("> " + it.Title)
		case it.ID == open:
			line = st.Selected.Render(line)
		default:
			line = st.Item.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
