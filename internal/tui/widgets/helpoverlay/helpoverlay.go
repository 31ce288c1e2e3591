package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Section is a titled group of "key: action" lines.
type Section struct {
	Title string
	Keys  []string
}

type HelpOverlay struct {
	sections []Section
}

func NewHelpOverlay(sections []Section) HelpOverlay { return HelpOverlay{sections: sections} }

// Markdown returns the overlay source.
func (h HelpOverlay) Markdown(focus string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Shortcuts\n\nFocus: **%s**\n", focus)
	for _, sec := range h.sections {
		fmt.Fprintf(&b, "\n## %s\n\n", sec.Title)
		for _, k := range sec.Keys {
			fmt.Fprintf(&b, "- %s\n", k)
		}
	}
	return b.String()
}

// View renders the overlay with glamour. style is a glamour standard style
// ("dark", "light", "notty"); rendering errors fall back to the raw markdown.
func (h HelpOverlay) View(focus, style string) string {
	md := h.Markdown(focus)
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return out
}
