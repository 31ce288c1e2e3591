package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devtoys/internal/catalog"
)

// Styles used by the index pages.
type Styles struct {
	Title lipgloss.Style
	Card  lipgloss.Style
	Faint lipgloss.Style
}

// Welcome renders the landing page shown when no tool is open: a card per
// tool, then the formatter index.
func Welcome(items []catalog.Descriptor, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Welcome to Dev Toys") + "\n")
	b.WriteString(st.Faint.Render("Select a tool from the sidebar to get started.") + "\n\n")
	cards := make([]string, 0, len(items))
	for _, it := range items {
		cards = append(cards, st.Card.Render(it.Title+"\n"+st.Faint.Render(it.Description)))
	}
	for i := 0; i < len(cards); i += 2 {
		end := i + 2
		if end > len(cards) {
			end = len(cards)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...) + "\n")
	}
	b.WriteString("\n" + Formatters(catalog.Formatters(), st))
	return b.String()
}

// Formatters renders the formatter index: each formatter tool with its
// route relative to the formatter root.
func Formatters(items []catalog.Descriptor, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Formatter") + "\n")
	b.WriteString(st.Faint.Render("Tools to format, pretty-print, and minify various data formats.") + "\n")
	if len(items) == 0 {
		b.WriteString("  No formatter tools available.\n")
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "  %-16s %s\n", it.Title, st.Faint.Render(it.SubRoute()))
		if it.Description != "" {
			fmt.Fprintf(&b, "    %s\n", st.Faint.Render(it.Description))
		}
	}
	return b.String()
}
