package tui

import (
	"github.com/charmbracelet/lipgloss"

	"devtoys/internal/tui/util"
	"devtoys/internal/tui/views/home"
	"devtoys/internal/tui/views/tools"
)

type styles struct {
	pal        util.Palette
	noColor    bool
	title      lipgloss.Style
	faint      lipgloss.Style
	label      lipgloss.Style
	alert      lipgloss.Style
	box        lipgloss.Style
	boxFocused lipgloss.Style
	sidebar    lipgloss.Style
	topbar     lipgloss.Style
	list       tools.Styles
	home       home.Styles
}

func newStyles(dark, noColor bool) styles {
	pal := util.PaletteFor(dark)
	s := styles{
		pal:        pal,
		noColor:    noColor,
		title:      lipgloss.NewStyle().Bold(true),
		faint:      lipgloss.NewStyle().Faint(true),
		label:      lipgloss.NewStyle().Bold(true),
		alert:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		box:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
		boxFocused: lipgloss.NewStyle().Border(lipgloss.ThickBorder()),
		sidebar:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).Padding(0, 1),
		topbar:     lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false),
	}
	s.list = tools.Styles{
		Item:     lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Bold(true),
	}
	s.home = home.Styles{
		Title: s.title,
		Card:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(28),
		Faint: s.faint,
	}
	if noColor {
		return s
	}
	s.title = s.title.Foreground(pal.Primary)
	s.alert = s.alert.BorderForeground(pal.Danger).Foreground(pal.Danger)
	s.box = s.box.BorderForeground(pal.Border)
	s.boxFocused = s.boxFocused.BorderForeground(pal.Primary)
	s.sidebar = s.sidebar.BorderForeground(pal.Border)
	s.topbar = s.topbar.BorderForeground(pal.Border)
	s.list.Cursor = s.list.Cursor.Foreground(pal.Primary)
	s.list.Selected = s.list.Selected.Foreground(pal.Success)
	s.home.Title = s.title
	s.home.Card = s.home.Card.BorderForeground(pal.Border)
	return s
}

// glamourStyle picks the help overlay style for the theme.
func (s styles) glamourStyle(dark bool) string {
	switch {
	case s.noColor:
		return "notty"
	case dark:
		return "dark"
	default:
		return "light"
	}
}
