package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"devtoys/internal/tui/widgets/helpoverlay"
)

// panelKeys are the formatter panel shortcuts.
type panelKeys struct {
	Format key.Binding
	Minify key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Ensure key.Binding
	Diff   key.Binding
	Focus  key.Binding
	Help   key.Binding
	Back   key.Binding
}

func newPanelKeys() panelKeys {
	return panelKeys{
		Format: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "format")),
		Minify: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "minify")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "clear")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Ensure: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "ensure formatted")),
		Diff:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "diff")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sidebar")),
	}
}

// ShortHelp implements help.KeyMap.
func (k panelKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Format, k.Minify, k.Clear, k.Copy, k.Help}
}

// FullHelp implements help.KeyMap.
func (k panelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Format, k.Minify, k.Ensure, k.Clear},
		{k.Copy, k.Diff},
		{k.Focus, k.Back, k.Help},
	}
}

// sections groups the bindings for the help overlay.
func (k panelKeys) sections() []helpoverlay.Section {
	titles := []string{"Transform", "Output", "Navigation"}
	full := k.FullHelp()
	out := make([]helpoverlay.Section, 0, len(full)+1)
	for i, group := range full {
		sec := helpoverlay.Section{Title: titles[i]}
		for _, b := range group {
			h := b.Help()
			sec.Keys = append(sec.Keys, h.Key+": "+h.Desc)
		}
		out = append(out, sec)
	}
	out = append(out, helpoverlay.Section{Title: "Shell", Keys: []string{"ctrl+t: cycle theme", "ctrl+c: quit"}})
	return out
}

// shellKeys apply outside the panel, or everywhere for Quit and Theme.
type shellKeys struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Home  key.Binding
	Theme key.Binding
	Quit  key.Binding
	Exit  key.Binding
}

func newShellKeys() shellKeys {
	return shellKeys{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:  key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
		Home:  key.NewBinding(key.WithKeys("h", "home"), key.WithHelp("h", "home")),
		Theme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Exit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}
