package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"devtoys/internal/catalog"
	"devtoys/internal/config"
	"devtoys/internal/jsonfmt"
	"devtoys/internal/tui/views/home"
	"devtoys/internal/tui/views/placeholder"
	"devtoys/internal/tui/views/tools"
)

// Context is everything the shell needs from the outside. It replaces any
// process-wide UI state: theme and selection live here and in the model.
type Context struct {
	Theme    config.Theme
	NoColor  bool
	Selected catalog.ID // tool opened at start; "" shows the home page
	// ShowFormatters starts on the formatter index instead of the home page.
	ShowFormatters bool

	Engine             *jsonfmt.Engine
	Copier             Copier
	ReportCopyFailures bool
	Logger             *zap.Logger

	// SaveTheme persists a theme change; nil keeps it for the session only.
	SaveTheme func(config.Theme) error
}

// Run shows the shell until the user quits.
func Run(ctx Context) error {
	m := newModel(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// hasDarkBackground resolves the "system" theme.
var hasDarkBackground = lipgloss.HasDarkBackground

const sidebarWidth = 24

type noClipboard struct{}

func (noClipboard) Copy(string) error { return errors.New("no clipboard configured") }

// ===== Model =====

type model struct {
	ctx   Context
	items []catalog.Descriptor
	keys  shellKeys

	cursor  int
	open    catalog.ID
	sidebar bool // sidebar has focus
	panel   *panel
	index   bool // formatter index instead of the welcome page

	theme  config.Theme
	dark   bool
	st     styles
	width  int
	height int
	notice string
}

func newModel(ctx Context) *model {
	if ctx.Engine == nil {
		ctx.Engine = jsonfmt.New(nil)
	}
	if ctx.Logger == nil {
		ctx.Logger = zap.NewNop()
	}
	if ctx.Copier == nil {
		ctx.Copier = noClipboard{}
	}
	if ctx.Theme == "" {
		ctx.Theme = config.ThemeSystem
	}
	m := &model{
		ctx:     ctx,
		items:   catalog.All(),
		keys:    newShellKeys(),
		sidebar: true,
		index:   ctx.ShowFormatters,
		theme:   ctx.Theme,
	}
	m.applyTheme()
	if ctx.Selected != "" {
		for i, it := range m.items {
			if it.ID == ctx.Selected {
				m.cursor = i
			}
		}
		m.openTool(ctx.Selected)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	if m.panel != nil && !m.sidebar {
		return m.panel.focus()
	}
	return nil
}

// Update handles all shell interactions; keys go to the panel while it has focus.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.cycleTheme()
			return m, nil
		}
		if m.panel != nil && !m.sidebar {
			if key.Matches(msg, m.panel.keys.Back) {
				if m.panel.ui.Help {
					m.panel.ui.Help = false
					return m, nil
				}
				m.sidebar = true
				m.panel.blur()
				return m, nil
			}
			return m, m.panel.Update(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			return m, m.openTool(m.items[m.cursor].ID)
		case key.Matches(msg, m.keys.Home):
			m.closeTool()
			m.index = false
		}
		return m, nil
	}

	if m.panel != nil {
		return m, m.panel.Update(msg)
	}
	return m, nil
}

// openTool selects id, mounting a fresh panel when it has one. Reopening the
// tool already open only moves focus back to it.
func (m *model) openTool(id catalog.ID) tea.Cmd {
	if id == m.open && m.panel != nil {
		m.sidebar = false
		return m.panel.focus()
	}
	m.closeTool()
	m.open = id
	if !catalog.Implemented(id) {
		return nil
	}
	m.panel = newPanel(m.ctx, m.st, m.dark)
	m.resize()
	m.sidebar = false
	return m.panel.focus()
}

func (m *model) closeTool() {
	if m.panel != nil {
		m.panel.unmount()
		m.panel = nil
	}
	m.open = ""
	m.sidebar = true
}

func (m *model) cycleTheme() {
	m.theme = m.theme.Next()
	m.applyTheme()
	m.notice = "Theme: " + string(m.theme)
	if m.ctx.SaveTheme != nil {
		if err := m.ctx.SaveTheme(m.theme); err != nil {
			m.ctx.Logger.Warn("save theme", zap.Error(err))
			m.notice = "Theme not saved: " + err.Error()
		}
	}
}

func (m *model) applyTheme() {
	switch m.theme {
	case config.ThemeDark:
		m.dark = true
	case config.ThemeLight:
		m.dark = false
	default:
		m.dark = hasDarkBackground()
	}
	m.st = newStyles(m.dark, m.ctx.NoColor)
	if m.panel != nil {
		m.panel.setStyles(m.st, m.dark)
	}
}

func (m *model) resize() {
	if m.panel == nil || m.width == 0 {
		return
	}
	m.panel.SetSize(m.width-sidebarWidth-3, m.height-2)
}

// ===== Views =====

func (m *model) View() string {
	side := m.st.title.Render("WebDev Toys") + "\n\n" +
		tools.RenderList(m.items, m.cursor, m.open, m.sidebar, m.st.list)
	if m.sidebar {
		side += "\n\n" + m.st.faint.Render("enter: open\nh: home\nq: quit")
	} else {
		side += "\n\n" + m.st.faint.Render("esc: sidebar")
	}
	sideStyle := m.st.sidebar.Width(sidebarWidth)
	if m.height > 2 {
		sideStyle = sideStyle.Height(m.height - 2)
	}

	var content string
	switch {
	case m.panel != nil:
		content = m.panel.View()
	case m.open != "":
		d, _ := catalog.Lookup(m.open)
		content = placeholder.Render(d)
	case m.index:
		content = home.Formatters(catalog.Formatters(), m.st.home)
	default:
		content = home.Welcome(m.items, m.st.home)
	}

	top := fmt.Sprintf("Theme: %s (ctrl+t)", m.theme)
	if m.notice != "" {
		top += "  " + m.notice
	}
	var b strings.Builder
	b.WriteString(m.st.topbar.Render(top) + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sideStyle.Render(side), " ", content))
	return b.String()
}
