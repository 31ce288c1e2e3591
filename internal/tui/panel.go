package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"devtoys/internal/clipboard"
	"devtoys/internal/tui/state"
	"devtoys/internal/tui/util"
	"devtoys/internal/tui/widgets/diff"
	"devtoys/internal/tui/widgets/helpoverlay"
	"devtoys/internal/tui/widgets/outputview"
	"devtoys/internal/tui/widgets/statusbar"
	"devtoys/internal/tui/widgets/tagchips"
)

// copiedFor is how long the "Copied" indicator stays up.
const copiedFor = 1600 * time.Millisecond

// Copier is the clipboard capability a panel exports output through.
type Copier interface {
	Copy(text string) error
}

// Copy messages carry the panel id; a panel ignores results and resets
// addressed to one that was unmounted before they arrived.
type copyResultMsg struct {
	panel string
	err   error
}

type copiedResetMsg struct {
	panel string
	seq   int
}

// panel is one mounted JSON formatter. It owns its document exclusively;
// unmounting drops it.
type panel struct {
	id      string
	buf     *state.Buffer
	ui      state.UIState
	input   textarea.Model
	output  viewport.Model
	keys    panelKeys
	help    help.Model
	overlay helpoverlay.HelpOverlay
	status  statusbar.StatusBar

	codec  string
	copier Copier
	report bool
	log    *zap.Logger

	st        styles
	dark      bool
	highlight func(string) string
}

func newPanel(ctx Context, st styles, dark bool) *panel {
	ta := textarea.New()
	ta.Placeholder = "Paste JSON here…"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	keys := newPanelKeys()
	p := &panel{
		id:      uuid.NewString(),
		buf:     state.NewBuffer(ctx.Engine),
		ui:      state.UIState{MinCol: 30},
		input:   ta,
		output:  viewport.New(40, 10),
		keys:    keys,
		help:    help.New(),
		overlay: helpoverlay.NewHelpOverlay(keys.sections()),
		status:  statusbar.NewStatusBar(),
		codec:   ctx.Engine.Codec().Name(),
		copier:  ctx.Copier,
		report:  ctx.ReportCopyFailures,
	}
	p.log = ctx.Logger.With(zap.String("panel", p.id))
	p.setStyles(st, dark)
	p.log.Debug("panel mounted", zap.String("codec", p.codec))
	return p
}

func (p *panel) unmount() {
	p.log.Debug("panel unmounted")
}

func (p *panel) setStyles(st styles, dark bool) {
	p.st = st
	p.dark = dark
	p.highlight = jsonHighlighter(dark, st.noColor)
	p.refresh()
}

func (p *panel) focus() tea.Cmd {
	if p.ui.Focus == state.FocusInput {
		return p.input.Focus()
	}
	return nil
}

func (p *panel) blur() { p.input.Blur() }

// SetSize lays the panel out in w x h cells.
func (p *panel) SetSize(w, h int) {
	p.ui = state.Resize(p.ui, w, h)
	body := h - 10
	if body < 6 {
		body = 6
	}
	colW, boxH := (w-1)/2-2, body-2
	if state.Stacked(p.ui) {
		colW, boxH = w-2, body/2-3
	}
	if colW < 10 {
		colW = 10
	}
	if boxH < 3 {
		boxH = 3
	}
	p.input.SetWidth(colW)
	p.input.SetHeight(boxH)
	p.output.Width = colW
	p.output.Height = boxH
	p.help.Width = w
	p.refresh()
}

func (p *panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.panel != p.id {
			return nil
		}
		return p.applyCopy(msg.err)
	case copiedResetMsg:
		if msg.panel == p.id {
			p.ui = state.ResetCopied(p.ui, msg.seq)
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Format):
			p.transform(p.buf.RunFormat)
			return nil
		case key.Matches(msg, p.keys.Minify):
			p.transform(p.buf.RunMinify)
			return nil
		case key.Matches(msg, p.keys.Ensure):
			p.transform(p.buf.EnsureFormatted)
			return nil
		case key.Matches(msg, p.keys.Clear):
			p.buf.Clear()
			p.input.Reset()
			p.ui.Notice = ""
			p.refresh()
			return nil
		case key.Matches(msg, p.keys.Copy):
			return p.copyCmd()
		case key.Matches(msg, p.keys.Diff):
			p.ui = state.ToggleView(p.ui)
			p.refresh()
			return nil
		case key.Matches(msg, p.keys.Help):
			p.ui = state.ToggleHelp(p.ui)
			return nil
		case key.Matches(msg, p.keys.Focus):
			p.ui = state.ToggleFocus(p.ui)
			if p.ui.Focus == state.FocusInput {
				return p.input.Focus()
			}
			p.input.Blur()
			return nil
		}
		if p.ui.Focus == state.FocusOutput {
			var cmd tea.Cmd
			p.output, cmd = p.output.Update(msg)
			return cmd
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.syncInput()
	return cmd
}

// transform runs op unless the input is empty; Format and Minify are
// disabled for an empty input.
func (p *panel) transform(op func()) {
	if !state.CanTransform(p.buf.Snapshot()) {
		return
	}
	op()
	p.ui.Notice = ""
	p.refresh()
	p.output.GotoTop()
}

func (p *panel) syncInput() {
	v := p.input.Value()
	if v == p.buf.Snapshot().Input {
		return
	}
	p.buf.SetInput(v)
	if p.ui.View == state.ViewDiff {
		p.refresh()
	}
}

// copyCmd exports the current output snapshot off the update loop.
func (p *panel) copyCmd() tea.Cmd {
	text := p.buf.Snapshot().Output
	if text == "" || p.copier == nil {
		return nil
	}
	c, id := p.copier, p.id
	return func() tea.Msg {
		return copyResultMsg{panel: id, err: c.Copy(text)}
	}
}

func (p *panel) applyCopy(err error) tea.Cmd {
	if err == nil {
		var seq int
		p.ui, seq = state.MarkCopied(p.ui)
		id := p.id
		return tea.Tick(copiedFor, func(time.Time) tea.Msg {
			return copiedResetMsg{panel: id, seq: seq}
		})
	}
	if errors.Is(err, clipboard.ErrNothingToCopy) {
		return nil
	}
	p.log.Debug("copy failed", zap.Error(err))
	if p.report {
		p.ui.Notice = "Copy failed"
	}
	return nil
}

func (p *panel) refresh() {
	d := p.buf.Snapshot()
	var content string
	if p.ui.View == state.ViewDiff && d.Output != "" {
		content = diff.View(d.Input, d.Output, p.st.noColor)
	} else {
		content = outputview.View(d.Output, outputview.Options{
			Width:       p.output.Width,
			Wrap:        state.WrapOutput(d),
			LineNumbers: true,
			Highlight:   p.highlight,
		})
	}
	p.output.SetContent(content)
}

func (p *panel) View() string {
	d := p.buf.Snapshot()
	var b strings.Builder
	b.WriteString(p.st.title.Render("JSON Formatter") + "\n")
	b.WriteString(p.st.faint.Render("Paste JSON into the input, then ctrl+f to pretty-print or ctrl+g to minify. Formatting runs locally.") + "\n\n")

	if p.ui.Help {
		focus := "INPUT"
		if p.ui.Focus == state.FocusOutput {
			focus = "OUTPUT"
		}
		b.WriteString(p.overlay.View(focus, p.st.glamourStyle(p.dark)))
		b.WriteString(p.st.faint.Render("f1: close help") + "\n")
		return b.String()
	}

	inBox, outBox := p.st.box, p.st.box
	if p.ui.Focus == state.FocusInput {
		inBox = p.st.boxFocused
	} else {
		outBox = p.st.boxFocused
	}
	inCol := lipgloss.JoinVertical(lipgloss.Left,
		p.st.label.Render("Input"),
		inBox.Render(p.input.View()),
		p.inputFooter(d),
	)
	outCol := lipgloss.JoinVertical(lipgloss.Left,
		p.st.label.Render("Output"),
		outBox.Render(p.output.View()),
		p.outputFooter(d),
	)
	if state.Stacked(p.ui) {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, inCol, outCol))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inCol, " ", outCol))
	}
	b.WriteString("\n")

	if d.Err != "" {
		b.WriteString(p.st.alert.Render("Error: "+d.Err) + "\n")
	}
	b.WriteString(p.st.faint.Render(p.status.View(p.ui, d, p.codec)) + "\n")
	b.WriteString(p.help.View(p.keys))
	return b.String()
}

func (p *panel) inputFooter(d state.Document) string {
	s := util.CountLabel(d.Input)
	if !state.CanTransform(d) {
		s += "  (format/minify disabled)"
	}
	return p.st.faint.Render(s)
}

func (p *panel) outputFooter(d state.Document) string {
	copyLabel := "Copy"
	if p.ui.Copied {
		copyLabel = "Copied"
	}
	if d.Output == "" {
		copyLabel = p.st.faint.Render(copyLabel)
	}
	chips := tagchips.View(util.ComputeChips(d, p.ui), p.st.noColor, p.st.pal)
	return copyLabel + "  " + chips + "  " + p.st.faint.Render(util.CountLabel(d.Output))
}
