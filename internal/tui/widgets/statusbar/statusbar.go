package statusbar

import (
	"fmt"
	"strings"

	"devtoys/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting panel and document state.
func (StatusBar) View(s state.UIState, d state.Document, codec string) string {
	focus := "[INPUT]"
	if s.Focus == state.FocusOutput {
		focus = "[OUTPUT]"
	}
	view := "Output"
	if s.View == state.ViewDiff {
		view = "Diff"
	}
	parts := []string{
		focus,
		"Mode: " + d.Mode.String(),
		"State: " + d.Phase().String(),
		"View: " + view,
		"Codec: " + codec,
		fmt.Sprintf("W:%d", s.Width),
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
