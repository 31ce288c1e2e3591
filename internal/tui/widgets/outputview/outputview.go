package outputview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Options control how output text is laid out.
type Options struct {
	Width       int  // total width including gutter; <= 0 disables wrapping
	Wrap        bool // soft-wrap long lines
	LineNumbers bool
	// Highlight colors the whole text before layout; nil leaves it plain.
	Highlight func(string) string
}

var gutterStyle = lipgloss.NewStyle().Faint(true)

// View renders read-only output. Wrapped continuation lines get a blank gutter.
func View(text string, o Options) string {
	if text == "" {
		return ""
	}
	nlines := strings.Count(text, "\n") + 1
	if o.Highlight != nil {
		text = o.Highlight(text)
	}
	lines := strings.Split(text, "\n")
	// Highlighters may append a trailing newline.
	if len(lines) > nlines {
		lines = lines[:nlines]
	}

	gw := 0
	if o.LineNumbers {
		gw = len(fmt.Sprint(nlines))
	}
	body := o.Width
	if o.LineNumbers {
		body -= gw + 3
	}

	var b strings.Builder
	for i, l := range lines {
		visual := []string{l}
		if o.Wrap && body > 0 {
			visual = strings.Split(ansi.Hardwrap(l, body, true), "\n")
		}
		for j, v := range visual {
			if o.LineNumbers {
				num := ""
				if j == 0 {
					num = fmt.Sprint(i + 1)
				}
				b.WriteString(gutterStyle.Render(fmt.Sprintf("%*s │ ", gw, num)))
			}
			b.WriteString(v)
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
