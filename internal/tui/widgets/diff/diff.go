package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)
)

// Op is the kind of a diff line.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one line of a line-level diff.
type Line struct {
	Op   Op
	Text string
}

// Lines computes a line-level diff of before against after.
func Lines(before, after string) []Line {
	d := dmp.New()
	a, b, table := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), table)
	var out []Line
	for _, df := range diffs {
		op := Equal
		switch df.Type {
		case dmp.DiffDelete:
			op = Delete
		case dmp.DiffInsert:
			op = Insert
		}
		for _, l := range strings.SplitAfter(df.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return out
}

// View renders a unified diff of the input (before) against the output
// (after). Runs of deletions followed by the same number of insertions get
// character-level highlights when color is on.
func View(before, after string, noColor bool) string {
	var b strings.Builder
	b.WriteString("INPUT vs OUTPUT (Unified)\n")
	if before == after {
		b.WriteString("No changes\n")
		return b.String()
	}
	lines := Lines(before, after)
	for i := 0; i < len(lines); {
		l := lines[i]
		if l.Op == Equal {
			writeLine(&b, "  ", l.Text, faint, noColor)
			i++
			continue
		}
		dels, ins := run(lines[i:])
		if !noColor && len(dels) > 0 && len(dels) == len(ins) {
			for k := range dels {
				b.WriteString(charDiff(dels[k], ins[k]))
			}
		} else {
			for _, t := range dels {
				writeLine(&b, "- ", t, delLine, noColor)
			}
			for _, t := range ins {
				writeLine(&b, "+ ", t, addLine, noColor)
			}
		}
		i += len(dels) + len(ins)
	}
	return b.String()
}

// run collects the deletions then insertions at the head of lines.
func run(lines []Line) (dels, ins []string) {
	i := 0
	for ; i < len(lines) && lines[i].Op == Delete; i++ {
		dels = append(dels, lines[i].Text)
	}
	for ; i < len(lines) && lines[i].Op == Insert; i++ {
		ins = append(ins, lines[i].Text)
	}
	return dels, ins
}

func writeLine(b *strings.Builder, prefix, text string, st lipgloss.Style, noColor bool) {
	if noColor {
		b.WriteString(prefix + text + "\n")
		return
	}
	b.WriteString(st.Render(prefix+text) + "\n")
}

// charDiff renders a deleted/inserted line pair with char-level spans.
func charDiff(before, after string) string {
	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	diffs = d.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	sb.WriteString(delLine.Render("- "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(delChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(delLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(addLine.Render("+ "))
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffInsert:
			sb.WriteString(addChar.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(addLine.Render(df.Text))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
