package helpoverlay

import (
	"strings"
	"testing"
)

var sections = []Section{
	{"Transform", []string{"ctrl+f: format", "ctrl+g: minify"}},
	{"Output", []string{"ctrl+y: copy"}},
}

func TestMarkdownGroupsKeys(t *testing.T) {
	md := NewHelpOverlay(sections).Markdown("INPUT")
	for _, w := range []string{"# Shortcuts", "**INPUT**", "## Transform", "- ctrl+f: format", "## Output"} {
		if !strings.Contains(md, w) {
			t.Fatalf("expected %q in markdown:\n%s", w, md)
		}
	}
}

func TestViewPlain(t *testing.T) {
	out := NewHelpOverlay(sections).View("OUTPUT", "notty")
	for _, w := range []string{"Shortcuts", "Transform", "format", "copy"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in rendered help:\n%s", w, out)
		}
	}
}
