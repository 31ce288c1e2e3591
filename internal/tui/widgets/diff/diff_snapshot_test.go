package diff

import (
	"strings"
	"testing"
)

func TestUnifiedSnapshot(t *testing.T) {
	out := View("a\nb", "a\nc", true)
	if !strings.HasPrefix(out, "INPUT vs OUTPUT (Unified)\n") {
		t.Fatalf("missing unified header")
	}
	if !strings.Contains(out, "  a\n") || !strings.Contains(out, "- b\n") || !strings.Contains(out, "+ c\n") {
		t.Fatalf("expected +/- lines in unified output:\n%s", out)
	}
}

func TestNoChanges(t *testing.T) {
	out := View("[1]", "[1]", true)
	if !strings.Contains(out, "No changes") {
		t.Fatalf("expected no-changes marker:\n%s", out)
	}
}

func TestFormatDiffLines(t *testing.T) {
	lines := Lines(`{"a":1}`, "{\n  \"a\": 1\n}")
	var dels, ins int
	for _, l := range lines {
		switch l.Op {
		case Delete:
			dels++
		case Insert:
			ins++
		}
	}
	if dels != 1 || ins != 3 {
		t.Fatalf("expected 1 deleted and 3 inserted lines, got %d/%d: %+v", dels, ins, lines)
	}
}

func TestColorOutputKeepsText(t *testing.T) {
	out := View("x: 1", "x: 2", false)
	if !strings.Contains(out, "x: ") {
		t.Fatalf("expected shared text in colored diff:\n%s", out)
	}
}
