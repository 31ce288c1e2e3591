package outputview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	assert.Equal(t, "[\n  1\n]", View("[\n  1\n]", Options{}))
	assert.Equal(t, "", View("", Options{LineNumbers: true}))
}

func TestLineNumbers(t *testing.T) {
	out := View("{\n  \"a\": 1\n}", Options{LineNumbers: true})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1 │ {")
	assert.Contains(t, lines[2], "3 │ }")
}

func TestWrapMinified(t *testing.T) {
	text := `{"a":1,"b":[1,2,3]}`
	out := View(text, Options{Width: 8, Wrap: true})
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(l), 8)
	}
	assert.Equal(t, text, strings.ReplaceAll(out, "\n", ""))
}

func TestWrapGutterOnlyOnFirstVisualLine(t *testing.T) {
	out := View("abcdefghij", Options{Width: 8, Wrap: true, LineNumbers: true})
	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	assert.Contains(t, lines[0], "1 │ ")
	assert.NotContains(t, lines[1], "1")
}

func TestHighlightTrailingNewlineDropped(t *testing.T) {
	out := View("[]", Options{Highlight: func(s string) string { return s + "\n" }})
	assert.Equal(t, "[]", out)
}
