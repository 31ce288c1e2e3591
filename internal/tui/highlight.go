package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// jsonHighlighter returns a function coloring JSON for a terminal, or nil
// when colors are off.
func jsonHighlighter(dark, noColor bool) func(string) string {
	if noColor {
		return nil
	}
	lexer := lexers.Get("json")
	formatter := formatters.Get("terminal256")
	if lexer == nil || formatter == nil {
		return nil
	}
	style := chromastyles.Get("github")
	if dark {
		style = chromastyles.Get("monokai")
	}
	return func(src string) string {
		it, err := lexer.Tokenise(nil, src)
		if err != nil {
			return src
		}
		var b strings.Builder
		if err := formatter.Format(&b, style, it); err != nil {
			return src
		}
		return b.String()
	}
}
