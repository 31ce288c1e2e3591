package util

import (
	"strconv"
	"unicode/utf8"

	"devtoys/internal/tui/state"
)

// ComputeChips derives the status chips for a document and panel state.
//
// The returned slice preserves a stable order:
//   Pretty | Minified | Error, Copied, In Len, Out Len
//
// Pretty and Minified only appear while there is output; Error replaces
// them when the last transform failed. Counters are in characters (runes)
// and are always included.
func ComputeChips(d state.Document, ui state.UIState) []state.Chip {
	chips := make([]state.Chip, 0, 5)
	switch d.Phase() {
	case state.Formatted:
		chips = append(chips, state.Chip{Kind: state.PRETTY})
	case state.Compacted:
		chips = append(chips, state.Chip{Kind: state.MINIFIED})
	case state.Errored:
		chips = append(chips, state.Chip{Kind: state.ERROR})
	}
	if ui.Copied {
		chips = append(chips, state.Chip{Kind: state.COPIED})
	}
	chips = append(chips,
		state.Chip{Kind: state.IN_LEN, Value: CharCount(d.Input)},
		state.Chip{Kind: state.OUT_LEN, Value: CharCount(d.Output)},
	)
	return chips
}

// CharCount returns the length of s in runes (Unicode code points).
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// CountLabel renders "N chars", or "empty" for an empty string.
func CountLabel(s string) string {
	n := CharCount(s)
	if n == 0 {
		return "empty"
	}
	if n == 1 {
		return "1 char"
	}
	return strconv.Itoa(n) + " chars"
}

