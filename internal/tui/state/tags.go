package state

// ChipKind enumerates the status chips shown for a document.
type ChipKind int

const (
	// Stable display order: Pretty, Minified, Error, Copied, In, Out
	PRETTY ChipKind = iota
	MINIFIED
	ERROR
	COPIED
	IN_LEN
	OUT_LEN
)

// Chip is a single status chip. Value carries counters (character counts);
// other chips use Value = 0.
type Chip struct {
	Kind  ChipKind
	Value int
}
