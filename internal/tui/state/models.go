package state

// Mode is the serialization form of the current output.
type Mode int

const (
	None Mode = iota
	Pretty
	Minified
)

func (m Mode) String() string {
	switch m {
	case Pretty:
		return "pretty"
	case Minified:
		return "minified"
	default:
		return "none"
	}
}

// Document is the single snapshot a formatter panel renders from.
// After a transform exactly one of Output and Err is non-empty.
type Document struct {
	Input  string
	Output string
	Mode   Mode
	Err    string
}

// Phase names the states of a panel's document lifecycle.
type Phase int

const (
	Empty Phase = iota
	Formatted
	Compacted
	Errored
)

func (p Phase) String() string {
	switch p {
	case Formatted:
		return "formatted"
	case Compacted:
		return "minified"
	case Errored:
		return "errored"
	default:
		return "empty"
	}
}

// Phase derives the lifecycle state from the snapshot.
func (d Document) Phase() Phase {
	switch {
	case d.Err != "":
		return Errored
	case d.Output == "":
		return Empty
	case d.Mode == Minified:
		return Compacted
	default:
		return Formatted
	}
}

// Focus is the panel surface receiving key input.
type Focus int

const (
	FocusInput Focus = iota
	FocusOutput
)

// OutputView selects what the output surface shows.
type OutputView int

const (
	ViewOutput OutputView = iota
	ViewDiff
)

// UIState holds presentation-only panel state. None of it feeds the transform engine.
type UIState struct {
	Focus Focus
	View  OutputView
	Help  bool

	// Layout
	Width  int
	Height int
	MinCol int

	// Copy indicator; CopySeq discards stale resets.
	Copied  bool
	CopySeq int

	// Notices and ephemeral messages
	Notice string
}
