package state

import "devtoys/internal/jsonfmt"

// Transformer is the engine contract the document reducers depend on.
type Transformer interface {
	Format(input string) jsonfmt.Result
	Minify(input string) jsonfmt.Result
}

// SetInput replaces the input text. Output, error and mode are left as they
// are so stale output stays visible until the next transform.
func SetInput(d Document, text string) Document {
	d.Input = text
	return d
}

// RunFormat pretty-prints the current input and applies the result.
func RunFormat(d Document, t Transformer) Document {
	return apply(d, t.Format(d.Input), Pretty)
}

// RunMinify compacts the current input and applies the result.
func RunMinify(d Document, t Transformer) Document {
	return apply(d, t.Minify(d.Input), Minified)
}

// EnsureFormatted formats only when there is no output yet.
func EnsureFormatted(d Document, t Transformer) Document {
	if d.Output != "" {
		return d
	}
	return RunFormat(d, t)
}

// Clear resets every field to its initial value.
func Clear(Document) Document {
	return Document{}
}

// CanTransform reports whether Format and Minify are enabled for d.
func CanTransform(d Document) bool {
	return d.Input != ""
}

// apply keeps Output and Err mutually exclusive. A failure leaves Mode as it was.
func apply(d Document, r jsonfmt.Result, mode Mode) Document {
	if !r.OK() {
		d.Output = ""
		d.Err = r.Message()
		return d
	}
	d.Output = r.Text
	d.Err = ""
	d.Mode = mode
	return d
}

// ToggleFocus switches key input between the input and output surfaces.
func ToggleFocus(s UIState) UIState {
	if s.Focus == FocusInput {
		s.Focus = FocusOutput
	} else {
		s.Focus = FocusInput
	}
	return s
}

// ToggleView switches the output surface between the output and the diff.
func ToggleView(s UIState) UIState {
	if s.View == ViewOutput {
		s.View = ViewDiff
		s.Notice = "Diff: input vs output"
	} else {
		s.View = ViewOutput
		s.Notice = ""
	}
	return s
}

// ToggleHelp shows or hides the shortcut overlay.
func ToggleHelp(s UIState) UIState {
	s.Help = !s.Help
	return s
}

// Resize updates the layout and sets a notice if too narrow for two columns.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	if s.MinCol > 0 && width < 2*s.MinCol+3 {
		s.Notice = "Narrow width: panels stacked"
	}
	return s
}

// Stacked reports whether input and output should be laid out vertically.
func Stacked(s UIState) bool {
	return s.MinCol > 0 && s.Width < 2*s.MinCol+3
}

// MarkCopied raises the copy indicator and returns the sequence number a
// later ResetCopied must match.
func MarkCopied(s UIState) (UIState, int) {
	s.CopySeq++
	s.Copied = true
	return s, s.CopySeq
}

// ResetCopied lowers the indicator unless a newer copy happened since seq.
func ResetCopied(s UIState, seq int) UIState {
	if seq == s.CopySeq {
		s.Copied = false
	}
	return s
}

// WrapOutput reports whether output lines should be soft-wrapped.
// Minified output is a single long line, so it wraps.
func WrapOutput(d Document) bool {
	return d.Mode == Minified && d.Output != ""
}
