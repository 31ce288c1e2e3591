// Package jsonfmt validates text as strict JSON and re-serializes it either
// pretty-printed (2-space indent) or minified. Key order and number literals
// are kept as written; failures are returned as data, never as panics.
package jsonfmt

import (
	"bytes"
)

// Indent is the pretty-print indentation unit.
const Indent = "  "

// Result is the outcome of one transform: Text on success, Err on failure.
type Result struct {
	Text string
	Err  *MalformedError
}

// OK reports whether the transform succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Message is the diagnostic text of a failed transform, or "".
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Engine runs Format and Minify on a Codec. It holds no mutable state.
type Engine struct {
	codec Codec
}

// New returns an engine on c; a nil codec selects Std.
func New(c Codec) *Engine {
	if c == nil {
		c = Std
	}
	return &Engine{codec: c}
}

// Codec returns the backend in use.
func (e *Engine) Codec() Codec { return e.codec }

// Format pretty-prints input with 2-space indentation.
func (e *Engine) Format(input string) Result {
	return e.transform(input, func(dst *bytes.Buffer, src []byte) error {
		return e.codec.Indent(dst, src, "", Indent)
	})
}

// Minify serializes input with no insignificant whitespace.
func (e *Engine) Minify(input string) Result {
	return e.transform(input, e.codec.Compact)
}

func (e *Engine) transform(input string, write func(*bytes.Buffer, []byte) error) Result {
	src := []byte(input)
	body := trimJSONSpace(src)
	if len(body) == 0 {
		return Result{Err: &MalformedError{Message: ErrEmptyInput.Error(), cause: ErrEmptyInput}}
	}
	if err := e.codec.Check(src); err != nil {
		return Result{Err: newMalformed(src, err, e.codec)}
	}
	var out bytes.Buffer
	out.Grow(len(body))
	if err := write(&out, body); err != nil {
		return Result{Err: newMalformed(body, err, e.codec)}
	}
	return Result{Text: out.String()}
}

// trimJSONSpace strips the four JSON whitespace bytes from both ends.
// Indent keeps trailing whitespace of its input, so it must not see any.
func trimJSONSpace(b []byte) []byte {
	return bytes.Trim(b, " \t\r\n")
}

var defaultEngine = New(Std)

// Format pretty-prints input using the encoding/json backend.
func Format(input string) Result { return defaultEngine.Format(input) }

// Minify compacts input using the encoding/json backend.
func Minify(input string) Result { return defaultEngine.Minify(input) }
