package jsonfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptyInput is the cause of a MalformedError for empty or whitespace-only input.
var ErrEmptyInput = errors.New("unexpected end of JSON input")

// MalformedError is the single failure kind of the engine: the input is not
// one strict JSON value. Line and Column are 1-based and zero when the codec
// did not report a position.
type MalformedError struct {
	Message string
	Offset  int64
	Line    int
	Column  int
	cause   error
}

func (e *MalformedError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

func (e *MalformedError) Unwrap() error { return e.cause }

func newMalformed(src []byte, cause error, c Codec) *MalformedError {
	me := &MalformedError{Message: singleLine(cause.Error()), cause: cause}
	if me.Message == "" {
		me.Message = "invalid JSON"
	}
	if r, ok := c.(offsetReporter); ok {
		if off, ok := r.offset(cause); ok {
			me.Offset = off
			me.Line, me.Column = position(src, off)
		}
	}
	return me
}

// position maps a codec offset ("error after reading off bytes") to the
// 1-based line and rune column of the offending byte.
func position(src []byte, off int64) (line, col int) {
	at := int(off) - 1
	if at < 0 {
		at = 0
	}
	if at > len(src) {
		at = len(src)
	}
	line, col = 1, 1
	start := 0
	for i := 0; i < at; i++ {
		if src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	col = utf8.RuneCount(src[start:at]) + 1
	return line, col
}

func singleLine(s string) string {
	s = strings.TrimSpace(s)
	return strings.Join(strings.Fields(s), " ")
}
