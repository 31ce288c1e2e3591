// Package clipboard copies text out of the application: the system clipboard
// first, then an OSC 52 escape sequence asking the terminal to do it.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"go.uber.org/zap"
)

// ErrNothingToCopy is returned for empty text; nothing is written anywhere.
var ErrNothingToCopy = errors.New("nothing to copy")

// Writer puts text on some clipboard.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) Write(text string) error { return f(text) }

// System writes through the OS clipboard tools (pbcopy, xclip, wl-copy, ...).
var System Writer = WriterFunc(func(text string) error {
	if clipboard.Unsupported {
		return errors.New("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
})

// OSC52 returns a writer emitting the OSC 52 sequence to out (the terminal).
// Inside tmux or screen the sequence is wrapped for passthrough.
func OSC52(out io.Writer, term string) Writer {
	return WriterFunc(func(text string) error {
		if out == nil {
			return errors.New("no terminal output")
		}
		seq := osc52.New(text)
		switch {
		case strings.HasPrefix(term, "tmux"):
			seq = seq.Tmux()
		case strings.HasPrefix(term, "screen"):
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(out)
		return err
	})
}

// Copier tries its primary writer, then the fallback.
type Copier struct {
	primary  Writer
	fallback Writer
	log      *zap.Logger
}

// New returns a copier; fallback may be nil. A nil logger discards.
func New(primary, fallback Writer, log *zap.Logger) *Copier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Copier{primary: primary, fallback: fallback, log: log}
}

// Copy writes text and reports whether some mechanism took it.
// The caller decides whether a failure is worth showing.
func (c *Copier) Copy(text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	perr := errors.New("no primary clipboard")
	if c.primary != nil {
		if perr = c.primary.Write(text); perr == nil {
			return nil
		}
		c.log.Debug("primary clipboard failed", zap.Error(perr))
	}
	if c.fallback == nil {
		return fmt.Errorf("copy: %w", perr)
	}
	ferr := c.fallback.Write(text)
	if ferr == nil {
		return nil
	}
	c.log.Debug("fallback clipboard failed", zap.Error(ferr))
	return fmt.Errorf("copy: %w", errors.Join(perr, ferr))
}
