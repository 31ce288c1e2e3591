package state

// Buffer owns one panel's Document. Each method replaces the whole snapshot,
// so callers never observe a partial update.
type Buffer struct {
	doc    Document
	engine Transformer
}

// NewBuffer returns an empty buffer transforming with t.
func NewBuffer(t Transformer) *Buffer {
	return &Buffer{engine: t}
}

// Snapshot returns a copy of the current document.
func (b *Buffer) Snapshot() Document { return b.doc }

func (b *Buffer) SetInput(text string) { b.doc = SetInput(b.doc, text) }

func (b *Buffer) RunFormat() { b.doc = RunFormat(b.doc, b.engine) }

func (b *Buffer) RunMinify() { b.doc = RunMinify(b.doc, b.engine) }

func (b *Buffer) EnsureFormatted() { b.doc = EnsureFormatted(b.doc, b.engine) }

func (b *Buffer) Clear() { b.doc = Clear(b.doc) }
