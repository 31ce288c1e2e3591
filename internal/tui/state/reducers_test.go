package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devtoys/internal/jsonfmt"
)

var engine = jsonfmt.New(jsonfmt.Std)

func exclusive(t *testing.T, d Document) {
	t.Helper()
	if (d.Output == "") == (d.Err == "") {
		t.Fatalf("output/error not exclusive: %+v", d)
	}
}

func TestFormatScenario(t *testing.T) {
	d := SetInput(Document{}, `{"a":1,"b":[1,2,3]}`)
	d = RunFormat(d, engine)
	exclusive(t, d)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2,\n    3\n  ]\n}", d.Output)
	assert.Equal(t, Pretty, d.Mode)
	assert.Equal(t, Formatted, d.Phase())
}

func TestMinifyScenario(t *testing.T) {
	d := RunMinify(SetInput(Document{}, `{"a":1,"b":[1,2,3]}`), engine)
	exclusive(t, d)
	assert.Equal(t, `{"a":1,"b":[1,2,3]}`, d.Output)
	assert.Equal(t, Minified, d.Mode)
	assert.Equal(t, Compacted, d.Phase())
	assert.True(t, WrapOutput(d))
}

func TestFailureClearsOutput(t *testing.T) {
	d := RunFormat(SetInput(Document{}, `[1]`), engine)
	require.Equal(t, Formatted, d.Phase())

	d = RunFormat(SetInput(d, `{"a":1,}`), engine)
	exclusive(t, d)
	assert.Empty(t, d.Output)
	assert.NotEmpty(t, d.Err)
	assert.Equal(t, Errored, d.Phase())
	assert.Equal(t, Pretty, d.Mode, "failed transform keeps the previous mode")

	d = RunMinify(SetInput(d, `[1, 2]`), engine)
	exclusive(t, d)
	assert.Empty(t, d.Err)
	assert.Equal(t, "[1,2]", d.Output)
}

func TestSetInputKeepsStaleOutput(t *testing.T) {
	d := RunFormat(SetInput(Document{}, `[1]`), engine)
	out := d.Output
	d = SetInput(d, `garbage`)
	assert.Equal(t, out, d.Output)
	assert.Equal(t, `garbage`, d.Input)
}

func TestClearResets(t *testing.T) {
	for _, in := range []string{`[1]`, `{bad`, ``} {
		d := RunMinify(SetInput(Document{}, in), engine)
		if diff := cmp.Diff(Document{}, Clear(d)); diff != "" {
			t.Fatalf("clear after %q (-want +got):\n%s", in, diff)
		}
		assert.Equal(t, Empty, Clear(d).Phase())
	}
}

func TestCanTransformGuardsEmptyInput(t *testing.T) {
	assert.False(t, CanTransform(Document{}))
	assert.True(t, CanTransform(Document{Input: " "}))
}

func TestEnsureFormatted(t *testing.T) {
	d := SetInput(Document{}, `{"b":2}`)
	d = EnsureFormatted(d, engine)
	assert.Equal(t, Pretty, d.Mode)

	m := RunMinify(d, engine)
	assert.Equal(t, m, EnsureFormatted(m, engine), "existing output is left alone")
}

func TestBufferOperations(t *testing.T) {
	b := NewBuffer(engine)
	assert.Equal(t, Document{}, b.Snapshot())

	b.SetInput(`{"k":[true,null]}`)
	b.RunMinify()
	assert.Equal(t, `{"k":[true,null]}`, b.Snapshot().Output)

	b.RunFormat()
	assert.Equal(t, Formatted, b.Snapshot().Phase())

	b.SetInput(``)
	b.RunFormat()
	exclusive(t, b.Snapshot())
	assert.Equal(t, Errored, b.Snapshot().Phase())

	b.Clear()
	assert.Equal(t, Document{}, b.Snapshot())

	b.SetInput(`[3]`)
	b.EnsureFormatted()
	assert.Equal(t, "[\n  3\n]", b.Snapshot().Output)
}

func TestCopiedSequence(t *testing.T) {
	s, first := MarkCopied(UIState{})
	s, second := MarkCopied(s)
	s = ResetCopied(s, first)
	assert.True(t, s.Copied, "stale reset must not lower a newer indicator")
	s = ResetCopied(s, second)
	assert.False(t, s.Copied)
}

func TestToggleFocusAndView(t *testing.T) {
	s := ToggleFocus(UIState{})
	if s.Focus != FocusOutput {
		t.Fatalf("expected output focus")
	}
	s = ToggleView(s)
	if s.View != ViewDiff || s.Notice == "" {
		t.Fatalf("expected diff view with notice")
	}
	s = ToggleView(s)
	if s.View != ViewOutput {
		t.Fatalf("expected output view")
	}
	if !ToggleHelp(s).Help {
		t.Fatalf("expected help shown")
	}
}

func TestResizeStacksNarrow(t *testing.T) {
	s := Resize(UIState{MinCol: 20}, 30, 10) // threshold = 43
	assert.True(t, Stacked(s))
	assert.NotEmpty(t, s.Notice)
	s = Resize(UIState{MinCol: 20}, 120, 40)
	assert.False(t, Stacked(s))
}

func TestModeAndPhaseStrings(t *testing.T) {
	assert.Equal(t, "pretty", Pretty.String())
	assert.Equal(t, "minified", Minified.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "errored", Errored.String())
}
