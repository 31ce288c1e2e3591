package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validDocs = []string{
	`{"a":1,"b":[1,2,3]}`,
	`{}`,
	`[]`,
	`null`,
	`1.0`,
	`"café"`,
	`{"z":1,"a":2,"m":{"y":[true,false,null]}}`,
	"  {\n  \"nested\": { \"x\": [1.0, -2.5e10, 0] },\n\t\"s\": \"a b\"\n}\n",
	`[{"k":"v"},{"k":[[],{}]}]`,
	`[1e999]`,
}

func decode(t *testing.T, s string) any {
	t.Helper()
	// Numbers stay literal so out-of-range values like 1e999 still compare.
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v), "decode %q", s)
	return v
}

func engines() map[string]*Engine {
	return map[string]*Engine{"std": New(Std), "go-json": New(GoJSON)}
}

func TestFormatScenario(t *testing.T) {
	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2,\n    3\n  ]\n}"
	r := Format(`{"a":1,"b":[1,2,3]}`)
	require.True(t, r.OK(), r.Message())
	assert.Equal(t, want, r.Text)
}

func TestMinifyScenarioUnchanged(t *testing.T) {
	in := `{"a":1,"b":[1,2,3]}`
	r := Minify(in)
	require.True(t, r.OK(), r.Message())
	assert.Equal(t, in, r.Text)
}

func TestMinifyStripsWhitespace(t *testing.T) {
	r := Minify("{\n  \"a\" : [ 1 , 2 ],\n  \"b\" : \"x y\"\n}\n")
	require.True(t, r.OK(), r.Message())
	assert.Equal(t, `{"a":[1,2],"b":"x y"}`, r.Text)
}

func TestKeyOrderAndNumbersPreserved(t *testing.T) {
	r := Minify(`{ "z": 1.0, "a": 2, "big": 12345678901234567890 }`)
	require.True(t, r.OK(), r.Message())
	assert.Equal(t, `{"z":1.0,"a":2,"big":12345678901234567890}`, r.Text)

	r = Format(`1.0`)
	require.True(t, r.OK())
	assert.Equal(t, "1.0", r.Text)
}

func TestEmptyContainersStayInline(t *testing.T) {
	r := Format(`{"a":[],"b":{}}`)
	require.True(t, r.OK())
	assert.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}", r.Text)
}

func TestEmptyInputFails(t *testing.T) {
	for name, e := range engines() {
		for _, in := range []string{"", "   ", "\n\t\r\n"} {
			f := e.Format(in)
			m := e.Minify(in)
			assert.False(t, f.OK(), "%s format %q", name, in)
			assert.False(t, m.OK(), "%s minify %q", name, in)
			assert.Empty(t, f.Text)
			assert.True(t, errors.Is(f.Err, ErrEmptyInput))
			assert.NotEmpty(t, f.Message())
		}
	}
}

func TestMalformedFails(t *testing.T) {
	for name, e := range engines() {
		for _, in := range []string{`{invalid`, `[1,2`, `{"a":}`, `nul`} {
			r := e.Format(in)
			require.False(t, r.OK(), "%s accepted %q", name, in)
			assert.NotEmpty(t, r.Message())
			assert.NotContains(t, r.Message(), "\n")
			assert.Empty(t, r.Text)
		}
	}
}

func TestStrictGrammar(t *testing.T) {
	cases := map[string]string{
		"trailing comma":   `{"a":1,}`,
		"trailing array":   `[1,2,]`,
		"line comment":     "{\"a\":1 // c\n}",
		"block comment":    `/* c */ {"a":1}`,
		"single quotes":    `{'a':1}`,
		"unquoted key":     `{a:1}`,
		"trailing data":    `{} {}`,
		"trailing garbage": `[1] x`,
		"nan":              `NaN`,
		"leading zero":     `[01]`,
		"bare decimal":     `[1.]`,
		"control char":     "\"a\x01\"",
	}
	for codec, e := range engines() {
		for name, in := range cases {
			t.Run(codec+"/"+name, func(t *testing.T) {
				assert.False(t, e.Format(in).OK())
				assert.False(t, e.Minify(in).OK())
			})
		}
	}
}

func TestTrailingCommaDiagnostic(t *testing.T) {
	r := Format(`{"a":1,}`)
	require.False(t, r.OK())
	assert.Contains(t, r.Err.Message, "invalid character '}'")
	assert.Equal(t, 1, r.Err.Line)
	assert.Equal(t, 8, r.Err.Column)
	assert.Equal(t, r.Err.Message+" (line 1, column 8)", r.Message())

	var se *json.SyntaxError
	assert.True(t, errors.As(r.Err, &se))
}

func TestTrailingCommaDiagnosticGoJSON(t *testing.T) {
	r := New(GoJSON).Format(`{"a":1,}`)
	require.False(t, r.OK())
	assert.Equal(t, 1, r.Err.Line)
	assert.Equal(t, 8, r.Err.Column)

	r = New(GoJSON).Minify(`[1,2,]`)
	require.False(t, r.OK())
	assert.Equal(t, 6, r.Err.Column)
}

func TestGoJSONSyntaxErrorColumn(t *testing.T) {
	src := []byte(`{"a":1,}`)
	var v any
	err := gojson.Unmarshal(src, &v)
	var se *gojson.SyntaxError
	require.True(t, errors.As(err, &se), "%v", err)

	me := newMalformed(src, err, GoJSON)
	assert.Equal(t, se.Offset+1, me.Offset)
	assert.Equal(t, 1, me.Line)
	assert.Equal(t, 8, me.Column)
}

func TestDuplicateKeysKeptAsWritten(t *testing.T) {
	for name, e := range engines() {
		f := e.Format(`{"a":1,"a":2}`)
		require.True(t, f.OK(), "%s: %s", name, f.Message())
		assert.Equal(t, "{\n  \"a\": 1,\n  \"a\": 2\n}", f.Text, name)

		m := e.Minify(`{ "a" : 1 , "a" : 2 }`)
		require.True(t, m.OK(), "%s: %s", name, m.Message())
		assert.Equal(t, `{"a":1,"a":2}`, m.Text, name)
	}
}

func TestOutOfRangeNumberAccepted(t *testing.T) {
	for name, e := range engines() {
		r := e.Format(`[1e999]`)
		require.True(t, r.OK(), "%s: %s", name, r.Message())
		assert.Equal(t, "[\n  1e999\n]", r.Text, name)
	}
}

func TestDiagnosticPositionMultiline(t *testing.T) {
	r := Format("{\n  \"a\": 1,\n}")
	require.False(t, r.OK())
	assert.Equal(t, 3, r.Err.Line)
	assert.Equal(t, 1, r.Err.Column)
}

func TestRoundTripSemantics(t *testing.T) {
	for name, e := range engines() {
		for _, doc := range validDocs {
			m := e.Minify(doc)
			require.True(t, m.OK(), "%s minify %q: %s", name, doc, m.Message())
			f := e.Format(m.Text)
			require.True(t, f.OK(), "%s format %q: %s", name, m.Text, f.Message())
			if diff := cmp.Diff(decode(t, doc), decode(t, f.Text)); diff != "" {
				t.Errorf("%s round trip of %q changed value (-want +got):\n%s", name, doc, diff)
			}
		}
	}
}

func TestMinifyNeverAddsWhitespace(t *testing.T) {
	for name, e := range engines() {
		for _, doc := range validDocs {
			var stripped bytes.Buffer
			require.NoError(t, json.Compact(&stripped, []byte(doc)))
			m := e.Minify(doc)
			require.True(t, m.OK())
			assert.LessOrEqual(t, len(m.Text), stripped.Len(), "%s %q", name, doc)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	for name, e := range engines() {
		for _, doc := range validDocs {
			once := e.Format(doc)
			require.True(t, once.OK())
			twice := e.Format(once.Text)
			require.True(t, twice.OK())
			assert.Equal(t, once.Text, twice.Text, "%s %q", name, doc)
		}
	}
}

func TestFormatHasNoTrailingWhitespace(t *testing.T) {
	r := Format("  [1]  \n\n")
	require.True(t, r.OK())
	assert.Equal(t, "[\n  1\n]", r.Text)
	assert.False(t, strings.HasSuffix(r.Text, "\n"))
}

func TestCodecByName(t *testing.T) {
	c, err := CodecByName("")
	require.NoError(t, err)
	assert.Equal(t, "std", c.Name())

	c, err = CodecByName(" Go-JSON ")
	require.NoError(t, err)
	assert.Equal(t, "go-json", c.Name())

	_, err = CodecByName("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "std")

	assert.Equal(t, []string{"go-json", "std"}, CodecNames())
}

func TestNewNilCodec(t *testing.T) {
	assert.Equal(t, "std", New(nil).Codec().Name())
}
