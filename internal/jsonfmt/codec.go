package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
)

// Codec is the JSON backend the engine validates and re-serializes with.
// Check must reject anything that is not exactly one strict JSON value.
type Codec interface {
	Name() string
	Check(src []byte) error
	Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error
	Compact(dst *bytes.Buffer, src []byte) error
}

var (
	// Std is backed by encoding/json and is the default.
	Std Codec = stdCodec{}
	// GoJSON is backed by github.com/goccy/go-json.
	GoJSON Codec = goJSONCodec{}
)

var codecs = map[string]Codec{
	Std.Name():    Std,
	GoJSON.Name(): GoJSON,
}

// CodecByName returns the codec registered under name ("std", "go-json").
// An empty name selects Std.
func CodecByName(name string) (Codec, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Std, nil
	}
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (want one of %s)", name, strings.Join(CodecNames(), ", "))
	}
	return c, nil
}

// CodecNames lists the registered codec names in sorted order.
func CodecNames() []string {
	names := make([]string, 0, len(codecs))
	for k := range codecs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ===== encoding/json =====

type stdCodec struct{}

func (stdCodec) Name() string { return "std" }

// Check decodes into a RawMessage, which runs the full validity scan first
// and reports *json.SyntaxError with an offset.
func (stdCodec) Check(src []byte) error {
	var raw json.RawMessage
	return json.Unmarshal(src, &raw)
}

func (stdCodec) Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return json.Indent(dst, src, prefix, indent)
}

func (stdCodec) Compact(dst *bytes.Buffer, src []byte) error {
	return json.Compact(dst, src)
}

func (stdCodec) offset(err error) (int64, bool) {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return 0, false
	}
	return se.Offset, true
}

// ===== goccy/go-json =====

type goJSONCodec struct{}

func (goJSONCodec) Name() string { return "go-json" }

// Check runs the encoding/json scanner. gojson.Valid accepts leading zeros,
// a bare trailing decimal point and raw control characters in strings, and
// its Unmarshal rejects numbers outside float64 range, so neither can decide
// strict validity.
func (goJSONCodec) Check(src []byte) error {
	return Std.Check(src)
}

func (goJSONCodec) Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	return gojson.Indent(dst, src, prefix, indent)
}

func (goJSONCodec) Compact(dst *bytes.Buffer, src []byte) error {
	return gojson.Compact(dst, src)
}

// offset reports in encoding/json terms. go-json's Offset is the index of
// the offending byte, one less than the std "bytes read" count.
func (goJSONCodec) offset(err error) (int64, bool) {
	var se *gojson.SyntaxError
	if errors.As(err, &se) {
		return se.Offset + 1, true
	}
	return Std.(stdCodec).offset(err)
}

// offsetReporter is implemented by codecs whose syntax errors carry a byte offset.
type offsetReporter interface {
	offset(err error) (int64, bool)
}
