// Package catalog is the fixed list of tools the shell offers.
package catalog

import "strings"

// ID identifies a tool.
type ID string

const (
	Calculator    ID = "calculator"
	ColorPicker   ID = "color-picker"
	Encoder       ID = "encoder"
	JSONFormatter ID = "json-formatter"
)

// FormatterRoot is the route prefix shared by formatter tools.
const FormatterRoot = "/formatter"

// Descriptor describes one tool for menus and index pages.
type Descriptor struct {
	ID          ID
	Route       string
	Title       string
	Description string
}

var tools = []Descriptor{
	{ID: Calculator, Route: "/calculator", Title: "Calculator", Description: "Perform calculations"},
	{ID: ColorPicker, Route: "/color-picker", Title: "Color Picker", Description: "Pick and convert colors"},
	{ID: Encoder, Route: "/encoder", Title: "Encoder / Decoder", Description: "Encode and decode data"},
	{ID: JSONFormatter, Route: FormatterRoot + "/json", Title: "JSON Formatter", Description: "Format and minify JSON"},
}

// All returns the tools in menu order. The slice is a copy.
func All() []Descriptor {
	return append([]Descriptor(nil), tools...)
}

func Lookup(id ID) (Descriptor, bool) {
	for _, t := range tools {
		if t.ID == id {
			return t, true
		}
	}
	return Descriptor{}, false
}

func ByRoute(route string) (Descriptor, bool) {
	route = "/" + strings.Trim(strings.TrimSpace(route), "/")
	for _, t := range tools {
		if t.Route == route {
			return t, true
		}
	}
	return Descriptor{}, false
}

// Formatters returns the tools routed under FormatterRoot.
func Formatters() []Descriptor {
	var out []Descriptor
	for _, t := range tools {
		if strings.HasPrefix(t.Route, FormatterRoot+"/") {
			out = append(out, t)
		}
	}
	return out
}

// SubRoute is the route relative to FormatterRoot ("/json"), or "/" for the root itself.
func (d Descriptor) SubRoute() string {
	if s := strings.TrimPrefix(d.Route, FormatterRoot); s != "" {
		return s
	}
	return "/"
}

// Implemented reports whether the tool has a working panel.
// Only the JSON formatter does; the others open a placeholder.
func Implemented(id ID) bool {
	return id == JSONFormatter
}
