package placeholder

import (
	"strings"

	"devtoys/internal/catalog"
)

// Render is the page for a tool that is listed but has no panel yet.
func Render(d catalog.Descriptor) string {
	title := strings.ReplaceAll(string(d.ID), "-", " ")
	return title + "\n\n" + d.Description + "\nTool component will be implemented here.\n"
}
