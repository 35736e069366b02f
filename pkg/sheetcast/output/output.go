// Package output serializes the canonical table model into its
// supported text formats.
package output

import (
	"sort"

	"github.com/sheetcast/sheetcast/pkg/sheetcast/models"
)

// Format couples a serializer with the content type of its payload.
type Format struct {
	// Name is the registry key clients request the format by.
	Name string
	// ContentType labels the payload for HTTP responses.
	ContentType string
	// Serialize renders a table. It never mutates its argument and
	// fails only on internal defects; every valid table serializes.
	Serialize func(*models.Table) (string, error)
}

// formats is the closed registry of supported output formats.
var formats = map[string]Format{
	"json": {Name: "json", ContentType: "application/json", Serialize: ToJSON},
	"yaml": {Name: "yaml", ContentType: "application/x-yaml", Serialize: ToYAML},
	"xml":  {Name: "xml", ContentType: "application/xml", Serialize: ToXML},
	"sql":  {Name: "sql", ContentType: "text/plain", Serialize: ToSQL},
}

// Lookup returns the format registered under name. Matching is exact
// and case-sensitive.
func Lookup(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
