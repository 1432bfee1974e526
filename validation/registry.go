// Package validation checks embed-client values (load configurations,
// filters, targets, pages) against declarative schema documents before
// they cross the client/API boundary. Schemas reference each other by
// name through a registry; raw evaluator failures are normalized into a
// minimal {message} error shape.
package validation

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// uriPrefix is the reference namespace schema documents use to point at
// each other. The scheme is deliberately not http: an unresolved
// reference must fail compilation instead of triggering a fetch.
const uriPrefix = "embedkit://schemas/"

// Document is one named schema document. Raw holds the JSON Schema
// bytes; the validator also reads the per-property "messages" objects
// out of it when normalizing errors.
type Document struct {
	Name string
	Raw  []byte
}

// URI returns the reference string other documents use to point at
// this document.
func (d Document) URI() string {
	return uriPrefix + d.Name
}

// Registry maps schema names to documents. It is storage only: the
// validator treats a registry as read-only once it has been handed to
// NewValidator, so a registry shared between validators must not be
// mutated afterwards.
type Registry map[string]Document

// Names returns the registered schema names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry holding the embedded schema
// documents: basicFilter, advancedFilter, filter, filtersContainer,
// target, pageTarget, visualTarget, load, settings, and page.
func DefaultRegistry() Registry {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		panic(fmt.Sprintf("validation: reading embedded schemas: %v", err))
	}

	reg := make(Registry, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		raw, err := schemaFS.ReadFile(path.Join("schemas", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("validation: reading embedded schema %s: %v", entry.Name(), err))
		}
		reg[name] = Document{Name: name, Raw: raw}
	}
	return reg
}
