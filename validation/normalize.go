package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// messageTable holds the override messages declared in schema documents,
// keyed by dotted property path (array indices stripped), then by rule
// kind: "required", "type", or "invalid". The empty path addresses the
// document root, used by composition schemas like filter and target.
type messageTable map[string]map[string]string

// newMessageTable extracts override messages from the root document and
// every auxiliary document. The root document is walked first and wins
// on path collisions; auxiliary documents follow in sorted name order.
func newMessageTable(root Document, aux Registry) (messageTable, error) {
	table := messageTable{}

	docs := []Document{root}
	for _, name := range aux.Names() {
		docs = append(docs, aux[name])
	}

	for _, doc := range docs {
		var node map[string]interface{}
		if err := json.Unmarshal(doc.Raw, &node); err != nil {
			return nil, &BuildError{Schema: doc.Name, Err: fmt.Errorf("parsing schema document: %w", err)}
		}
		collectMessages(node, "", table)
	}
	return table, nil
}

// collectMessages walks one schema document and records every
// "messages" object under the property path it applies to. Schema
// evaluators ignore the keyword; only the normalizer reads it.
func collectMessages(node map[string]interface{}, path string, table messageTable) {
	if msgs, ok := node["messages"].(map[string]interface{}); ok {
		if _, taken := table[path]; !taken {
			entry := make(map[string]string, len(msgs))
			for kind, m := range msgs {
				if s, ok := m.(string); ok {
					entry[kind] = s
				}
			}
			table[path] = entry
		}
	}

	if props, ok := node["properties"].(map[string]interface{}); ok {
		for name, sub := range props {
			if subNode, ok := sub.(map[string]interface{}); ok {
				collectMessages(subNode, joinPath(path, name), table)
			}
		}
	}

	// Array items contribute messages under the array's own path, so a
	// failure at conditions.0.operator resolves via conditions.operator.
	if items, ok := node["items"].(map[string]interface{}); ok {
		collectMessages(items, path, table)
	}

	for _, keyword := range []string{"anyOf", "oneOf", "allOf"} {
		subs, ok := node[keyword].([]interface{})
		if !ok {
			continue
		}
		for _, sub := range subs {
			if subNode, ok := sub.(map[string]interface{}); ok {
				collectMessages(subNode, path, table)
			}
		}
	}
}

// normalize converts one raw evaluator failure into the public error
// shape: the schema's override message verbatim when one is declared
// for the failing property and rule kind, otherwise a synthesized
// message naming the path and violated rule.
func (t messageTable) normalize(raw gojsonschema.ResultError) Error {
	kind := kindKey(raw.Type())
	if msg, ok := t.lookup(fieldPath(raw), kind); ok {
		return Error{Message: msg}
	}
	return Error{Message: fmt.Sprintf("%s is invalid. Not meeting %s constraint", displayPath(raw), raw.Type())}
}

// lookup resolves a failure path against the table, trying the full
// path first and then progressively dropping leading segments so that
// failures inside referenced documents (e.g. settings.filterPaneEnabled
// reported from the load schema) still find the referenced document's
// own overrides.
func (t messageTable) lookup(path, kind string) (string, bool) {
	for {
		if entry, ok := t[path]; ok {
			if msg, ok := entry[kind]; ok {
				return msg, true
			}
		}
		if path == "" {
			return "", false
		}
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		} else {
			path = ""
		}
	}
}

// kindKey maps a gojsonschema error type onto the override message keys
// the schema documents declare. Everything that is neither a missing
// required property nor a type mismatch (enum, minItems, anyOf, ...)
// falls under "invalid".
func kindKey(errType string) string {
	switch errType {
	case "required":
		return "required"
	case "invalid_type":
		return "type"
	default:
		return "invalid"
	}
}

// fieldPath returns the lookup path for a failure: the reported field
// with array indices stripped, plus the missing property name for
// required failures (which gojsonschema reports on the parent).
func fieldPath(raw gojsonschema.ResultError) string {
	path := normalizeField(raw.Field())
	if raw.Type() == "required" {
		if prop, ok := raw.Details()["property"].(string); ok {
			path = joinPath(path, prop)
		}
	}
	return path
}

// displayPath is the human-readable location used in synthesized
// messages. Array indices are kept here.
func displayPath(raw gojsonschema.ResultError) string {
	field := raw.Field()
	if raw.Type() == "required" {
		if prop, ok := raw.Details()["property"].(string); ok {
			if field == rootField {
				return prop
			}
			return field + "." + prop
		}
	}
	return field
}

const rootField = "(root)"

// normalizeField converts gojsonschema's field notation into a table
// path: "(root)" becomes the empty path and numeric segments (array
// indices) are dropped.
func normalizeField(field string) string {
	if field == rootField {
		return ""
	}
	segments := strings.Split(field, ".")
	kept := segments[:0]
	for _, seg := range segments {
		if isIndex(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, ".")
}

func isIndex(segment string) bool {
	if segment == "" {
		return false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
