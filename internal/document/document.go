// Package document decodes JSON and YAML value documents for the CLI.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads a .json, .yaml, or .yml file into an untyped document
// ready for schema validation and classification.
func Decode(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return DecodeBytes(data, filepath.Ext(path))
}

// DecodeBytes decodes raw document bytes. ext selects the format:
// ".json" for JSON, ".yaml"/".yml" for YAML.
func DecodeBytes(data []byte, ext string) (interface{}, error) {
	switch strings.ToLower(ext) {
	case ".json":
		var doc interface{}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return doc, nil
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		return normalize(doc), nil
	default:
		return nil, fmt.Errorf("unsupported document type %q (want .json, .yaml, or .yml)", ext)
	}
}

// normalize rewrites yaml.v3 output into the shapes encoding/json
// produces, so classification and validation behave identically for
// both formats. yaml.v3 already uses map[string]interface{} for
// string-keyed mappings; non-string keys are stringified.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, sub := range val {
			val[k] = normalize(sub)
		}
		return val
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, sub := range val {
			out[fmt.Sprintf("%v", k)] = normalize(sub)
		}
		return out
	case []interface{}:
		for i, sub := range val {
			val[i] = normalize(sub)
		}
		return val
	default:
		return v
	}
}

// AsObject asserts that a decoded document is a JSON object, as the
// classifiers require.
func AsObject(doc interface{}) (map[string]interface{}, error) {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("document is not an object")
	}
	return obj, nil
}
