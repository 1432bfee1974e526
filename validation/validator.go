package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Error is the public validation error shape. Callers must depend on
// Message only; evaluator internals (paths, rule keywords) are stripped
// during normalization.
type Error struct {
	Message string `json:"message"`
}

// BuildError reports a validator construction defect: a schema document
// that does not parse, or a composition rule referencing a name absent
// from the registry. This is a configuration error in the calling
// application, never a validation result.
type BuildError struct {
	Schema string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("building validator for schema %q: %v", e.Schema, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Validator validates values against one compiled root schema. The
// compiled schema and message table are fixed at construction, so a
// Validator is safe for concurrent use.
type Validator struct {
	name     string
	schema   *gojsonschema.Schema
	messages messageTable
}

// NewValidator compiles root into a validation function. References in
// root (and transitively in the auxiliary documents) resolve against
// aux; a reference to a name missing from aux fails with a *BuildError.
func NewValidator(root Document, aux Registry) (*Validator, error) {
	sl := gojsonschema.NewSchemaLoader()
	for _, name := range aux.Names() {
		doc := aux[name]
		if err := sl.AddSchema(doc.URI(), gojsonschema.NewBytesLoader(doc.Raw)); err != nil {
			return nil, &BuildError{Schema: name, Err: err}
		}
	}

	schema, err := sl.Compile(gojsonschema.NewBytesLoader(root.Raw))
	if err != nil {
		return nil, &BuildError{Schema: root.Name, Err: err}
	}

	messages, err := newMessageTable(root, aux)
	if err != nil {
		return nil, err
	}

	return &Validator{name: root.Name, schema: schema, messages: messages}, nil
}

// Name returns the root schema name this validator was built for.
func (v *Validator) Name() string {
	return v.name
}

// Validate checks value against the schema. value may be any
// JSON-marshalable Go value, including the models types and plain
// map[string]interface{} documents.
//
// The returned slice is nil when the value is valid and non-empty
// otherwise, in schema evaluation order. The error is non-nil only
// when value cannot be represented as JSON at all; data-shape problems
// are always reported through the slice.
func (v *Validator) Validate(value interface{}) ([]Error, error) {
	return v.run(gojsonschema.NewGoLoader(value))
}

// ValidateJSON is Validate for raw JSON bytes.
func (v *Validator) ValidateJSON(data []byte) ([]Error, error) {
	return v.run(gojsonschema.NewBytesLoader(data))
}

func (v *Validator) run(doc gojsonschema.JSONLoader) ([]Error, error) {
	result, err := v.schema.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating value against schema %q: %w", v.name, err)
	}
	if result.Valid() {
		return nil, nil
	}

	raw := result.Errors()
	errs := make([]Error, 0, len(raw))
	for _, re := range raw {
		errs = append(errs, v.messages.normalize(re))
	}
	return errs, nil
}
