package models

// FilterKind classifies untyped filter JSON.
type FilterKind int

const (
	FilterUnknown FilterKind = iota
	FilterBasic
	FilterAdvanced
)

// String returns the kind name for display.
func (k FilterKind) String() string {
	switch k {
	case FilterBasic:
		return "basic"
	case FilterAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// ClassifyFilter classifies already-deserialized filter JSON by field
// presence alone; the $schema discriminant is not trusted. Basic is
// checked before Advanced, so a malformed value carrying both shapes
// classifies as basic.
func ClassifyFilter(value map[string]interface{}) FilterKind {
	if isString(value["operator"]) && isArray(value["values"]) {
		return FilterBasic
	}
	if isString(value["logicalOperator"]) && isArray(value["conditions"]) {
		return FilterAdvanced
	}
	return FilterUnknown
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// isArray matches the slice shape encoding/json produces for untyped
// documents.
func isArray(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}
