package models

import (
	"encoding/json"
	"fmt"
)

// Schema discriminants carried by serialized filters. Untrusted JSON is
// classified structurally (see ClassifyFilter); the discriminant exists
// for consumers that do trust their input.
const (
	SchemaBasicFilter    = "embedkit://schema#basic"
	SchemaAdvancedFilter = "embedkit://schema#advanced"
)

// FilterOperator is the membership operator of a basic filter.
type FilterOperator string

const (
	In    FilterOperator = "In"
	NotIn FilterOperator = "NotIn"
)

// LogicalOperator joins the conditions of an advanced filter.
type LogicalOperator string

const (
	And LogicalOperator = "And"
	Or  LogicalOperator = "Or"
)

// ConditionOperator is the comparison kind of one advanced filter
// condition.
type ConditionOperator string

const (
	None               ConditionOperator = "None"
	LessThan           ConditionOperator = "LessThan"
	LessThanOrEqual    ConditionOperator = "LessThanOrEqual"
	GreaterThan        ConditionOperator = "GreaterThan"
	GreaterThanOrEqual ConditionOperator = "GreaterThanOrEqual"
	Contains           ConditionOperator = "Contains"
	DoesNotContain     ConditionOperator = "DoesNotContain"
	StartsWith         ConditionOperator = "StartsWith"
	DoesNotStartWith   ConditionOperator = "DoesNotStartWith"
	Is                 ConditionOperator = "Is"
	IsNot              ConditionOperator = "IsNot"
	IsBlank            ConditionOperator = "IsBlank"
	IsNotBlank         ConditionOperator = "IsNotBlank"
)

// Condition is one comparison of an advanced filter. Value holds a
// primitive scalar (string, number, or boolean); blank comparisons
// (IsBlank, IsNotBlank) leave it nil.
type Condition struct {
	Value    interface{}       `json:"value"`
	Operator ConditionOperator `json:"operator"`
}

// MarshalJSON omits a nil value entirely, so blank comparisons
// serialize without an operand while false, 0, and "" stay explicit.
func (c Condition) MarshalJSON() ([]byte, error) {
	if c.Value == nil {
		return json.Marshal(struct {
			Operator ConditionOperator `json:"operator"`
		}{c.Operator})
	}
	return json.Marshal(struct {
		Value    interface{}       `json:"value"`
		Operator ConditionOperator `json:"operator"`
	}{c.Value, c.Operator})
}

// Filter is a constructed filter value. Concrete types are BasicFilter
// and AdvancedFilter.
type Filter interface {
	// Schema returns the variant's discriminant URI.
	Schema() string
	// ToJSON serializes the filter to its canonical JSON shape, the one
	// the filter validation schema accepts. Output is stable: calling
	// twice without mutation yields identical bytes.
	ToJSON() ([]byte, error)
}

// ConstructionError reports misuse of a filter constructor: empty
// values, a bad condition count, or a blank logical operator. It is a
// programmer error at the call site, distinct from the validation
// results data-shape problems produce.
type ConstructionError struct {
	Filter string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing %s filter: %s", e.Filter, e.Reason)
}

// BasicFilter expresses "target value is (not) in this set of scalars".
// Fields are exported plain data; nothing mutates them after
// construction, but immutability is not enforced.
type BasicFilter struct {
	SchemaURI string         `json:"$schema"`
	Target    FilterTarget   `json:"target"`
	Operator  FilterOperator `json:"operator"`
	Values    []interface{}  `json:"values"`
}

// NewBasicFilter builds a basic filter from a values slice. The slice
// must be non-empty; duplicates and mixed scalar types are allowed.
func NewBasicFilter(target FilterTarget, operator FilterOperator, values []interface{}) (*BasicFilter, error) {
	if len(values) == 0 {
		return nil, &ConstructionError{Filter: "basic", Reason: "values must contain at least one value"}
	}
	return &BasicFilter{
		SchemaURI: SchemaBasicFilter,
		Target:    target,
		Operator:  operator,
		Values:    values,
	}, nil
}

// NewBasicFilterValues is the variadic form of NewBasicFilter. Both
// forms produce identical serialized output for equal logical content.
func NewBasicFilterValues(target FilterTarget, operator FilterOperator, values ...interface{}) (*BasicFilter, error) {
	return NewBasicFilter(target, operator, values)
}

// Schema implements Filter.
func (f *BasicFilter) Schema() string {
	return f.SchemaURI
}

// ToJSON implements Filter.
func (f *BasicFilter) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

// AdvancedFilter expresses one or two comparison conditions joined by a
// logical operator. With a single condition the logical operator is
// semantically unused but still required to be non-blank.
type AdvancedFilter struct {
	SchemaURI       string          `json:"$schema"`
	Target          FilterTarget    `json:"target"`
	LogicalOperator LogicalOperator `json:"logicalOperator"`
	Conditions      []Condition     `json:"conditions"`
}

// NewAdvancedFilter builds an advanced filter from a conditions slice,
// which must hold exactly one or two conditions.
func NewAdvancedFilter(target FilterTarget, logicalOperator LogicalOperator, conditions []Condition) (*AdvancedFilter, error) {
	if logicalOperator == "" {
		return nil, &ConstructionError{Filter: "advanced", Reason: "logicalOperator must be a non-empty string"}
	}
	if len(conditions) == 0 {
		return nil, &ConstructionError{Filter: "advanced", Reason: "conditions must contain at least one condition"}
	}
	if len(conditions) > 2 {
		return nil, &ConstructionError{Filter: "advanced", Reason: "conditions must not contain more than two conditions"}
	}
	return &AdvancedFilter{
		SchemaURI:       SchemaAdvancedFilter,
		Target:          target,
		LogicalOperator: logicalOperator,
		Conditions:      conditions,
	}, nil
}

// NewAdvancedFilterConditions is the variadic form of NewAdvancedFilter.
func NewAdvancedFilterConditions(target FilterTarget, logicalOperator LogicalOperator, conditions ...Condition) (*AdvancedFilter, error) {
	return NewAdvancedFilter(target, logicalOperator, conditions)
}

// Schema implements Filter.
func (f *AdvancedFilter) Schema() string {
	return f.SchemaURI
}

// ToJSON implements Filter.
func (f *AdvancedFilter) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}
