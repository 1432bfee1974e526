// Package models defines the filter, target, and load-configuration
// value types an embedding application exchanges with an embedded
// report, plus structural classifiers for the untyped JSON forms of
// those values. Validation of the serialized shapes lives in the
// validation package.
package models

// FilterTarget is the data location a filter applies to: a column, a
// hierarchy level, or a measure of a table.
type FilterTarget interface {
	isFilterTarget()
}

// ColumnTarget addresses a single column of a table.
type ColumnTarget struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// HierarchyTarget addresses one level of a table hierarchy.
type HierarchyTarget struct {
	Table          string `json:"table"`
	Hierarchy      string `json:"hierarchy"`
	HierarchyLevel string `json:"hierarchyLevel"`
}

// MeasureTarget addresses a measure of a table.
type MeasureTarget struct {
	Table   string `json:"table"`
	Measure string `json:"measure"`
}

func (ColumnTarget) isFilterTarget()    {}
func (HierarchyTarget) isFilterTarget() {}
func (MeasureTarget) isFilterTarget()   {}

// FilterTargetKind classifies untyped filter-target JSON.
type FilterTargetKind int

const (
	FilterTargetUnknown FilterTargetKind = iota
	FilterTargetMeasure
	FilterTargetColumn
	FilterTargetHierarchy
)

// String returns the kind name for display.
func (k FilterTargetKind) String() string {
	switch k {
	case FilterTargetMeasure:
		return "measure"
	case FilterTargetColumn:
		return "column"
	case FilterTargetHierarchy:
		return "hierarchy"
	default:
		return "unknown"
	}
}

// IsMeasureTarget reports whether untyped JSON has the measure target
// shape: table and measure both present.
func IsMeasureTarget(value map[string]interface{}) bool {
	return hasField(value, "table") && hasField(value, "measure")
}

// IsColumnTarget reports whether untyped JSON has the column target
// shape: table and column both present.
func IsColumnTarget(value map[string]interface{}) bool {
	return hasField(value, "table") && hasField(value, "column")
}

// IsHierarchyTarget reports whether untyped JSON has the hierarchy
// target shape: table, hierarchy, and hierarchyLevel all present.
func IsHierarchyTarget(value map[string]interface{}) bool {
	return hasField(value, "table") && hasField(value, "hierarchy") && hasField(value, "hierarchyLevel")
}

// ClassifyFilterTarget classifies untyped filter-target JSON. The
// predicates are independent and can all hold on malformed input;
// classification checks measure, then column, then hierarchy, first
// match wins.
func ClassifyFilterTarget(value map[string]interface{}) FilterTargetKind {
	switch {
	case IsMeasureTarget(value):
		return FilterTargetMeasure
	case IsColumnTarget(value):
		return FilterTargetColumn
	case IsHierarchyTarget(value):
		return FilterTargetHierarchy
	default:
		return FilterTargetUnknown
	}
}

// PageTarget addresses a report page.
type PageTarget struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// NewPageTarget returns a page target for the named page.
func NewPageTarget(name string) PageTarget {
	return PageTarget{Type: "page", Name: name}
}

// VisualTarget addresses a single visual on a page.
type VisualTarget struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// NewVisualTarget returns a visual target for the given visual id.
func NewVisualTarget(id string) VisualTarget {
	return VisualTarget{Type: "visual", ID: id}
}

func hasField(value map[string]interface{}, name string) bool {
	_, ok := value[name]
	return ok
}
