package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetPredicates(t *testing.T) {
	column := map[string]interface{}{"table": "t", "column": "c"}
	hierarchy := map[string]interface{}{"table": "t", "hierarchy": "h", "hierarchyLevel": "l"}
	measure := map[string]interface{}{"table": "t", "measure": "m"}

	assert.True(t, IsColumnTarget(column))
	assert.False(t, IsColumnTarget(measure))
	assert.False(t, IsColumnTarget(hierarchy))

	assert.True(t, IsHierarchyTarget(hierarchy))
	assert.False(t, IsHierarchyTarget(column))

	assert.True(t, IsMeasureTarget(measure))
	assert.False(t, IsMeasureTarget(column))

	// The predicates are independent: malformed input can satisfy several.
	everything := map[string]interface{}{
		"table": "t", "column": "c", "measure": "m",
		"hierarchy": "h", "hierarchyLevel": "l",
	}
	assert.True(t, IsColumnTarget(everything))
	assert.True(t, IsMeasureTarget(everything))
	assert.True(t, IsHierarchyTarget(everything))
}

func TestClassifyFilterTarget(t *testing.T) {
	tests := map[string]struct {
		value map[string]interface{}
		want  FilterTargetKind
	}{
		"column":    {value: map[string]interface{}{"table": "t", "column": "c"}, want: FilterTargetColumn},
		"hierarchy": {value: map[string]interface{}{"table": "t", "hierarchy": "h", "hierarchyLevel": "l"}, want: FilterTargetHierarchy},
		"measure":   {value: map[string]interface{}{"table": "t", "measure": "m"}, want: FilterTargetMeasure},
		"table only": {value: map[string]interface{}{"table": "t"}, want: FilterTargetUnknown},
		"empty":      {value: map[string]interface{}{}, want: FilterTargetUnknown},
		"malformed satisfying all shapes resolves to measure": {
			value: map[string]interface{}{
				"table": "t", "column": "c", "measure": "m",
				"hierarchy": "h", "hierarchyLevel": "l",
			},
			want: FilterTargetMeasure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyFilterTarget(tt.value))
		})
	}
}

func TestFilterTargetKindString(t *testing.T) {
	assert.Equal(t, "measure", FilterTargetMeasure.String())
	assert.Equal(t, "column", FilterTargetColumn.String())
	assert.Equal(t, "hierarchy", FilterTargetHierarchy.String())
	assert.Equal(t, "unknown", FilterTargetUnknown.String())
}

func TestEmbedTargets(t *testing.T) {
	page := NewPageTarget("page1")
	assert.Equal(t, "page", page.Type)
	assert.Equal(t, "page1", page.Name)

	visual := NewVisualTarget("v1")
	assert.Equal(t, "visual", visual.Type)
	assert.Equal(t, "v1", visual.ID)
}
