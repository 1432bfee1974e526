package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedkit/embedcheck/models"
	"github.com/embedkit/embedcheck/validation"
)

// Constructed filters must serialize to exactly what the filter schema
// accepts.

func TestBasicFilterRoundTrip(t *testing.T) {
	tests := map[string]struct {
		target   models.FilterTarget
		operator models.FilterOperator
		values   []interface{}
	}{
		"column target strings": {
			target:   models.ColumnTarget{Table: "customers", Column: "city"},
			operator: models.In,
			values:   []interface{}{"Madrid", "Lisbon"},
		},
		"measure target mixed scalars": {
			target:   models.MeasureTarget{Table: "sales", Measure: "total"},
			operator: models.NotIn,
			values:   []interface{}{1, 2.5, true, "x"},
		},
		"hierarchy target single value": {
			target: models.HierarchyTarget{
				Table: "dates", Hierarchy: "calendar", HierarchyLevel: "year",
			},
			operator: models.In,
			values:   []interface{}{2024},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			filter, err := models.NewBasicFilter(tt.target, tt.operator, tt.values)
			require.NoError(t, err)

			data, err := filter.ToJSON()
			require.NoError(t, err)

			errs, err := validation.ValidateFilter(filter)
			require.NoError(t, err)
			assert.Nil(t, errs, "serialized basic filter must validate: %s", data)
		})
	}
}

func TestAdvancedFilterRoundTrip(t *testing.T) {
	target := models.ColumnTarget{Table: "products", Column: "price"}

	tests := map[string]struct {
		logical    models.LogicalOperator
		conditions []models.Condition
	}{
		"single condition": {
			logical: models.And,
			conditions: []models.Condition{
				{Value: 100, Operator: models.LessThan},
			},
		},
		"two conditions": {
			logical: models.Or,
			conditions: []models.Condition{
				{Value: 10, Operator: models.GreaterThanOrEqual},
				{Value: "obsolete", Operator: models.DoesNotContain},
			},
		},
		"blank comparison": {
			logical: models.And,
			conditions: []models.Condition{
				{Operator: models.IsNotBlank},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			filter, err := models.NewAdvancedFilter(target, tt.logical, tt.conditions)
			require.NoError(t, err)

			errs, err := validation.ValidateFilter(filter)
			require.NoError(t, err)
			assert.Nil(t, errs)
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	filter, err := models.NewBasicFilterValues(
		models.ColumnTarget{Table: "t", Column: "c"}, models.In, "a")
	require.NoError(t, err)
	raw, err := filter.ToJSON()
	require.NoError(t, err)

	enabled := true
	load := models.Load{
		AccessToken: "token",
		ID:          "report-1",
		Settings:    &models.Settings{FilterPaneEnabled: &enabled},
		PageName:    "ReportSection1",
		Filter:      raw,
	}

	errs, err := validation.ValidateLoad(load)
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestFiltersContainerRoundTrip(t *testing.T) {
	filter, err := models.NewAdvancedFilterConditions(
		models.ColumnTarget{Table: "t", Column: "c"}, models.And,
		models.Condition{Value: "v", Operator: models.StartsWith})
	require.NoError(t, err)

	container := map[string]interface{}{
		"target":  models.NewVisualTarget("v1"),
		"filters": []interface{}{filter},
	}

	errs, err := validation.ValidateFiltersContainer(container)
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestTargetRoundTrip(t *testing.T) {
	errs, err := validation.ValidateTarget(models.NewPageTarget("page1"))
	require.NoError(t, err)
	assert.Nil(t, errs)

	errs, err = validation.ValidateTarget(models.NewVisualTarget("v1"))
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestClassifySerializedFilters(t *testing.T) {
	basic, err := models.NewBasicFilterValues(
		models.ColumnTarget{Table: "t", Column: "c"}, models.In, "a")
	require.NoError(t, err)
	advanced, err := models.NewAdvancedFilterConditions(
		models.ColumnTarget{Table: "t", Column: "c"}, models.Or,
		models.Condition{Value: 1, Operator: models.Is})
	require.NoError(t, err)

	assert.Equal(t, models.FilterBasic, models.ClassifyFilter(decodeFilter(t, basic)))
	assert.Equal(t, models.FilterAdvanced, models.ClassifyFilter(decodeFilter(t, advanced)))
}

func decodeFilter(t *testing.T, f models.Filter) map[string]interface{} {
	t.Helper()
	data, err := f.ToJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}
