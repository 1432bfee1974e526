package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedkit/embedcheck/internal/testutil"
)

func TestDecode_FormatsAreEquivalent(t *testing.T) {
	dir := t.TempDir()
	jsonPath := testutil.WriteFixture(t, dir, "filter.json", `{
  "operator": "In",
  "values": ["a", 1, true],
  "target": {"table": "t", "column": "c"}
}`)
	yamlPath := testutil.WriteFixture(t, dir, "filter.yaml", `
operator: In
values:
  - a
  - 1
  - true
target:
  table: t
  column: c
`)

	fromJSON, err := Decode(jsonPath)
	require.NoError(t, err)
	fromYAML, err := Decode(yamlPath)
	require.NoError(t, err)

	jsonObj, err := AsObject(fromJSON)
	require.NoError(t, err)
	yamlObj, err := AsObject(fromYAML)
	require.NoError(t, err)

	assert.Equal(t, jsonObj["operator"], yamlObj["operator"])
	assert.Equal(t, jsonObj["target"], yamlObj["target"])
	assert.IsType(t, []interface{}{}, yamlObj["values"])
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Decode(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := testutil.WriteFixture(t, dir, "doc.toml", `a = 1`)
		_, err := Decode(path)
		assert.ErrorContains(t, err, "unsupported document type")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := testutil.WriteFixture(t, dir, "broken.json", `{`)
		_, err := Decode(path)
		assert.ErrorContains(t, err, "parsing JSON")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := testutil.WriteFixture(t, dir, "broken.yaml", "a: [unclosed")
		_, err := Decode(path)
		assert.ErrorContains(t, err, "parsing YAML")
	})
}

func TestAsObject(t *testing.T) {
	obj, err := AsObject(map[string]interface{}{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, obj["a"])

	_, err = AsObject([]interface{}{"a"})
	assert.ErrorContains(t, err, "not an object")
}

func TestNormalize_NonStringKeys(t *testing.T) {
	in := map[interface{}]interface{}{
		1: "one",
		"nested": map[interface{}]interface{}{
			true: "yes",
		},
	}

	out := normalize(in)
	obj, ok := out.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "one", obj["1"])

	nested, ok := obj["nested"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "yes", nested["true"])
}
