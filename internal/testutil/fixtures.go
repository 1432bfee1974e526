// Package testutil provides fixture helpers for embedcheck tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Canned documents used across CLI tests.
const (
	ValidLoadJSON   = `{"accessToken": "token", "id": "report-1"}`
	InvalidLoadJSON = `{"pageName": "page1"}`

	ValidBasicFilterJSON = `{
  "$schema": "embedkit://schema#basic",
  "target": {"table": "customers", "column": "city"},
  "operator": "In",
  "values": ["Madrid", "Lisbon"]
}`
)

// WriteFixture writes a document fixture into dir and returns its path.
func WriteFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
