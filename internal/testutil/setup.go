package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes data to a file named name inside a per-test temporary
// directory and returns its path.
//
// Example:
//
//	path := testutil.WriteFixture(t, "map.flexb", testutil.MapBytes)
//	doc, err := flexkit.Open(path, flexkit.OpenOptions{})
func WriteFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
