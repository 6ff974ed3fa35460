// Package testutil holds helpers shared by package tests.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// updateGolden rewrites golden files instead of comparing.
// Use: go test ./... -run TestGolden -update
var updateGolden = flag.Bool("update", false, "update golden files")

// GoldenPath returns testdata/<name>.golden relative to the test's package.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// CompareGolden compares got against testdata/<name>.golden, failing with a diff on mismatch.
// Line endings are normalized to \n first. With -update the file is rewritten.
func CompareGolden(t *testing.T, name string, got string) {
	t.Helper()

	got = normalizeNewlines(got)
	path := GoldenPath(name)

	if *updateGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Updated golden: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				path, got, t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	want := normalizeNewlines(string(expected))
	if want != got {
		diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
		t.Fatalf("Golden mismatch for %s (-want +got):\n%s\n\nRun with -update to refresh:\n  go test ./... -run %s -update",
			name, diff, t.Name())
	}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
