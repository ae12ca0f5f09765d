package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// goldenUpdateEnv, when set, makes Golden rewrite the expected files
// instead of comparing against them:
//
//	GOLDEN_UPDATE=1 go test ./...
const goldenUpdateEnv = "GOLDEN_UPDATE"

// Golden asserts that got matches testdata/<name>.golden byte for byte.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	if os.Getenv(goldenUpdateEnv) != "" {
		writeGolden(t, path, got)
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (set %s to create it)\nGot:\n%s", path, err, goldenUpdateEnv, got)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%s mismatch\nWant:\n%s\nGot:\n%s", path, want, got)
	}
}

// GoldenString is Golden for string output.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}

func writeGolden(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("update %s: %v", path, err)
	}
}
