package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetFingerprint(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	if err := os.WriteFile(a, []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}

	fp1 := FileSetFingerprint([]string{a, b})
	fp2 := FileSetFingerprint([]string{b, a})
	if fp1 != fp2 {
		t.Error("fingerprint should not depend on input order")
	}

	if err := os.WriteFile(a, []byte("one plus more"), 0644); err != nil {
		t.Fatal(err)
	}
	if FileSetFingerprint([]string{a, b}) == fp1 {
		t.Error("fingerprint should change when a file changes")
	}

	withMissing := FileSetFingerprint([]string{a, b, filepath.Join(dir, "gone.csv")})
	if withMissing == FileSetFingerprint([]string{a, b}) {
		t.Error("fingerprint should change when the file set changes")
	}
}
