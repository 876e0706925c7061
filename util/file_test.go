package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteToFile(t *testing.T) {
	savePath := filepath.Join(t.TempDir(), "results", "summary.txt")
	if err := WriteToFile(savePath, "a", "b"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	bs, err := os.ReadFile(savePath)
	if err != nil {
		t.Fatalf("could not read file: %s", err)
	}
	if string(bs) != "a\nb\n" {
		t.Errorf("unexpected content: %q", string(bs))
	}
}
