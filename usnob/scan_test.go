package usnob

import (
	"path/filepath"
	"testing"
)

func TestScanDirFansOutOverFiles(t *testing.T) {
	dir := t.TempDir()
	writeCat(t, filepath.Join(dir, "a.cat"), recordBytes(1, 1), recordBytes(2, 2))
	writeCat(t, filepath.Join(dir, "b.cat"), recordBytes(3, 3))

	results, err := ScanDir(dir, 2)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	total := 0
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: unexpected error %v", r.Path, r.Err)
		}
		total += len(r.Stars)
	}
	if total != 3 {
		t.Errorf("total stars = %d, want 3", total)
	}
}

func TestScanDirEmpty(t *testing.T) {
	dir := t.TempDir()
	results, err := ScanDir(dir, 4)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}
