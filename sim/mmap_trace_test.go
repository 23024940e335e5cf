package sim

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadTraceMmap tests that the mapped loader produces the same
// operations as the buffered one
func TestLoadTraceMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapped.trace")
	if err := os.WriteFile(path, []byte(sampleTrace), 0644); err != nil {
		t.Fatal(err)
	}

	mapped, err := LoadTraceMmap(path)
	if err != nil {
		t.Fatalf("LoadTraceMmap: %v", err)
	}
	buffered, err := LoadTrace(path)
	if err != nil {
		t.Fatalf("LoadTrace: %v", err)
	}
	compareTraces(t, mapped, buffered)
}

// TestLoadTraceMmapEmptyFile tests that a zero-length trace maps to an
// empty operation sequence without error
func TestLoadTraceMmapEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.trace")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	trace, err := LoadTraceMmap(path)
	if err != nil {
		t.Fatalf("LoadTraceMmap: %v", err)
	}
	if len(trace) != 0 {
		t.Errorf("expected empty trace, got %d operations", len(trace))
	}
}

// TestLoadTraceMmapMissingFile tests the fatal resource error path
func TestLoadTraceMmapMissingFile(t *testing.T) {
	_, err := LoadTraceMmap(filepath.Join(t.TempDir(), "nope.trace"))
	if !IsErrorCode(err, ErrCodeTraceUnreadable) {
		t.Errorf("expected unreadable trace error, got %v", err)
	}
}
