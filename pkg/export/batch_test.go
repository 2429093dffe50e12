package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := ExportAll(context.Background(), dir, densitySnapshot(), 200)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	want := []string{GridPNGName, GridSVGName, ReportFileName}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i, p := range paths {
		if filepath.Base(p) != want[i] {
			t.Errorf("path %d = %s, want %s", i, p, want[i])
		}
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", p, err)
		}
	}
}

func TestExportAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExportAll(ctx, t.TempDir(), densitySnapshot(), 200); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
