package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/texel-architect/texel_architect/pkg/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != model.DensityMode || cfg.ObjectSizeCm != 100 || cfg.TextureSizePx != 2048 || cfg.TargetDensity != 10.24 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.PreviewPx != 400 || cfg.ExportDir != "." {
		t.Errorf("unexpected preview/export defaults: %+v", cfg)
	}
	if len(cfg.AllPresets()) != 4 {
		t.Errorf("expected only built-in presets, got %d", len(cfg.AllPresets()))
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `mode: size
object_size_cm: 250
target_density: 5.12
presets:
  - name: Mobile
    density: 1.28
    description: Low-end mobile props
  - name: ""
    density: 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != model.SizeMode {
		t.Errorf("mode = %q, want size", cfg.Mode)
	}
	in := cfg.Inputs()
	if in.ObjectSizeCm != 250 || in.TargetDensity != 5.12 || in.TextureSizePx != 2048 {
		t.Errorf("unexpected inputs: %+v", in)
	}
	if len(cfg.Presets) != 1 || cfg.Presets[0].Name != "Mobile" {
		t.Fatalf("expected unnamed preset to be dropped, got %+v", cfg.Presets)
	}
	all := cfg.AllPresets()
	if len(all) != 5 || all[4].Density != 1.28 {
		t.Errorf("custom preset should follow built-ins: %+v", all)
	}
}

func TestParse_Normalizes(t *testing.T) {
	cfg, err := Parse([]byte("mode: sideways\ntexture_size_px: 3000\npreview_px: -1\nexport_dir: \"\"\nobject_size_cm: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Mode != model.DensityMode {
		t.Errorf("mode = %q", cfg.Mode)
	}
	if cfg.TextureSizePx != 2048 {
		t.Errorf("texture size = %v, want 2048", cfg.TextureSizePx)
	}
	if cfg.PreviewPx != 400 {
		t.Errorf("preview = %v", cfg.PreviewPx)
	}
	if cfg.ExportDir != "." {
		t.Errorf("export dir = %q", cfg.ExportDir)
	}
	if cfg.ObjectSizeCm != 0 {
		t.Errorf("object size must be kept as given, got %v", cfg.ObjectSizeCm)
	}
}

func TestParse_CapsPreviewSize(t *testing.T) {
	cfg, err := Parse([]byte("preview_px: 10000000\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.PreviewPx != 4096 {
		t.Errorf("preview = %v, want 4096", cfg.PreviewPx)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	cfg, err := Parse([]byte("mode: [unterminated"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if cfg == nil || cfg.ObjectSizeCm != 100 {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}

func TestCheckResolution(t *testing.T) {
	if err := CheckResolution(4096); err != nil {
		t.Errorf("4096 should be accepted: %v", err)
	}
	err := CheckResolution(1000)
	if !errors.Is(err, ErrUnknownResolution) {
		t.Errorf("expected ErrUnknownResolution, got %v", err)
	}
}
