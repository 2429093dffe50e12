package main_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ============================================================================
// E2E: non-interactive calculation paths
// ============================================================================

func TestPlainOutput_DefaultsWhenNotATerminal(t *testing.T) {
	out, stderr, err := runTa(t)
	if err != nil {
		t.Fatalf("ta failed: %v\nstderr=%s", err, stderr)
	}
	if got := strings.TrimSpace(out); got != "20.48 px/cm (High)" {
		t.Fatalf("unexpected result line %q", got)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr; got:\n%s", stderr)
	}
}

func TestPlainOutput_SizeMode(t *testing.T) {
	out, stderr, err := runTa(t, "--mode", "size", "--object-size", "100", "--target-density", "10.24")
	if err != nil {
		t.Fatalf("ta failed: %v\nstderr=%s", err, stderr)
	}
	if got := strings.TrimSpace(out); got != "1024 px (closest power of 2: 1024)" {
		t.Fatalf("unexpected result line %q", got)
	}
}

func TestPlainOutput_PresetFuzzyMatch(t *testing.T) {
	out, stderr, err := runTa(t, "--mode", "size", "--preset", "backgr")
	if err != nil {
		t.Fatalf("ta failed: %v\nstderr=%s", err, stderr)
	}
	if got := strings.TrimSpace(out); got != "256 px (closest power of 2: 256)" {
		t.Fatalf("unexpected result line %q", got)
	}
}

func TestRobotCalc_JSON(t *testing.T) {
	out, stderr, err := runTa(t, "--robot-calc", "--object-size", "200", "--texture-size", "4096")
	if err != nil {
		t.Fatalf("--robot-calc failed: %v\nstderr=%s", err, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr; got:\n%s", stderr)
	}

	var payload struct {
		Mode    string `json:"mode"`
		Result  string `json:"result"`
		Outputs struct {
			Density float64 `json:"density"`
			Tier    string  `json:"tier"`
		} `json:"outputs"`
		Grid struct {
			Cells int `json:"cells"`
		} `json:"grid"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("json decode: %v\nout=%s", err, out)
	}
	if payload.Mode != "density" {
		t.Errorf("mode = %q, want density", payload.Mode)
	}
	if payload.Outputs.Density != 20.48 {
		t.Errorf("density = %v, want 20.48", payload.Outputs.Density)
	}
	if payload.Outputs.Tier != "High" {
		t.Errorf("tier = %q, want High", payload.Outputs.Tier)
	}
	if payload.Result != "20.48 px/cm (High)" {
		t.Errorf("result = %q", payload.Result)
	}
	if payload.Grid.Cells != 2 {
		t.Errorf("cells = %d, want 2 for a 204.8px cell in a 400px preview", payload.Grid.Cells)
	}
}

func TestRobotCalc_NonFiniteDensityEncodesAsString(t *testing.T) {
	out, stderr, err := runTa(t, "--robot-calc", "--object-size", "0")
	if err != nil {
		t.Fatalf("--robot-calc failed: %v\nstderr=%s", err, stderr)
	}
	var payload struct {
		Outputs struct {
			Density any `json:"density"`
		} `json:"outputs"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("json decode: %v\nout=%s", err, out)
	}
	if payload.Outputs.Density != "+Inf" {
		t.Fatalf("density = %v, want \"+Inf\"", payload.Outputs.Density)
	}
}

func TestExport_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"grid.png", "grid.svg", "report.md", "report.yaml"} {
		path := filepath.Join(dir, "out", name)
		out, stderr, err := runTa(t, "--export", path)
		if err != nil {
			t.Fatalf("--export %s failed: %v\nstderr=%s", name, err, stderr)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Errorf("expected confirmation for %s, got %q", name, out)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestConfig_FileSuppliesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "mode: size\nobject_size_cm: 50\ntarget_density: 20.48\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// A later --config overrides the isolated default runTa passes.
	out, stderr, err := runTa(t, "--config", cfgPath)
	if err != nil {
		t.Fatalf("ta failed: %v\nstderr=%s", err, stderr)
	}
	if got := strings.TrimSpace(out); got != "1024 px (closest power of 2: 1024)" {
		t.Fatalf("unexpected result line %q", got)
	}
}
