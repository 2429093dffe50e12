package density

import "testing"

func TestPresets_Builtins(t *testing.T) {
	ps := Presets()
	if len(ps) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(ps))
	}
	want := []float64{20.48, 10.24, 5.12, 2.56}
	for i, p := range ps {
		if p.Density != want[i] {
			t.Errorf("preset %d (%s): density %v, want %v", i, p.Name, p.Density, want[i])
		}
	}

	// Mutating the copy must not leak into the built-ins.
	ps[0].Density = 1
	if Presets()[0].Density != 20.48 {
		t.Errorf("Presets() returned shared storage")
	}
}

func TestFindPresets(t *testing.T) {
	all := Presets()

	if got := FindPresets("", all); len(got) != len(all) {
		t.Errorf("empty query: got %d presets, want %d", len(got), len(all))
	}

	got := FindPresets("background", all)
	if len(got) == 0 || got[0].Name != "Background" {
		t.Fatalf("expected Background first, got %+v", got)
	}

	got = FindPresets("weapons", all)
	if len(got) == 0 || got[0].Name != "First Person (High)" {
		t.Fatalf("expected description match on First Person (High), got %+v", got)
	}

	if got := FindPresets("zzzz", all); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestResolutionCycling(t *testing.T) {
	if got := NextResolution(2048); got != 4096 {
		t.Errorf("NextResolution(2048) = %v", got)
	}
	if got := NextResolution(8192); got != 512 {
		t.Errorf("NextResolution(8192) = %v, want wrap to 512", got)
	}
	if got := PrevResolution(512); got != 8192 {
		t.Errorf("PrevResolution(512) = %v, want wrap to 8192", got)
	}
	if got := NextResolution(3000); got != DefaultResolution {
		t.Errorf("NextResolution(3000) = %v, want default", got)
	}
	if ResolutionIndex(1024) != 1 {
		t.Errorf("ResolutionIndex(1024) = %d", ResolutionIndex(1024))
	}
}
