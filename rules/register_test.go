package rules

import "testing"

func TestNewRegistryHasNoDuplicateIDs(t *testing.T) {
	reg := NewRegistry()
	if reg.Len() != len(All()) {
		t.Fatalf("expected %d registered rules, got %d", len(All()), reg.Len())
	}
}

func TestPresetsCoverEveryRule(t *testing.T) {
	presets := Presets()
	for _, name := range []string{"recommended", "strict"} {
		fragment, ok := presets[name]
		if !ok {
			t.Fatalf("missing preset %q", name)
		}
		if len(fragment) != len(All()) {
			t.Fatalf("preset %q: expected %d rule entries, got %d", name, len(All()), len(fragment))
		}
	}
}

func TestMinimalPresetIsASubset(t *testing.T) {
	presets := Presets()
	minimal := presets["minimal"]
	recommended := presets["recommended"]

	if len(minimal) == 0 || len(minimal) >= len(recommended) {
		t.Fatalf("expected minimal to be a small strict subset of recommended, got %d of %d", len(minimal), len(recommended))
	}
	for id := range minimal {
		if _, ok := recommended[id]; !ok {
			t.Fatalf("minimal rule %q is not present in recommended", id)
		}
	}
}

func TestPresetRegistryImplementsResolver(t *testing.T) {
	pr := NewPresetRegistry()
	if _, ok := pr.Preset("recommended"); !ok {
		t.Fatalf("expected recommended preset to resolve")
	}
	if _, ok := pr.Preset("nonexistent"); ok {
		t.Fatalf("expected unknown preset to report not-found")
	}
}
