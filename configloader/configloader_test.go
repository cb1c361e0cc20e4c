package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solguard/solguard/config"
)

type fakePresets map[string]config.Fragment

func (f fakePresets) Preset(name string) (config.Fragment, bool) {
	frag, ok := f[name]
	return frag, ok
}

func TestLoadJSONWithoutExtends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solguard.json")
	body := `{"rules": {"security/tx-origin": "error", "lint/boolean-equality": ["warning", {"allow": ["x"]}]}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	eff, err := New(nil).Load(path, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eff.RuleEntry("security/tx-origin").Severity != config.Error {
		t.Fatalf("expected tx-origin at error, got %v", eff.RuleEntry("security/tx-origin"))
	}
	entry := eff.RuleEntry("lint/boolean-equality")
	if entry.Severity != config.Warning || entry.Options["allow"] == nil {
		t.Fatalf("expected warning with options, got %+v", entry)
	}
}

func TestLoadResolvesExtendsAndOwnRulesWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solguard.yaml")
	body := "extends: solguard:recommended\nrules:\n  security/tx-origin: off\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	presets := fakePresets{
		"recommended": config.Fragment{
			"security/tx-origin":    config.RuleEntry{Severity: config.Error},
			"lint/boolean-equality": config.RuleEntry{Severity: config.Warning},
		},
	}

	eff, err := New(presets).Load(path, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eff.RuleEntry("security/tx-origin").Severity != config.Off {
		t.Fatalf("expected own rule override to win, got %v", eff.RuleEntry("security/tx-origin"))
	}
	if eff.RuleEntry("lint/boolean-equality").Severity != config.Warning {
		t.Fatalf("expected preset rule to carry through, got %v", eff.RuleEntry("lint/boolean-equality"))
	}
}

func TestLoadUnknownPresetFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solguard.json")
	body := `{"extends": "solguard:nonsense", "rules": {}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(fakePresets{}).Load(path, dir)
	if err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestLoadInvalidSeverityFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solguard.json")
	body := `{"rules": {"lint/boolean-equality": "catastrophic"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := New(nil).Load(path, dir)
	if err == nil {
		t.Fatalf("expected error for invalid severity")
	}
}
