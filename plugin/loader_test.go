package plugin

import (
	"testing"

	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/rule"
)

type noopRule struct{ id string }

func (r noopRule) Metadata() rule.Metadata        { return rule.Metadata{ID: r.id, Category: "LINT"} }
func (r noopRule) Analyze(ctx *rule.Context) error { return nil }

func validBundle() Bundle {
	return Bundle{
		Metadata: BundleMetadata{Name: "acme", Version: "1.0.0"},
		Rules: map[string]RuleContribution{
			"no-tabs": {New: func() rule.Rule { return noopRule{id: "no-tabs"} }},
		},
		Presets: map[string]config.Fragment{
			"recommended": {"acme/no-tabs": config.RuleEntry{Severity: config.Warning}},
		},
	}
}

func TestLoaderNamespacesRulesAndPresets(t *testing.T) {
	loader := NewLoader(Strict, nil)
	reg := rule.NewRegistry()
	presets := map[string]config.Fragment{}

	lb, err := loader.Load(validBundle(), reg, presets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lb.RuleIDs) != 1 || lb.RuleIDs[0] != "acme/no-tabs" {
		t.Fatalf("expected namespaced rule id, got %v", lb.RuleIDs)
	}
	if _, ok := reg.Get("acme/no-tabs"); !ok {
		t.Fatalf("expected registry to contain namespaced rule")
	}
	if _, ok := presets["acme/recommended"]; !ok {
		t.Fatalf("expected namespaced preset, got %v", presets)
	}
}

func TestLoaderRejectsBadMetadataStrict(t *testing.T) {
	loader := NewLoader(Strict, nil)
	reg := rule.NewRegistry()
	presets := map[string]config.Fragment{}

	b := validBundle()
	b.Metadata.Version = "not-a-version"

	if _, err := loader.Load(b, reg, presets); err == nil {
		t.Fatalf("expected validation error in strict mode")
	}
}

func TestLoaderRejectsDuplicatePluginName(t *testing.T) {
	loader := NewLoader(Strict, nil)
	reg := rule.NewRegistry()
	presets := map[string]config.Fragment{}

	if _, err := loader.Load(validBundle(), reg, presets); err != nil {
		t.Fatalf("unexpected error on first load: %v", err)
	}
	if _, err := loader.Load(validBundle(), reg, presets); err == nil {
		t.Fatalf("expected duplicate plugin name to be rejected")
	}
}

func TestLoaderLenientModeDropsInvalidEntries(t *testing.T) {
	loader := NewLoader(Lenient, nil)
	reg := rule.NewRegistry()
	presets := map[string]config.Fragment{}

	b := validBundle()
	b.Rules["Not_Kebab"] = RuleContribution{New: func() rule.Rule { return noopRule{id: "Not_Kebab"} }}

	lb, err := loader.Load(b, reg, presets)
	if err != nil {
		t.Fatalf("lenient mode should not fail: %v", err)
	}
	if len(lb.RuleIDs) != 1 {
		t.Fatalf("expected only the valid rule to load, got %v", lb.RuleIDs)
	}
}
