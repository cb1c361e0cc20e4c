// Package rules is the concrete checker library: one subpackage per
// category (security, gas, lint, bestpractices), and this file, which
// assembles all of them into a rule.Registry and the named presets a
// config file can extend.
package rules

import (
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/bestpractices"
	"github.com/solguard/solguard/rules/gas"
	"github.com/solguard/solguard/rules/lint"
	"github.com/solguard/solguard/rules/security"
)

// All returns every built-in rule, in a fixed category order
// (security, gas, lint, bestpractices) and a fixed order within each
// category, matching the order the rules are registered in.
func All() []rule.Rule {
	return []rule.Rule{
		security.TxOrigin{},
		security.ReentrancyNoEth{},
		security.UncheckedCallReturn{},
		security.SelfdestructUnprotected{},
		security.DelegatecallUntrusted{},
		security.UnprotectedWithdrawal{},
		security.ArbitrarySend{},
		security.TimestampDependence{},

		gas.IncrementByOne{},
		gas.CacheArrayLengthInLoop{},
		gas.ExternalOverPublic{},
		gas.LongRequireMessage{},
		gas.RevertWithString{},
		gas.StateVariableCouldBeConstant{},
		gas.RedundantZeroInitialization{},

		lint.BooleanEquality{},
		lint.ContractNamePascalCase{},
		lint.FunctionNameCamelCase{},
		lint.EventNamePascalCase{},
		lint.MissingVisibility{},
		lint.NegatedEquality{},
		lint.SelfAssignment{},
		lint.EmptyIfBody{},

		bestpractices.MagicNumberInComparison{},
		bestpractices.ConstructorVisibility{},
		bestpractices.FallbackShouldBeExternal{},
		bestpractices.ReceiveShouldBePayable{},
		bestpractices.RequireWithoutMessage{},
		bestpractices.AssignmentInCondition{},
		bestpractices.FloatingPragma{},
	}
}

// NewRegistry builds a rule.Registry containing every built-in rule.
// Registration order is deterministic (see All), and since every built-in
// rule ID is distinct this never fails.
func NewRegistry() *rule.Registry {
	reg := rule.NewRegistry()
	for _, r := range All() {
		if err := reg.Register(r); err != nil {
			panic(err)
		}
	}
	return reg
}

// downgradeToInfo is the set of rules "recommended" enables at INFO instead of
// their own default-severity opinion, because they are either noisy or
// more a style preference than a defect: naming conventions and a few
// gas micro-optimizations.
var downgradeToInfo = map[string]bool{
	"lint/contract-name-pascal-case":  true,
	"lint/function-name-camel-case":   true,
	"lint/event-name-pascal-case":     true,
	"gas/use-external-over-public":    true,
	"gas/cache-array-length-in-loop":  true,
}

// minimalRuleIDs is "minimal"'s allowlist: the subset of security rules
// severe and low-false-positive enough to run with nothing else enabled.
var minimalRuleIDs = map[string]bool{
	"security/tx-origin":                     true,
	"security/selfdestruct-unprotected":       true,
	"security/unprotected-ether-withdrawal":   true,
	"security/delegatecall-to-untrusted":      true,
}

// Presets returns the three built-in config.Fragment presets, keyed by
// name: "recommended" (every rule, at its own declared severity, with a
// handful of stylistic rules downgraded to INFO), "strict" (every rule at
// its own declared severity, unmodified), and "minimal" (only the handful
// of highest-signal security rules).
func Presets() map[string]config.Fragment {
	recommended := config.Fragment{}
	strict := config.Fragment{}
	minimal := config.Fragment{}

	for _, r := range All() {
		meta := r.Metadata()
		sev := config.Severity(meta.Severity)

		strict[meta.ID] = config.RuleEntry{Severity: sev}

		if downgradeToInfo[meta.ID] {
			recommended[meta.ID] = config.RuleEntry{Severity: config.Info}
		} else {
			recommended[meta.ID] = config.RuleEntry{Severity: sev}
		}

		if minimalRuleIDs[meta.ID] {
			minimal[meta.ID] = config.RuleEntry{Severity: sev}
		}
	}

	return map[string]config.Fragment{
		"recommended": recommended,
		"strict":      strict,
		"minimal":     minimal,
	}
}

// PresetRegistry implements configloader.PresetResolver against the
// built-in presets. It is a standalone type (rather than configloader
// importing this package directly) so configloader stays free of a
// dependency on the rule library; cmd/solguard wires the two together.
type PresetRegistry struct {
	presets map[string]config.Fragment
}

// NewPresetRegistry builds a PresetRegistry over the built-in presets.
func NewPresetRegistry() *PresetRegistry {
	return &PresetRegistry{presets: Presets()}
}

// Preset implements configloader.PresetResolver.
func (p *PresetRegistry) Preset(name string) (config.Fragment, bool) {
	fragment, ok := p.presets[name]
	return fragment, ok
}
