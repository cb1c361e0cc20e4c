// Package plugin loads external rule/preset bundles and merges them into a
// rule.Registry.
package plugin

import (
	"regexp"

	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/rule"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// BundleMetadata identifies a plugin bundle.
type BundleMetadata struct {
	Name    string
	Version string
}

// RuleFactory constructs a fresh rule.Rule instance. Bundles contribute
// rules as factories rather than shared instances, so a rule with internal
// per-run state cannot leak between loads of the same bundle.
type RuleFactory func() rule.Rule

// RuleContribution is a single entry in a Bundle's Rules map: either a bare
// constructor or a constructor plus metadata override.
type RuleContribution struct {
	New      RuleFactory
	Metadata *rule.Metadata // optional override; nil uses the constructed rule's own Metadata()
}

// Bundle is the shape an external plugin must export:
// metadata, optional rule contributions, optional preset fragments, and
// optional setup/teardown lifecycle hooks.
type Bundle struct {
	Metadata BundleMetadata
	Rules    map[string]RuleContribution
	Presets  map[string]config.Fragment
	Setup    func() error
	Teardown func() error
}
