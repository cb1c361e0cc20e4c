package plugin

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/internal/errs"
	"github.com/solguard/solguard/internal/xlog"
	"github.com/solguard/solguard/rule"
)

var kebabCasePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Mode controls how the Loader reacts to validation failures.
type Mode int

const (
	// Strict aborts loading the offending bundle on any validation error.
	// This is the default.
	Strict Mode = iota
	// Lenient records the error and drops only the affected entries.
	Lenient
)

// LoadedBundle is the result of successfully loading a Bundle: its generated
// instance id, the rule ids it contributed (already namespaced), and the
// preset names it contributed.
type LoadedBundle struct {
	InstanceID string
	Name       string
	RuleIDs    []string
	PresetKeys []string
	teardown   func() error
}

// Loader validates and merges Bundle values into a rule.Registry and a
// preset table.
type Loader struct {
	mode    Mode
	log     xlog.Logger
	loaded  map[string]*LoadedBundle // by plugin name, duplicate-name guard
}

// NewLoader returns a Loader in the given mode. A nil logger becomes a no-op
// logger.
func NewLoader(mode Mode, log xlog.Logger) *Loader {
	return &Loader{mode: mode, log: xlog.OrNoOp(log), loaded: make(map[string]*LoadedBundle)}
}

// Load validates b, instantiates its rule contributions, registers them
// (namespaced "<plugin_name>/<rule_id>") into reg, and merges its presets
// (namespaced "<plugin_name>/<preset_name>") into presets. On success it
// invokes b.Setup, if any, and returns a LoadedBundle whose Unload method
// invokes b.Teardown.
func (l *Loader) Load(b Bundle, reg *rule.Registry, presets map[string]config.Fragment) (*LoadedBundle, error) {
	failures := validate(b)

	if _, dup := l.loaded[b.Metadata.Name]; dup {
		failures = append(failures, fmt.Sprintf("duplicate plugin name %q", b.Metadata.Name))
	}

	if len(failures) > 0 {
		err := &errs.PluginLoadError{BundleName: b.Metadata.Name, Failures: failures}
		if l.mode == Strict {
			return nil, err
		}
		l.log.WithField("plugin", b.Metadata.Name).Warnf("lenient mode: dropping invalid entries: %v", failures)
	}

	lb := &LoadedBundle{InstanceID: uuid.NewString(), Name: b.Metadata.Name, teardown: b.Teardown}

	if b.Setup != nil {
		if err := b.Setup(); err != nil {
			return nil, fmt.Errorf("plugin %q setup failed: %w", b.Metadata.Name, err)
		}
	}

	for ruleID, contrib := range b.Rules {
		if !kebabCasePattern.MatchString(ruleID) {
			if l.mode == Strict {
				return nil, &errs.PluginLoadError{BundleName: b.Metadata.Name, Failures: []string{"rule id not kebab-case: " + ruleID}}
			}
			l.log.Warnf("skipping non-kebab-case rule id %q from plugin %q", ruleID, b.Metadata.Name)
			continue
		}

		instance := contrib.New()
		meta := instance.Metadata()
		if meta.ID == "" {
			if l.mode == Strict {
				return nil, &errs.PluginLoadError{BundleName: b.Metadata.Name, Failures: []string{"rule " + ruleID + " metadata.id is empty"}}
			}
			continue
		}

		namespacedID := b.Metadata.Name + "/" + ruleID
		namespaced := &namespacedRule{inner: instance, id: namespacedID}
		if err := reg.Register(namespaced); err != nil {
			if l.mode == Strict {
				return nil, err
			}
			l.log.Warnf("skipping rule %q: %v", namespacedID, err)
			continue
		}
		lb.RuleIDs = append(lb.RuleIDs, namespacedID)
	}

	for name, fragment := range b.Presets {
		if !kebabCasePattern.MatchString(name) {
			if l.mode == Strict {
				return nil, &errs.PluginLoadError{BundleName: b.Metadata.Name, Failures: []string{"preset name not kebab-case: " + name}}
			}
			continue
		}
		presets[b.Metadata.Name+"/"+name] = fragment
		lb.PresetKeys = append(lb.PresetKeys, b.Metadata.Name+"/"+name)
	}

	l.loaded[b.Metadata.Name] = lb
	return lb, nil
}

// Unload invokes the bundle's teardown hook, if any.
func (lb *LoadedBundle) Unload() error {
	if lb.teardown != nil {
		return lb.teardown()
	}
	return nil
}

func validate(b Bundle) []string {
	var failures []string
	if b.Metadata.Name == "" {
		failures = append(failures, "metadata.name must be non-empty")
	}
	if !versionPattern.MatchString(b.Metadata.Version) {
		failures = append(failures, fmt.Sprintf("metadata.version %q must match D+.D+.D+", b.Metadata.Version))
	}
	return failures
}

// namespacedRule wraps a plugin-contributed rule so its Metadata().ID
// reflects the "<plugin>/<rule_id>" namespacing contract, without requiring
// every plugin author to hardcode their own plugin name
// into each rule.
type namespacedRule struct {
	inner rule.Rule
	id    string
}

func (n *namespacedRule) Metadata() rule.Metadata {
	m := n.inner.Metadata()
	m.ID = n.id
	return m
}

func (n *namespacedRule) Analyze(ctx *rule.Context) error {
	return n.inner.Analyze(ctx)
}
