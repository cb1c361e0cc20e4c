// Package configloader is the reference implementation of the external
// config-loader collaborator: it turns an on-disk JSON or YAML config file
// into a config.Effective, resolving "extends" preset references and
// normalizing rule entries along the way.
package configloader

import (
	"fmt"
	"strings"

	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/internal/errs"
)

// PresetResolver looks up a named preset ("recommended", "strict",
// "minimal", or a plugin-namespaced preset) and returns the rule entries it
// contributes. Kept as an interface rather than a direct import of package
// rules so configloader has no dependency on the rule library; cmd/solguard
// wires the two together.
type PresetResolver interface {
	Preset(name string) (config.Fragment, bool)
}

// Loader builds a config.Effective from a single config file, expanding at
// most one level of "extends" (a config file's own rules always win over
// the preset it extends).
type Loader struct {
	Presets PresetResolver
}

// New returns a Loader that resolves "extends" references against presets.
func New(presets PresetResolver) *Loader {
	return &Loader{Presets: presets}
}

// raw is the on-disk shape of a config file, independent of whether it was
// read as JSON or YAML — viper normalizes both into the same map shape.
type raw struct {
	Extends string         `mapstructure:"extends"`
	Rules   map[string]any `mapstructure:"rules"`
}

// Load reads the config file at path (JSON or YAML, detected from its
// extension by viper) and returns the resulting Effective, with BasePath
// set to dir.
func (l *Loader) Load(path, dir string) (config.Effective, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return config.Effective{}, &errs.ConfigError{Field: path, Msg: err.Error()}
	}

	var r raw
	if err := v.Unmarshal(&r); err != nil {
		return config.Effective{}, &errs.ConfigError{Field: path, Msg: err.Error()}
	}

	eff := config.Effective{BasePath: dir}

	if r.Extends != "" {
		fragment, err := l.resolveExtends(r.Extends)
		if err != nil {
			return config.Effective{}, err
		}
		eff = eff.Merge(fragment)
	}

	own, err := normalizeRules(r.Rules)
	if err != nil {
		return config.Effective{}, err
	}
	eff = eff.Merge(own)

	return eff, nil
}

func (l *Loader) resolveExtends(ref string) (config.Fragment, error) {
	name := ref
	if idx := strings.LastIndex(ref, ":"); idx >= 0 {
		name = ref[idx+1:]
	}
	if l.Presets == nil {
		return nil, &errs.ConfigError{Field: "extends", Msg: fmt.Sprintf("no preset resolver configured, cannot resolve %q", ref)}
	}
	fragment, ok := l.Presets.Preset(name)
	if !ok {
		return nil, &errs.ConfigError{Field: "extends", Msg: fmt.Sprintf("unknown preset %q", ref)}
	}
	return fragment, nil
}

func normalizeRules(rules map[string]any) (config.Fragment, error) {
	fragment := make(config.Fragment, len(rules))
	for ruleID, raw := range rules {
		entry, err := config.NormalizeEntry(raw)
		if err != nil {
			return nil, err
		}
		fragment[ruleID] = entry
	}
	return fragment, nil
}
