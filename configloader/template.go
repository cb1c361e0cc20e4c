package configloader

import (
	"gopkg.in/yaml.v3"

	"github.com/solguard/solguard/config"
)

// starterFile is the on-disk shape written by WriteStarter, mirroring raw
// but with string-keyed rule entries kept as plain strings for readability.
type starterFile struct {
	Extends string            `yaml:"extends"`
	Rules   map[string]string `yaml:"rules"`
}

// WriteStarter renders a minimal YAML config extending preset (e.g.
// "solguard:recommended") with no rule overrides, the file `solguard init`
// writes for a new project. It is marshaled directly with yaml.v3 rather
// than through viper, which has no symmetric "write config" API.
func WriteStarter(preset string) ([]byte, error) {
	return yaml.Marshal(starterFile{Extends: preset, Rules: map[string]string{}})
}

// DumpEffective renders eff as YAML for diagnostics (e.g. `solguard
// config`), independent of how it was assembled.
func DumpEffective(eff config.Effective) ([]byte, error) {
	out := make(map[string]any, len(eff.Rules))
	for id, entry := range eff.Rules {
		if entry.Options == nil {
			out[id] = string(entry.Severity)
			continue
		}
		out[id] = []any{string(entry.Severity), entry.Options}
	}
	return yaml.Marshal(map[string]any{"rules": out})
}
