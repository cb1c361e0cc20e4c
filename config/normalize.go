package config

import (
	"fmt"

	"github.com/solguard/solguard/internal/errs"
)

// NormalizeEntry converts a raw rule-entry value (as produced by a JSON/YAML
// config loader) into a RuleEntry:
//
//	"off" | 0            -> OFF
//	"warning" | "warn" | 1 -> WARNING
//	"error" | 2           -> ERROR
//	"info"                -> INFO
//	[severity, options]   -> same severity, options passed through
func NormalizeEntry(raw any) (RuleEntry, error) {
	switch v := raw.(type) {
	case string, float64, int:
		sev, err := normalizeSeverity(v)
		if err != nil {
			return RuleEntry{}, err
		}
		return RuleEntry{Severity: sev}, nil
	case []any:
		if len(v) == 0 || len(v) > 2 {
			return RuleEntry{}, &errs.ConfigError{Field: "rules", Msg: "entry array must have 1 or 2 elements"}
		}
		sev, err := normalizeSeverity(v[0])
		if err != nil {
			return RuleEntry{}, err
		}
		entry := RuleEntry{Severity: sev}
		if len(v) == 2 {
			opts, ok := v[1].(map[string]any)
			if !ok {
				return RuleEntry{}, &errs.ConfigError{Field: "rules", Msg: "options element must be an object"}
			}
			entry.Options = Options(opts)
		}
		return entry, nil
	default:
		return RuleEntry{}, &errs.ConfigError{Field: "rules", Msg: fmt.Sprintf("unsupported rule entry type %T", raw)}
	}
}

func normalizeSeverity(raw any) (Severity, error) {
	switch v := raw.(type) {
	case string:
		switch v {
		case "off":
			return Off, nil
		case "warning", "warn":
			return Warning, nil
		case "error":
			return Error, nil
		case "info":
			return Info, nil
		default:
			return "", &errs.ConfigError{Field: "severity", Msg: fmt.Sprintf("unknown severity %q", v)}
		}
	case float64:
		return severityFromNumber(int(v))
	case int:
		return severityFromNumber(v)
	default:
		return "", &errs.ConfigError{Field: "severity", Msg: fmt.Sprintf("unsupported severity type %T", raw)}
	}
}

func severityFromNumber(n int) (Severity, error) {
	switch n {
	case 0:
		return Off, nil
	case 1:
		return Warning, nil
	case 2:
		return Error, nil
	default:
		return "", &errs.ConfigError{Field: "severity", Msg: fmt.Sprintf("unknown numeric severity %d", n)}
	}
}
