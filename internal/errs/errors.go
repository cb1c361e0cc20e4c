// Package errs defines the error taxonomy as concrete Go error types the
// engine, cache, and plugin loader raise and callers can distinguish with
// errors.As.
package errs

import "fmt"

// ParseError records that the external parser failed or produced no usable
// AST for a file. No rule runs for a file carrying a ParseError.
type ParseError struct {
	FilePath string
	Messages []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse failed: %v", e.FilePath, e.Messages)
}

// RuleError records that a rule panicked or returned an error from Analyze.
// It is converted into an INTERNAL_RULE_ERROR diagnostic attached to the
// file; it never aborts the engine.
type RuleError struct {
	RuleID string
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s failed: %v", e.RuleID, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

// PluginLoadError records one or more validation failures for a plugin
// bundle.
type PluginLoadError struct {
	BundleName string
	Failures   []string
}

func (e *PluginLoadError) Error() string {
	return fmt.Sprintf("plugin %q failed validation: %v", e.BundleName, e.Failures)
}

// CacheError records a corrupt cache entry or cache I/O failure. Callers
// treat the affected key as a miss rather than failing the analysis.
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }

// ConfigError is raised only by the external config loader when the
// effective config is structurally invalid (e.g. an unknown severity); the
// engine fails startup when it receives one.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Msg)
}

// IOError records a file read failure; the engine records it as a parse
// failure for that file.
type IOError struct {
	FilePath string
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// RuleLifecycleError is returned by rule.Context.Report when a rule attempts
// to report an issue after its Analyze call has already returned.
type RuleLifecycleError struct {
	RuleID string
}

func (e *RuleLifecycleError) Error() string {
	return fmt.Sprintf("rule %s: report called after analyze returned", e.RuleID)
}

// DuplicateRule is returned by rule.Registry.Register when a rule id is
// already present.
type DuplicateRule struct {
	RuleID string
}

func (e *DuplicateRule) Error() string {
	return fmt.Sprintf("rule %s is already registered", e.RuleID)
}
