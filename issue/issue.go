// Package issue defines the structured findings rules emit and the textual
// fixes attached to them.
package issue

import "github.com/solguard/solguard/sourceview"

// Category classifies what kind of concern an issue represents.
type Category string

const (
	Lint          Category = "LINT"
	Security      Category = "SECURITY"
	Gas           Category = "GAS"
	BestPractices Category = "BEST_PRACTICES"
)

// Severity is how seriously a finding should be treated.
type Severity string

const (
	Off     Severity = "OFF"
	Error   Severity = "ERROR"
	Warning Severity = "WARNING"
	Info    Severity = "INFO"
)

// Metadata is a free-form key/value bag attached to an issue, typically
// carrying a "suggestion" string.
type Metadata map[string]any

// Draft is what a rule constructs and hands to rule.Context.Report. The
// engine/context attaches FilePath; a Draft never carries one itself.
type Draft struct {
	RuleID   string
	Category Category
	Severity Severity
	Message  string
	Location sourceview.Range
	Fix      *Fix
	Metadata Metadata
}

// Issue is an immutable finding, owned by a per-file result once a rule
// returns from Analyze.
type Issue struct {
	FilePath string
	RuleID   string
	Category Category
	Severity Severity
	Message  string
	Location sourceview.Range
	Fix      *Fix
	Metadata Metadata
}

// Key identifies an issue for deduplication purposes: rule_id, location, and
// (once attached) file_path together identify an issue.
type Key struct {
	FilePath string
	RuleID   string
	Location sourceview.Range
}

// Key returns the dedup key for this issue.
func (i Issue) Key() Key {
	return Key{FilePath: i.FilePath, RuleID: i.RuleID, Location: i.Location}
}

// DraftKey identifies a draft for dedup purposes before the file path is
// known: duplicates sharing a rule_id and location are collapsed.
type DraftKey struct {
	RuleID   string
	Location sourceview.Range
}

// Key returns the pre-attachment dedup key for a draft.
func (d Draft) Key() DraftKey {
	return DraftKey{RuleID: d.RuleID, Location: d.Location}
}
