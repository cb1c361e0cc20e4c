package rule

import (
	"sync"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/internal/errs"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/sourceview"
)

// Context is the per-file scratchpad handed to each rule's Analyze call.
// One Context is constructed per file and mutably owned by
// exactly one rule at a time — the engine never shares a Context's issue
// sink across files, and runs rules for a single file sequentially so no
// internal locking would be strictly required; the mutex here guards against
// a rule incorrectly retaining ctx and calling Report from a goroutine it
// spawned, which the lifecycle check below converts into a RuleLifecycleError
// instead of a data race.
type Context struct {
	filePath string
	source   *sourceview.View
	root     *ast.Node
	cfg      config.Effective

	mu      sync.Mutex
	ruleID  string
	closed  bool
	issues  []issue.Draft
	seen    map[issue.DraftKey]bool
}

// NewContext builds a Context bound to a single file. filePath, source, and
// root are fixed for the lifetime of the context; RuleID is set before each
// rule runs via BindRule, since a single Context is reused sequentially
// across all rules for the file.
func NewContext(filePath string, source *sourceview.View, root *ast.Node, cfg config.Effective) *Context {
	return &Context{
		filePath: filePath,
		source:   source,
		root:     root,
		cfg:      cfg,
		seen:     make(map[issue.DraftKey]bool),
	}
}

// BindRule prepares the context for the named rule's Analyze call, clearing
// the per-rule lifecycle-closed flag. The issue slice and seen-set persist
// across rules within the same file, since report/dedup is scoped per
// rule+location, not per context lifetime.
func (c *Context) BindRule(ruleID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ruleID = ruleID
	c.closed = false
}

// Close marks the context closed for the currently bound rule; further
// Report calls fail with RuleLifecycleError.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// FilePath returns the path of the file being analyzed.
func (c *Context) FilePath() string { return c.filePath }

// SourceCode returns the immutable source text of the file.
func (c *Context) SourceCode() string { return c.source.Source() }

// AST returns the root AST node.
func (c *Context) AST() *ast.Node { return c.root }

// Config returns the effective configuration.
func (c *Context) Config() config.Effective { return c.cfg }

// LineText returns the text of the given 1-based line.
func (c *Context) LineText(line int) (string, bool) {
	return c.source.LineText(line)
}

// Report appends an issue draft; duplicates within the same rule+location
// are collapsed. Callers that have no location available should call
// ReportAt with an explicit nodeKind instead of leaving Location at its
// zero value — Report cannot distinguish "no location" from a legitimate
// (1,0)-anchored issue.
func (c *Context) Report(draft issue.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return &errs.RuleLifecycleError{RuleID: c.ruleID}
	}

	draft.RuleID = c.ruleID
	key := draft.Key()
	if c.seen[key] {
		return nil
	}
	c.seen[key] = true
	c.issues = append(c.issues, draft)
	return nil
}

// ReportInternal appends a synthesized diagnostic on the engine's own
// behalf: unlike Report, it keeps draft.RuleID as given instead of
// overwriting it with the currently bound rule, and ignores the
// lifecycle-closed flag, since the engine calls this after a rule has
// already failed, not from within a rule's own Analyze call.
func (c *Context) ReportInternal(draft issue.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := draft.Key()
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.issues = append(c.issues, draft)
}

// ReportAt is a convenience for rules consuming a node that may lack a
// location: if loc is nil, the issue falls back to (line=1, column=0) and
// the node kind is prefixed to the message.
func (c *Context) ReportAt(loc *sourceview.Range, nodeKind string, draft issue.Draft) error {
	if loc == nil {
		draft.Location = sourceview.Range{
			Start: sourceview.Position{Line: 1, Column: 0},
			End:   sourceview.Position{Line: 1, Column: 0},
		}
		draft.Message = "(" + nodeKind + ") " + draft.Message
	} else {
		draft.Location = *loc
	}
	return c.Report(draft)
}

// Issues returns a snapshot of drafts emitted so far, for engine use only
// (not part of the rule-facing API).
func (c *Context) Issues() []issue.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]issue.Draft, len(c.issues))
	copy(out, c.issues)
	return out
}
