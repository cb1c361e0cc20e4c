package rule

import (
	"testing"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/sourceview"
)

func newTestContext() *Context {
	sv := sourceview.New("contract X {}\n")
	root := &ast.Node{Type: "SourceUnit", Fields: map[string]any{}}
	return NewContext("x.sol", sv, root, config.Effective{})
}

func TestContextReportDedup(t *testing.T) {
	ctx := newTestContext()
	ctx.BindRule("lint/example")

	loc := sourceview.Range{Start: sourceview.Position{Line: 1, Column: 0}, End: sourceview.Position{Line: 1, Column: 5}}
	if err := ctx.Report(issue.Draft{Message: "first", Location: loc}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctx.Report(issue.Draft{Message: "dup", Location: loc}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	issues := ctx.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected dedup to collapse to 1 issue, got %d", len(issues))
	}
	if issues[0].Message != "first" {
		t.Fatalf("expected first draft to win, got %q", issues[0].Message)
	}
}

func TestContextReportAfterCloseFails(t *testing.T) {
	ctx := newTestContext()
	ctx.BindRule("lint/example")
	ctx.Close()

	err := ctx.Report(issue.Draft{Message: "too late"})
	if err == nil {
		t.Fatalf("expected RuleLifecycleError after close")
	}
}

func TestContextReportAtFallbackLocation(t *testing.T) {
	ctx := newTestContext()
	ctx.BindRule("lint/example")

	if err := ctx.ReportAt(nil, "FunctionDefinition", issue.Draft{Message: "missing loc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	issues := ctx.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Location.Start != (sourceview.Position{Line: 1, Column: 0}) {
		t.Fatalf("expected fallback position, got %+v", issues[0].Location.Start)
	}
	if issues[0].Message != "(FunctionDefinition) missing loc" {
		t.Fatalf("expected node kind prefix, got %q", issues[0].Message)
	}
}

func TestContextIssuesPerRuleAccumulate(t *testing.T) {
	ctx := newTestContext()

	ctx.BindRule("a/rule")
	_ = ctx.Report(issue.Draft{Message: "from a"})
	ctx.Close()

	ctx.BindRule("b/rule")
	_ = ctx.Report(issue.Draft{Message: "from b"})
	ctx.Close()

	issues := ctx.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected issues from both rules to accumulate, got %d", len(issues))
	}
}
