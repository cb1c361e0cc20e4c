package lint

import (
	"testing"

	"github.com/solguard/solguard/config"
	"github.com/solguard/solguard/internal/solscan"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/sourceview"
)

func analyze(t *testing.T, r rule.Rule, src string) *rule.Context {
	t.Helper()
	res := solscan.Parse(src)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", res.Errors)
	}
	ctx := rule.NewContext("x.sol", sourceview.New(src), res.Root, config.Effective{})
	ctx.BindRule(r.Metadata().ID)
	if err := r.Analyze(ctx); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return ctx
}

func drafts(t *testing.T, r rule.Rule, src string) int {
	t.Helper()
	return len(analyze(t, r, src).Issues())
}

func TestBooleanEqualityFlagsComparison(t *testing.T) {
	ctx := analyze(t, BooleanEquality{}, `contract X { function f() public { require(ok == true); } }`+"\n")
	issues := ctx.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Fix == nil || issues[0].Fix.Text != "ok" {
		t.Fatalf("expected fix suggesting \"ok\", got %+v", issues[0].Fix)
	}
}

func TestBooleanEqualityNegatesFalseComparison(t *testing.T) {
	ctx := analyze(t, BooleanEquality{}, `contract X { function f() public { require(ok == false); } }`+"\n")
	issues := ctx.Issues()
	if len(issues) != 1 || issues[0].Fix == nil || issues[0].Fix.Text != "!ok" {
		t.Fatalf("expected fix suggesting \"!ok\", got %+v", issues)
	}
}

func TestBooleanEqualityIgnoresNonBooleanComparison(t *testing.T) {
	n := drafts(t, BooleanEquality{}, `contract X { function f() public { require(a == b); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
