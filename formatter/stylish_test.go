package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/result"
	"github.com/solguard/solguard/sourceview"
)

func loc(line, col int) sourceview.Range {
	p := sourceview.Position{Line: line, Column: col}
	return sourceview.Range{Start: p, End: p}
}

func TestStylishGroupsIssuesByFile(t *testing.T) {
	agg := result.Aggregate([]result.PerFileResult{
		{
			FilePath: "contracts/Vault.sol",
			Issues: []issue.Issue{
				{FilePath: "contracts/Vault.sol", RuleID: "security/tx-origin", Category: issue.Security, Severity: issue.Error, Message: "tx.origin used for authorization", Location: loc(10, 4)},
				{FilePath: "contracts/Vault.sol", RuleID: "lint/boolean-equality", Category: issue.Lint, Severity: issue.Warning, Message: "comparison to boolean literal", Location: loc(3, 1)},
			},
		},
	}, time.Millisecond)

	out, err := Stylish{}.Format(&agg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "contracts/Vault.sol") {
		t.Fatalf("missing file header: %q", out)
	}
	lintIdx := strings.Index(out, "lint/boolean-equality")
	secIdx := strings.Index(out, "security/tx-origin")
	if lintIdx == -1 || secIdx == -1 {
		t.Fatalf("missing rule ids in output: %q", out)
	}
	if lintIdx > secIdx {
		t.Fatalf("expected line-3 issue before line-10 issue, got: %q", out)
	}
	if !strings.Contains(out, "2 problems (1 error, 1 warning)") {
		t.Fatalf("missing summary line: %q", out)
	}
}

func TestStylishNoIssues(t *testing.T) {
	agg := result.Aggregate([]result.PerFileResult{
		{FilePath: "contracts/Empty.sol"},
	}, time.Millisecond)

	out, err := Stylish{}.Format(&agg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Empty.sol") {
		t.Fatalf("clean file should not print a header: %q", out)
	}
	if !strings.Contains(out, "no issues found") {
		t.Fatalf("expected no-issues message, got: %q", out)
	}
}

func TestStylishReportsParseErrors(t *testing.T) {
	agg := result.Aggregate([]result.PerFileResult{
		{FilePath: "contracts/Broken.sol", ParseErrors: []string{"unexpected token at line 5"}},
	}, time.Millisecond)

	out, err := Stylish{}.Format(&agg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "parse error") || !strings.Contains(out, "unexpected token at line 5") {
		t.Fatalf("expected parse error line, got: %q", out)
	}
}
