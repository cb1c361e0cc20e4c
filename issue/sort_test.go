package issue

import (
	"fmt"
	"testing"

	"github.com/solguard/solguard/sourceview"
)

func loc(line, col int) sourceview.Range {
	p := sourceview.Position{Line: line, Column: col}
	return sourceview.Range{Start: p, End: p}
}

func TestSortOrdering(t *testing.T) {
	issues := []Issue{
		{RuleID: "b/rule", Location: loc(2, 0)},
		{RuleID: "a/rule", Location: loc(1, 5)},
		{RuleID: "a/rule", Location: loc(1, 0)},
	}
	Sort(issues)

	want := []string{"a/rule@1:0", "a/rule@1:5", "b/rule@2:0"}
	for i, w := range want {
		got := issues[i].RuleID
		if got+"@"+posString(issues[i].Location.Start) != w {
			t.Fatalf("index %d: got %s@%v want %s", i, got, issues[i].Location.Start, w)
		}
	}
}

func posString(p sourceview.Position) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func TestDedup(t *testing.T) {
	dup := loc(3, 1)
	issues := []Issue{
		{RuleID: "r", Location: dup, FilePath: "a.sol"},
		{RuleID: "r", Location: dup, FilePath: "a.sol"},
		{RuleID: "r", Location: loc(4, 0), FilePath: "a.sol"},
	}
	out := Dedup(issues)
	if len(out) != 2 {
		t.Fatalf("expected 2 deduped issues, got %d", len(out))
	}
}
