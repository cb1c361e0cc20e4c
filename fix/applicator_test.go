package fix

import (
	"testing"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/sourceview"
)

func pos(line, col int) sourceview.Position { return sourceview.Position{Line: line, Column: col} }

func rng(sl, sc, el, ec int) sourceview.Range {
	return sourceview.Range{Start: pos(sl, sc), End: pos(el, ec)}
}

// TestSingleFixApplication covers one issue with a fix attached, applied
// cleanly to produce corrected source.
func TestSingleFixApplication(t *testing.T) {
	source := "bool b;\nif (a == true) { b = a; }\n"

	issues := []issue.Issue{
		{
			RuleID:   "lint/boolean-equality",
			Location: rng(2, 4, 2, 13),
			Fix: &issue.Fix{
				Range:       rng(2, 4, 2, 13),
				Text:        "a",
				Description: "simplify redundant boolean comparison",
			},
		},
	}

	res := Apply(source, issues)

	if len(res.Applied) != 1 {
		t.Fatalf("expected exactly 1 applied fix, got %d: %+v", len(res.Applied), res.Applied)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("expected no skipped fixes, got %+v", res.Skipped)
	}

	want := "bool b;\nif (a) { b = a; }\n"
	if res.Text != want {
		t.Fatalf("unexpected fixed text:\n got: %q\nwant: %q", res.Text, want)
	}
}

// TestOverlappingFixesPicksOne covers two issues whose fixes target
// overlapping ranges; exactly one is applied and the other skipped.
func TestOverlappingFixesPicksOne(t *testing.T) {
	source := "uint256 x = 1 + 2 + 3;\n"

	// Both fixes target overlapping spans within the same expression.
	issues := []issue.Issue{
		{
			RuleID:   "gas/constant-fold",
			Location: rng(1, 12, 1, 21),
			Fix: &issue.Fix{
				Range:       rng(1, 12, 1, 21),
				Text:        "6",
				Description: "fold constant expression",
			},
		},
		{
			RuleID:   "lint/redundant-parens",
			Location: rng(1, 12, 1, 17),
			Fix: &issue.Fix{
				Range:       rng(1, 12, 1, 17),
				Text:        "1",
				Description: "drop redundant operand",
			},
		},
	}

	res := Apply(source, issues)

	if len(res.Applied) != 1 {
		t.Fatalf("expected exactly 1 applied fix, got %d: %+v", len(res.Applied), res.Applied)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected exactly 1 skipped fix, got %d: %+v", len(res.Skipped), res.Skipped)
	}
	if res.Skipped[0].Reason != "overlapping" {
		t.Fatalf("expected skip reason %q, got %q", "overlapping", res.Skipped[0].Reason)
	}

	// The wider span (start=12,end=21 -> same start, bigger end) wins the tie
	// per the (start desc, end desc) resolution.
	if res.Applied[0].RuleID != "gas/constant-fold" {
		t.Fatalf("expected the wider fix to win, got %q applied", res.Applied[0].RuleID)
	}
}

// TestNonOverlappingFixesBothApply covers two genuinely disjoint fixes in
// the same file; both should apply.
func TestNonOverlappingFixesBothApply(t *testing.T) {
	source := "a == true;\nb == true;\n"

	issues := []issue.Issue{
		{
			RuleID:   "lint/boolean-equality",
			Location: rng(1, 0, 1, 9),
			Fix:      &issue.Fix{Range: rng(1, 0, 1, 9), Text: "a", Description: "simplify"},
		},
		{
			RuleID:   "lint/boolean-equality",
			Location: rng(2, 0, 2, 9),
			Fix:      &issue.Fix{Range: rng(2, 0, 2, 9), Text: "b", Description: "simplify"},
		},
	}

	res := Apply(source, issues)

	if len(res.Applied) != 2 {
		t.Fatalf("expected both disjoint fixes to apply, got %+v applied, %+v skipped", res.Applied, res.Skipped)
	}
	want := "a;\nb;\n"
	if res.Text != want {
		t.Fatalf("unexpected fixed text:\n got: %q\nwant: %q", res.Text, want)
	}
}

// TestFixIdempotence checks that re-applying an empty issue set against
// already-fixed text is a no-op.
func TestFixIdempotence(t *testing.T) {
	source := "if (a == true) {}\n"
	issues := []issue.Issue{
		{
			RuleID:   "lint/boolean-equality",
			Location: rng(1, 4, 1, 13),
			Fix:      &issue.Fix{Range: rng(1, 4, 1, 13), Text: "a", Description: "simplify"},
		},
	}

	first := Apply(source, issues)
	second := Apply(first.Text, nil)

	if second.Text != first.Text {
		t.Fatalf("expected applying no issues to be a no-op: got %q, want %q", second.Text, first.Text)
	}
	if len(second.Applied) != 0 {
		t.Fatalf("expected no fixes applied on the second pass, got %+v", second.Applied)
	}
}

func TestInvalidRangeIsSkipped(t *testing.T) {
	source := "contract X {}\n"
	issues := []issue.Issue{
		{
			RuleID:   "broken/rule",
			Location: rng(1, 0, 1, 5),
			Fix:      &issue.Fix{Range: rng(99, 0, 99, 5), Text: "x", Description: "out of range"},
		},
	}

	res := Apply(source, issues)
	if len(res.Applied) != 0 {
		t.Fatalf("expected no fixes applied, got %+v", res.Applied)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "range outside source" {
		t.Fatalf("expected a single out-of-range skip, got %+v", res.Skipped)
	}
	if res.Text != source {
		t.Fatalf("expected source unchanged, got %q", res.Text)
	}
}
