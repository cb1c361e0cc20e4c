package bestpractices

import "testing"

func TestAssignmentInConditionFlagsAssignment(t *testing.T) {
	n := drafts(t, AssignmentInCondition{}, `contract X { function f() public { if (ok = true) { } } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestAssignmentInConditionIgnoresComparison(t *testing.T) {
	n := drafts(t, AssignmentInCondition{}, `contract X { function f() public { if (ok == true) { } } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
