package lint

import "testing"

func TestSelfAssignmentFlagsIdenticalSides(t *testing.T) {
	n := drafts(t, SelfAssignment{}, `contract X { function f() public { a = a; } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestSelfAssignmentIgnoresDifferentSides(t *testing.T) {
	n := drafts(t, SelfAssignment{}, `contract X { function f() public { a = b; } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
