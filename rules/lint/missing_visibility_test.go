package lint

import "testing"

func TestMissingVisibilityFlagsImplicitPublic(t *testing.T) {
	n := drafts(t, MissingVisibility{}, `contract X { function f() { } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestMissingVisibilityIgnoresExplicit(t *testing.T) {
	n := drafts(t, MissingVisibility{}, `contract X { function f() public { } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
