package gas

import "testing"

func TestRevertWithStringFlagsMessage(t *testing.T) {
	n := drafts(t, RevertWithString{}, `contract X { function f() public { revert("not allowed"); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestRevertWithStringIgnoresBareRevert(t *testing.T) {
	n := drafts(t, RevertWithString{}, `contract X { function f() public { revert(); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
