package security

import "testing"

func TestUncheckedCallFlagsBareCall(t *testing.T) {
	n := drafts(t, UncheckedCallReturn{},
		`contract X { function f() public { target.call(data); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestUncheckedCallWrappedInRequireIsFine(t *testing.T) {
	n := drafts(t, UncheckedCallReturn{},
		`contract X { function f() public { require(target.call(data)); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
