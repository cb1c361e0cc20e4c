package security

import "testing"

func TestSelfdestructFlagsUnprotected(t *testing.T) {
	n := drafts(t, SelfdestructUnprotected{},
		`contract X { function kill() public { selfdestruct(owner); } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestSelfdestructIgnoredWhenGuarded(t *testing.T) {
	n := drafts(t, SelfdestructUnprotected{},
		`contract X { function kill() public onlyOwner { selfdestruct(owner); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
