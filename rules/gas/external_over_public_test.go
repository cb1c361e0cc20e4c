package gas

import "testing"

func TestExternalOverPublicFlagsUnreferencedPublic(t *testing.T) {
	n := drafts(t, ExternalOverPublic{}, `contract X { function f() public { uint256 a; } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestExternalOverPublicIgnoresInternalUseViaThis(t *testing.T) {
	n := drafts(t, ExternalOverPublic{}, `contract X { function f() public { this.g(); } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
