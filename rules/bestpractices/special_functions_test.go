package bestpractices

import "testing"

func TestConstructorVisibilityFlagsExplicit(t *testing.T) {
	n := drafts(t, ConstructorVisibility{}, `contract X { constructor() public { } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestConstructorVisibilityIgnoresImplicit(t *testing.T) {
	n := drafts(t, ConstructorVisibility{}, `contract X { constructor() { } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}

func TestFallbackShouldBeExternalFlagsMissing(t *testing.T) {
	n := drafts(t, FallbackShouldBeExternal{}, `contract X { fallback() { } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestFallbackShouldBeExternalIgnoresExternal(t *testing.T) {
	n := drafts(t, FallbackShouldBeExternal{}, `contract X { fallback() external { } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}

func TestReceiveShouldBePayableFlagsMissing(t *testing.T) {
	n := drafts(t, ReceiveShouldBePayable{}, `contract X { receive() external { } }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestReceiveShouldBePayableIgnoresPayable(t *testing.T) {
	n := drafts(t, ReceiveShouldBePayable{}, `contract X { receive() external payable { } }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
