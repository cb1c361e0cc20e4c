package lint

import "testing"

func TestContractNamePascalCaseFlagsLowercase(t *testing.T) {
	n := drafts(t, ContractNamePascalCase{}, `contract myToken { }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestContractNamePascalCaseIgnoresPascal(t *testing.T) {
	n := drafts(t, ContractNamePascalCase{}, `contract MyToken { }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}

func TestFunctionNameCamelCaseFlagsPascal(t *testing.T) {
	n := drafts(t, FunctionNameCamelCase{}, `contract X { function DoThing() public {} }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestFunctionNameCamelCaseIgnoresConstructor(t *testing.T) {
	n := drafts(t, FunctionNameCamelCase{}, `contract X { constructor() public {} }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}

func TestEventNamePascalCaseFlagsLowercase(t *testing.T) {
	n := drafts(t, EventNamePascalCase{}, `contract X { event transferred(address a); }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}
