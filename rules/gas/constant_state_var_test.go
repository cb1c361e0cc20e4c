package gas

import "testing"

func TestStateVariableCouldBeConstantFlagsLiteralInit(t *testing.T) {
	n := drafts(t, StateVariableCouldBeConstant{}, `contract X { uint256 fee = 100; }`+"\n")
	if n != 1 {
		t.Fatalf("expected 1 issue, got %d", n)
	}
}

func TestStateVariableCouldBeConstantIgnoresAlreadyConstant(t *testing.T) {
	n := drafts(t, StateVariableCouldBeConstant{}, `contract X { uint256 constant fee = 100; }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}

func TestStateVariableCouldBeConstantIgnoresNoInitializer(t *testing.T) {
	n := drafts(t, StateVariableCouldBeConstant{}, `contract X { uint256 fee; }`+"\n")
	if n != 0 {
		t.Fatalf("expected 0 issues, got %d", n)
	}
}
