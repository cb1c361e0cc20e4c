package astutil

import (
	"testing"

	"github.com/solguard/solguard/internal/solscan"
)

func parse(t *testing.T, src string) *solscan.Result {
	t.Helper()
	res := solscan.Parse(src)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected parse errors: %v", res.Errors)
	}
	return &res
}

func TestIsMemberOfMatchesTxOrigin(t *testing.T) {
	res := parse(t, "contract X { function f() public { require(tx.origin == msg.sender); } }\n")
	var found bool
	contracts := ContractsIn(res.Root)
	fns := FunctionsIn(contracts[0])
	body, _ := fns[0].Child("body")
	stmts, _ := body.Children("statements")
	exprStmt := stmts[0]
	call, _ := exprStmt.Child("expression")
	args, ok := CallToIdentifier(call, "require")
	if !ok || len(args) != 1 {
		t.Fatalf("expected a require(...) call with 1 argument")
	}
	cmp := args[0]
	left, _ := cmp.Child("left")
	if IsMemberOf(left, "tx", "origin") {
		found = true
	}
	if !found {
		t.Fatalf("expected tx.origin to be recognized as a MemberAccess of tx")
	}
}

func TestCasingHelpers(t *testing.T) {
	if !IsPascalCase("MyContract") || IsPascalCase("myContract") || IsPascalCase("") {
		t.Fatalf("IsPascalCase misbehaved")
	}
	if !IsCamelCase("myFunction") || IsCamelCase("MyFunction") || IsCamelCase("my_function") {
		t.Fatalf("IsCamelCase misbehaved")
	}
}
