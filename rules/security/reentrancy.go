package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// ReentrancyNoEth flags a function whose body performs an external
// low-level call (.call/.send/.delegatecall) and then, in a later
// top-level statement of the same block, writes to storage via an
// assignment — the checks-effects-interactions pattern violated in order.
// This is a statement-order heuristic, not a real data-flow analysis: it
// has no notion of which assignments target storage vs. memory.
type ReentrancyNoEth struct{}

func (ReentrancyNoEth) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/reentrancy-no-eth",
		Category:       "SECURITY",
		Severity:       "WARNING",
		Title:          "Possible reentrancy: state change after external call",
		Description:    "A function calls out to another address and then performs an assignment afterward in the same block, violating checks-effects-interactions.",
		Recommendation: "Perform all state updates before any external call, or guard the function with a reentrancy lock.",
	}
}

func (r ReentrancyNoEth) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			body, ok := fn.Child("body")
			if !ok {
				continue
			}
			if err := checkBlock(ctx, body); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkBlock(ctx *rule.Context, block *ast.Node) error {
	statements, _ := block.Children("statements")
	callIdx := -1
	var callLoc *ast.Node
	for i, stmt := range statements {
		if callIdx == -1 && containsExternalCall(stmt) {
			callIdx = i
			callLoc = stmt
			continue
		}
		if callIdx != -1 && containsAssignment(stmt) {
			return ctx.ReportAt(callLoc.Loc, callLoc.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Warning,
				Message:  "state change after external call; follow checks-effects-interactions",
			})
		}
	}
	return nil
}

func containsExternalCall(n *ast.Node) bool {
	found := false
	ast.Walk(n, ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if _, _, ok := astutil.CallToMember(n, "call", "send", "delegatecall"); ok {
				found = true
			}
			return ast.Continue
		},
	})
	return found
}

func containsAssignment(n *ast.Node) bool {
	found := false
	ast.Walk(n, ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if n.Type == "Assignment" {
				found = true
			}
			return ast.Continue
		},
	})
	return found
}
