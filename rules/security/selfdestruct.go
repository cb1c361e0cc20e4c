package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// SelfdestructUnprotected flags a call to selfdestruct/suicide inside a
// function that declares no modifiers, meaning any caller can destroy the
// contract and sweep its balance.
type SelfdestructUnprotected struct{}

func (SelfdestructUnprotected) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/selfdestruct-unprotected",
		Category:       "SECURITY",
		Severity:       "ERROR",
		Title:          "Unprotected selfdestruct",
		Description:    "selfdestruct is reachable from a function with no access-control modifier.",
		Recommendation: "Guard selfdestruct with an owner-only modifier.",
	}
}

func (r SelfdestructUnprotected) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			if astutil.HasModifiers(fn) {
				continue
			}
			body, ok := fn.Child("body")
			if !ok {
				continue
			}
			var reportErr error
			ast.Walk(body, ast.Visitor{
				Enter: func(n, _ *ast.Node) ast.Signal {
					if reportErr != nil {
						return ast.SkipSubtree
					}
					if _, ok := astutil.CallToIdentifier(n, "selfdestruct"); !ok {
						if _, ok2 := astutil.CallToIdentifier(n, "suicide"); !ok2 {
							return ast.Continue
						}
					}
					reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
						Category: issue.Security,
						Severity: issue.Error,
						Message:  "selfdestruct callable with no access-control modifier",
					})
					return ast.Continue
				},
			})
			if reportErr != nil {
				return reportErr
			}
		}
	}
	return nil
}
