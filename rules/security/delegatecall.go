package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// DelegatecallUntrusted flags every use of .delegatecall(...): it runs
// the target's code in the caller's storage context, so an untrusted or
// mutable target can corrupt arbitrary storage slots.
type DelegatecallUntrusted struct{}

func (DelegatecallUntrusted) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/delegatecall-to-untrusted",
		Category:       "SECURITY",
		Severity:       "WARNING",
		Title:          "delegatecall to a runtime-determined address",
		Description:    "delegatecall executes callee code against the caller's storage layout; an untrusted or upgradeable target can overwrite arbitrary state.",
		Recommendation: "Restrict delegatecall targets to an immutable, audited address, or avoid delegatecall entirely.",
	}
}

func (r DelegatecallUntrusted) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if _, _, ok := astutil.CallToMember(n, "delegatecall"); !ok {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Warning,
				Message:  "delegatecall target should be an immutable, audited address",
			})
			return ast.Continue
		},
	})
	return reportErr
}
