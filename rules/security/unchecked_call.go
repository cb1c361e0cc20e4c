package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// UncheckedCallReturn flags a low-level .call(...) used as a bare
// expression statement: the boolean success value it returns is silently
// discarded instead of being checked with require or an if statement.
type UncheckedCallReturn struct{}

func (UncheckedCallReturn) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/unchecked-call-return",
		Category:       "SECURITY",
		Severity:       "WARNING",
		Title:          "Unchecked low-level call return value",
		Description:    "A low-level call's success value was not checked, so a failed call is silently ignored.",
		Recommendation: "Check the boolean returned by .call(...) with require(...) or an if statement.",
	}
}

func (r UncheckedCallReturn) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "ExpressionStatement" {
				return ast.Continue
			}
			expr, ok := n.Child("expression")
			if !ok {
				return ast.Continue
			}
			if _, _, ok := astutil.CallToMember(expr, "call"); !ok {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Warning,
				Message:  "return value of low-level call is not checked",
			})
			return ast.Continue
		},
	})
	return reportErr
}
