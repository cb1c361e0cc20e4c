package lint

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// EmptyIfBody flags an if statement whose true branch is an empty block,
// dead code that either hides a missing implementation or should be
// removed.
type EmptyIfBody struct{}

func (EmptyIfBody) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/empty-if-body",
		Category:       "LINT",
		Severity:       "WARNING",
		Title:          "Empty if body",
		Description:    "An if statement's true branch is an empty block, so the condition is evaluated for no effect.",
		Recommendation: "Remove the if statement or fill in its body.",
	}
}

func (r EmptyIfBody) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "IfStatement" {
				return ast.Continue
			}
			trueBody, ok := n.Child("trueBody")
			if !ok || trueBody.Type != "Block" {
				return ast.Continue
			}
			statements, _ := trueBody.Children("statements")
			if len(statements) != 0 {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Warning,
				Message:  "if statement has an empty body",
			})
			return ast.Continue
		},
	})
	return reportErr
}
