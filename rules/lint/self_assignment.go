package lint

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// SelfAssignment flags `a = a;`, an assignment whose left and right sides
// are the same bare identifier, almost certainly a typo for something
// else.
type SelfAssignment struct{}

func (SelfAssignment) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/self-assignment",
		Category:       "LINT",
		Severity:       "WARNING",
		Title:          "Variable assigned to itself",
		Description:    "An assignment's left and right sides are the same identifier, which has no effect and usually signals a typo.",
		Recommendation: "Check whether the right-hand side should reference a different variable.",
	}
}

func (r SelfAssignment) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "Assignment" {
				return ast.Continue
			}
			op, _ := n.String("operator")
			if op != "=" {
				return ast.Continue
			}
			left, _ := n.Child("left")
			right, _ := n.Child("right")
			leftName, leftOK := astutil.Identifier(left)
			rightName, rightOK := astutil.Identifier(right)
			if !leftOK || !rightOK || leftName != rightName {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Warning,
				Message:  "\"" + leftName + "\" is assigned to itself",
			})
			return ast.Continue
		},
	})
	return reportErr
}
