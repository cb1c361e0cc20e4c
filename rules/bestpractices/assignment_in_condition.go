package bestpractices

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// AssignmentInCondition flags an if condition that is itself an
// assignment (`if (a = b)`), almost always a typo for the comparison
// operator `==`. Loop conditions are not checked.
type AssignmentInCondition struct{}

func (AssignmentInCondition) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/assignment-in-condition",
		Category:       "BEST_PRACTICES",
		Severity:       "WARNING",
		Title:          "Assignment used as a condition",
		Description:    "An if condition is itself an assignment, which always evaluates truthy-by-value rather than comparing, and is almost always a typo for ==.",
		Recommendation: "Use == to compare instead of = to assign.",
	}
}

func (r AssignmentInCondition) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "IfStatement" {
				return ast.Continue
			}
			condition, ok := n.Child("condition")
			if !ok || condition.Type != "Assignment" {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(condition.Loc, condition.Type, issue.Draft{
				Category: issue.BestPractices,
				Severity: issue.Warning,
				Message:  "assignment used as an if condition; did you mean ==?",
			})
			return ast.Continue
		},
	})
	return reportErr
}
