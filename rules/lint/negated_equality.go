package lint

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// NegatedEquality flags `!(a == b)`, which reads less directly than the
// equivalent `a != b`.
type NegatedEquality struct{}

func (NegatedEquality) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/negated-equality",
		Category:       "LINT",
		Severity:       "INFO",
		Title:          "Negation of an equality comparison",
		Description:    "!(a == b) is equivalent to a != b and reads less directly.",
		Recommendation: "Use != directly instead of negating ==.",
	}
}

func (r NegatedEquality) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "UnaryOperation" {
				return ast.Continue
			}
			op, _ := n.String("operator")
			if op != "!" {
				return ast.Continue
			}
			sub, ok := n.Child("sub")
			if !ok || sub.Type != "BinaryOperation" {
				return ast.Continue
			}
			subOp, _ := sub.String("operator")
			if subOp != "==" {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Info,
				Message:  "use != instead of negating ==",
			})
			return ast.Continue
		},
	})
	return reportErr
}
