// Package bestpractices holds rules that flag constructs which are
// neither unsafe nor unconventional but work against maintainability.
package bestpractices

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

var allowedMagicNumbers = map[string]bool{"0": true, "1": true}

// MagicNumberInComparison flags a numeric literal other than 0 or 1 used
// directly as one side of a comparison, instead of through a named
// constant that documents what the number means.
type MagicNumberInComparison struct{}

func (MagicNumberInComparison) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/magic-number-in-comparison",
		Category:       "BEST_PRACTICES",
		Severity:       "INFO",
		Title:          "Magic number in comparison",
		Description:    "A numeric literal other than 0 or 1 appears directly in a comparison, leaving its meaning to the reader to infer.",
		Recommendation: "Extract the value into a named constant.",
	}
}

func (r MagicNumberInComparison) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "BinaryOperation" {
				return ast.Continue
			}
			op, _ := n.String("operator")
			if !comparisonOps[op] {
				return ast.Continue
			}
			left, _ := n.Child("left")
			right, _ := n.Child("right")
			magic := magicNumberIn(left)
			if magic == nil {
				magic = magicNumberIn(right)
			}
			if magic == nil {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(magic.Loc, magic.Type, issue.Draft{
				Category: issue.BestPractices,
				Severity: issue.Info,
				Message:  "magic number in comparison; extract into a named constant",
			})
			return ast.Continue
		},
	})
	return reportErr
}

var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}

func magicNumberIn(n *ast.Node) *ast.Node {
	value, ok := astutil.NumberLiteral(n)
	if !ok || allowedMagicNumbers[value] {
		return nil
	}
	return n
}
