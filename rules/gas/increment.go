// Package gas holds rules that flag constructs with a needless runtime-gas
// cost rather than a correctness risk.
package gas

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// IncrementByOne flags a postfix increment/decrement (i++, i--) used as a
// bare statement, where the discarded pre-increment value makes the
// prefix form (++i, --i) strictly cheaper.
type IncrementByOne struct{}

func (IncrementByOne) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/increment-by-one",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "Postfix increment where prefix would do",
		Description:    "i++ evaluates and discards the pre-increment value; as a standalone statement, ++i produces the same effect for less gas.",
		Recommendation: "Replace standalone i++ / i-- with ++i / --i.",
		Fixable:        true,
	}
}

func (r IncrementByOne) Analyze(ctx *rule.Context) error {
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
			if !ok || expr.Type != "UnaryOperation" {
				return ast.Continue
			}
			prefix, _ := expr.Bool("prefix")
			op, _ := expr.String("operator")
			if prefix || (op != "++" && op != "--") {
				return ast.Continue
			}
			var fix *issue.Fix
			if sub, ok := expr.Child("sub"); ok && sub.Loc != nil && expr.Loc != nil {
				name, _ := sub.String("name")
				fix = &issue.Fix{Range: *expr.Loc, Text: op + name, Description: "use prefix form"}
			}
			reportErr = ctx.ReportAt(expr.Loc, expr.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "use prefix " + op + " instead of postfix when the result is discarded",
				Fix:      fix,
			})
			return ast.Continue
		},
	})
	return reportErr
}
