// Package lint holds style and readability rules: constructs that are not
// unsafe but deviate from common Solidity convention.
package lint

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
	"github.com/solguard/solguard/sourceview"
)

// BooleanEquality flags `x == true` / `x == false` (and the != forms),
// which are equivalent to `x` / `!x` and read less directly.
type BooleanEquality struct{}

func (BooleanEquality) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/boolean-equality",
		Category:       "LINT",
		Severity:       "WARNING",
		Title:          "Comparison to a boolean literal",
		Description:    "Comparing an expression to true/false with == or != is equivalent to the expression itself (or its negation) and reads less directly.",
		Recommendation: "Use the expression directly, or negate it with !, instead of comparing to a boolean literal.",
		Fixable:        true,
	}
}

func (r BooleanEquality) Analyze(ctx *rule.Context) error {
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
			if op != "==" && op != "!=" {
				return ast.Continue
			}
			left, _ := n.Child("left")
			right, _ := n.Child("right")

			other, boolValue, ok := boolLiteralSide(left, right)
			if !ok {
				return ast.Continue
			}

			negate := (op == "==" && boolValue == "false") || (op == "!=" && boolValue == "true")
			suggestion := exprText(ctx, other)
			if negate {
				suggestion = "!" + suggestion
			}

			var fix *issue.Fix
			if n.Loc != nil {
				fix = &issue.Fix{Range: *n.Loc, Text: suggestion, Description: "drop the boolean-literal comparison"}
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Warning,
				Message:  "comparison to a boolean literal; use the expression directly",
				Fix:      fix,
			})
			return ast.Continue
		},
	})
	return reportErr
}

// boolLiteralSide returns the non-literal side, the literal's text value,
// and true if exactly one of left/right is a boolean Literal.
func boolLiteralSide(left, right *ast.Node) (other *ast.Node, value string, ok bool) {
	lv, lIsBool := boolLiteralValue(left)
	rv, rIsBool := boolLiteralValue(right)
	switch {
	case lIsBool && !rIsBool:
		return right, lv, true
	case rIsBool && !lIsBool:
		return left, rv, true
	default:
		return nil, "", false
	}
}

func boolLiteralValue(n *ast.Node) (string, bool) {
	if n == nil || n.Type != "Literal" {
		return "", false
	}
	kind, _ := n.String("kind")
	if kind != "bool" {
		return "", false
	}
	v, _ := n.String("value")
	return v, true
}

// exprText renders a simple Identifier/MemberAccess expression as source
// text for a fix suggestion; anything more complex falls back to the
// original source slice for that node's range.
func exprText(ctx *rule.Context, n *ast.Node) string {
	if name, ok := astutil.Identifier(n); ok {
		return name
	}
	if base, member, ok := astutil.MemberAccess(n); ok {
		return exprText(ctx, base) + "." + member
	}
	if n != nil && n.Loc != nil {
		view := sourceview.New(ctx.SourceCode())
		if start, end, ok := view.RangeOffsets(*n.Loc); ok {
			return ctx.SourceCode()[start:end]
		}
	}
	return ""
}
