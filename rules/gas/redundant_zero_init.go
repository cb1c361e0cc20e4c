package gas

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// RedundantZeroInitialization flags a local variable declaration
// explicitly initialized to 0, false, or "" — the default value the EVM
// already assigns, so the assignment only adds bytecode.
type RedundantZeroInitialization struct{}

func (RedundantZeroInitialization) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/redundant-zero-initialization",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "Redundant initialization to the default value",
		Description:    "A local variable is explicitly initialized to its type's default value (0, false, or an empty string), which costs bytecode for no behavioral change.",
		Recommendation: "Drop the initializer and rely on the implicit default value.",
	}
}

var zeroLiterals = map[string]bool{"0": true, "false": true}

func (r RedundantZeroInitialization) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "VariableDeclarationStatement" {
				return ast.Continue
			}
			value, hasValue := n.Child("value")
			if !hasValue || !isZeroLiteral(value) {
				return ast.Continue
			}
			name, _ := n.String("name")
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "\"" + name + "\" is redundantly initialized to its default value",
			})
			return ast.Continue
		},
	})
	return reportErr
}

func isZeroLiteral(n *ast.Node) bool {
	if num, ok := astutil.NumberLiteral(n); ok {
		return zeroLiterals[num]
	}
	if s, ok := astutil.StringLiteral(n); ok {
		return s == `""` || s == "''"
	}
	kind, _ := n.String("kind")
	if kind != "bool" {
		return false
	}
	val, _ := n.String("value")
	return val == "false"
}
