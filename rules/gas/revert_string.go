package gas

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// RevertWithString flags revert("...") with a string message, which costs
// more bytecode and more gas on the failure path than a custom error.
type RevertWithString struct{}

func (RevertWithString) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/revert-with-string",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "revert with a string message",
		Description:    "revert(\"message\") stores and emits the full string; a custom error encodes the same information as a 4-byte selector plus arguments.",
		Recommendation: "Define a custom error and revert with it instead of a string literal.",
	}
}

func (r RevertWithString) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			args, ok := astutil.CallToIdentifier(n, "revert")
			if !ok || len(args) != 1 {
				return ast.Continue
			}
			if _, isString := astutil.StringLiteral(args[0]); !isString {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "use a custom error instead of a string message",
			})
			return ast.Continue
		},
	})
	return reportErr
}
