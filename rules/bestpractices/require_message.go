package bestpractices

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// RequireWithoutMessage flags a require(...) call with a single argument,
// meaning a failure reverts with no explanation of what went wrong.
type RequireWithoutMessage struct{}

func (RequireWithoutMessage) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/require-without-message",
		Category:       "BEST_PRACTICES",
		Severity:       "INFO",
		Title:          "require without a failure message",
		Description:    "A require(...) call with a single argument reverts with no explanation, making failures harder to diagnose off-chain.",
		Recommendation: "Add a short message describing what condition failed.",
	}
}

func (r RequireWithoutMessage) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			args, ok := astutil.CallToIdentifier(n, "require")
			if !ok || len(args) != 1 {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.BestPractices,
				Severity: issue.Info,
				Message:  "require has no failure message",
			})
			return ast.Continue
		},
	})
	return reportErr
}
