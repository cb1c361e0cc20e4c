package gas

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// maxRequireMessageLength is the length above which a require/assert
// message string is flagged: every byte of a revert string is deployed
// and charged for, even on the revert path.
const maxRequireMessageLength = 32

// LongRequireMessage flags a require(...) or assert(...) call whose
// string message argument exceeds maxRequireMessageLength characters.
type LongRequireMessage struct{}

func (LongRequireMessage) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/long-require-message",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "Long require/assert message",
		Description:    "A revert string longer than 32 characters adds meaningful bytecode size for a message that a custom error would express far more cheaply.",
		Recommendation: "Shorten the message or switch to a custom error.",
	}
}

func (r LongRequireMessage) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			for _, name := range []string{"require", "assert"} {
				args, ok := astutil.CallToIdentifier(n, name)
				if !ok || len(args) < 2 {
					continue
				}
				msg, isString := astutil.StringLiteral(args[len(args)-1])
				// msg is the literal's source text, including its two quotes.
				if !isString || len(msg)-2 <= maxRequireMessageLength {
					continue
				}
				reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
					Category: issue.Gas,
					Severity: issue.Info,
					Message:  "revert message exceeds 32 characters",
				})
			}
			return ast.Continue
		},
	})
	return reportErr
}
