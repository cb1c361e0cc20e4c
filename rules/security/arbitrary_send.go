package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// ArbitrarySend flags ether sent via .call/.send/.transfer to a bare
// identifier receiver, as opposed to a member access such as msg.sender —
// a common pattern for "send to caller-controlled address" fund-drain bugs.
// Locals, parameters, and state variables are not told apart: any bare
// identifier receiver is flagged.
type ArbitrarySend struct{}

func (ArbitrarySend) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/arbitrary-send",
		Category:       "SECURITY",
		Severity:       "WARNING",
		Title:          "Sending ether to a caller-influenced address",
		Description:    "Ether is transferred to an address held in a plain variable rather than a fixed or validated recipient such as msg.sender.",
		Recommendation: "Validate the recipient address before transferring funds to it.",
	}
}

func (r ArbitrarySend) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			receiver, _, ok := astutil.CallToMember(n, "call", "send", "transfer")
			if !ok {
				return ast.Continue
			}
			name, isIdent := astutil.Identifier(receiver)
			if !isIdent || name == "msg" {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Warning,
				Message:  "sending ether to \"" + name + "\"; confirm this recipient is validated",
			})
			return ast.Continue
		},
	})
	return reportErr
}
