// Package security holds rules that flag constructs with a direct,
// well-documented exploit path (authorization bypass, fund drain,
// unrestricted self-destruction).
package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// TxOrigin flags any use of tx.origin as a MemberAccess, the classic
// phishing-via-approval vector: a contract that authorizes based on
// tx.origin trusts the outermost caller rather than msg.sender.
type TxOrigin struct{}

func (TxOrigin) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/tx-origin",
		Category:       "SECURITY",
		Severity:       "ERROR",
		Title:          "Use of tx.origin",
		Description:    "tx.origin is the transaction's outermost sender; using it for authorization lets any contract the victim calls impersonate them.",
		Recommendation: "Use msg.sender instead of tx.origin for authorization checks.",
		Fixable:        true,
	}
}

func (r TxOrigin) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if !astutil.IsMemberOf(n, "tx", "origin") {
				return ast.Continue
			}
			var fix *issue.Fix
			if n.Loc != nil {
				fix = &issue.Fix{Range: *n.Loc, Text: "msg.sender", Description: "replace tx.origin with msg.sender"}
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Error,
				Message:  "avoid tx.origin for authorization; use msg.sender instead",
				Fix:      fix,
			})
			return ast.Continue
		},
	})
	return reportErr
}
