package bestpractices

import (
	"strings"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// FloatingPragma flags a solidity pragma that allows a range of compiler
// versions (using ^ or >=) rather than pinning to one, which means
// different deployments of "the same" contract can end up compiled with
// different compiler versions.
type FloatingPragma struct{}

func (FloatingPragma) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/floating-pragma",
		Category:       "BEST_PRACTICES",
		Severity:       "INFO",
		Title:          "Floating pragma version",
		Description:    "A pragma using ^ or >= allows the contract to be compiled with a range of compiler versions, risking different bytecode across deployments.",
		Recommendation: "Pin the pragma to a single compiler version before deploying.",
	}
}

func (r FloatingPragma) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "PragmaDirective" {
				return ast.Continue
			}
			text, _ := n.String("text")
			if !strings.Contains(text, "solidity") {
				return ast.Continue
			}
			if !strings.ContainsAny(text, "^") && !strings.Contains(text, ">=") {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.BestPractices,
				Severity: issue.Info,
				Message:  "pragma allows a range of compiler versions; pin to one before deploying",
			})
			return ast.Continue
		},
	})
	return reportErr
}
