package gas

import (
	"strings"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
)

// CacheArrayLengthInLoop flags a for-loop header that reads `.length`
// directly in its condition, a storage read repeated once per iteration
// that could be cached in a local variable before the loop.
type CacheArrayLengthInLoop struct{}

func (CacheArrayLengthInLoop) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/cache-array-length-in-loop",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "Array length read on every loop iteration",
		Description:    "A for-loop condition reads array.length directly, re-reading storage (or recomputing) on every iteration.",
		Recommendation: "Cache the length in a local variable before the loop and compare against that.",
	}
}

func (r CacheArrayLengthInLoop) Analyze(ctx *rule.Context) error {
	var reportErr error
	ast.Walk(ctx.AST(), ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if reportErr != nil {
				return ast.SkipSubtree
			}
			if n.Type != "ForStatement" {
				return ast.Continue
			}
			header, _ := n.String("header")
			// The parser stores the header as space-separated tokens
			// ("items . length"), so compare with the spaces removed.
			if !strings.Contains(strings.ReplaceAll(header, " ", ""), ".length") {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "cache array length in a local variable before the loop",
			})
			return ast.Continue
		},
	})
	return reportErr
}
