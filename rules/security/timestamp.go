package security

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// TimestampDependence flags a comparison operator applied directly to
// block.timestamp (or the "now" alias): miners can nudge a block's
// timestamp within a small tolerance, so using it in a comparison that
// gates value transfer or access control is manipulable.
type TimestampDependence struct{}

func (TimestampDependence) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/timestamp-dependence",
		Category:       "SECURITY",
		Severity:       "WARNING",
		Title:          "Dependence on block.timestamp in a comparison",
		Description:    "block.timestamp is set by the block's miner within a small tolerance and should not gate security-relevant decisions precisely.",
		Recommendation: "Avoid exact timestamp comparisons; use a tolerance window or a block-number-based check instead.",
	}
}

var comparisonOps = map[string]bool{"==": true, "<": true, "<=": true, ">": true, ">=": true}

func (r TimestampDependence) Analyze(ctx *rule.Context) error {
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
			if !comparisonOps[op] {
				return ast.Continue
			}
			left, _ := n.Child("left")
			right, _ := n.Child("right")
			if !usesTimestamp(left) && !usesTimestamp(right) {
				return ast.Continue
			}
			reportErr = ctx.ReportAt(n.Loc, n.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Warning,
				Message:  "comparison depends on block.timestamp",
			})
			return ast.Continue
		},
	})
	return reportErr
}

func usesTimestamp(n *ast.Node) bool {
	if astutil.IsIdentifierNamed(n, "now") {
		return true
	}
	return astutil.IsMemberOf(n, "block", "timestamp")
}
