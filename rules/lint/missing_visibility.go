package lint

import (
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// MissingVisibility flags a function with no explicit visibility
// specifier, other than constructor/fallback/receive which carry their
// own implicit rules.
type MissingVisibility struct{}

func (MissingVisibility) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/missing-visibility",
		Category:       "LINT",
		Severity:       "WARNING",
		Title:          "Function has no explicit visibility",
		Description:    "A function with no visibility specifier defaults to public, which is easy to overlook when auditing for unintended entry points.",
		Recommendation: "Specify public, external, internal, or private explicitly.",
	}
}

func (r MissingVisibility) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			name, _ := fn.String("name")
			if specialFunctionNames[name] {
				continue
			}
			visibility, _ := fn.String("visibility")
			if visibility != "" {
				continue
			}
			if err := ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Warning,
				Message:  "function \"" + name + "\" has no explicit visibility",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
