package gas

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// ExternalOverPublic flags a public function whose body never references
// `this`, a signal that it is never called internally and so could be
// declared external, saving the copy-to-memory cost incurred by public
// calldata parameters.
type ExternalOverPublic struct{}

func (ExternalOverPublic) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/use-external-over-public",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "Public function could be external",
		Description:    "A public function that is never referenced via `this` is typically only called externally, and external functions avoid copying calldata arguments to memory.",
		Recommendation: "Declare the function external instead of public if it is never called internally.",
	}
}

func (r ExternalOverPublic) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			visibility, _ := fn.String("visibility")
			if visibility != "public" {
				continue
			}
			body, ok := fn.Child("body")
			if !ok || referencesThis(body) {
				continue
			}
			if err := ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "function could be external instead of public",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func referencesThis(n *ast.Node) bool {
	found := false
	ast.Walk(n, ast.Visitor{
		Enter: func(n, _ *ast.Node) ast.Signal {
			if astutil.IsIdentifierNamed(n, "this") {
				found = true
			}
			return ast.Continue
		},
	})
	return found
}
