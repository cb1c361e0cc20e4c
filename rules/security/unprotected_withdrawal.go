package security

import (
	"strings"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// UnprotectedWithdrawal flags a publicly reachable function whose name
// suggests it moves funds out of the contract ("withdraw", "claim",
// "sweep") but declares no access-control modifier.
type UnprotectedWithdrawal struct{}

func (UnprotectedWithdrawal) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "security/unprotected-ether-withdrawal",
		Category:       "SECURITY",
		Severity:       "ERROR",
		Title:          "Unprotected ether withdrawal",
		Description:    "A function named like a withdrawal path is public/external with no access-control modifier.",
		Recommendation: "Add an owner- or role-based modifier, or validate the caller explicitly before transferring funds.",
	}
}

var withdrawalNames = []string{"withdraw", "claim", "sweep"}

func (r UnprotectedWithdrawal) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			name, _ := fn.String("name")
			visibility, _ := fn.String("visibility")
			if !looksLikeWithdrawal(name) {
				continue
			}
			if visibility != "public" && visibility != "external" && visibility != "" {
				continue
			}
			if astutil.HasModifiers(fn) {
				continue
			}
			if err := ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
				Category: issue.Security,
				Severity: issue.Error,
				Message:  "function \"" + name + "\" moves funds but has no access-control modifier",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func looksLikeWithdrawal(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range withdrawalNames {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
