package gas

import (
	"strings"

	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// StateVariableCouldBeConstant flags a state variable declared with a
// literal initializer, a strong hint it never changes and could be
// declared constant, moving it out of storage entirely.
type StateVariableCouldBeConstant struct{}

func (StateVariableCouldBeConstant) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "gas/state-variable-could-be-constant",
		Category:       "GAS",
		Severity:       "INFO",
		Title:          "State variable could be constant",
		Description:    "A state variable is initialized with a literal, suggesting it could be constant rather than stored; whether it is reassigned elsewhere is not checked.",
		Recommendation: "Declare the variable constant if its value never changes after deployment.",
	}
}

func (r StateVariableCouldBeConstant) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		body, _ := contract.Children("body")
		for _, member := range body {
			if member.Type != "StateVariableDeclaration" {
				continue
			}
			typeName, _ := member.String("typeName")
			if strings.Contains(typeName, "constant") || strings.Contains(typeName, "immutable") || strings.Contains(typeName, "mapping") {
				continue
			}
			value, hasValue := member.Child("value")
			if !hasValue {
				continue
			}
			if _, isLiteral := astutil.NumberLiteral(value); !isLiteral {
				if _, isString := astutil.StringLiteral(value); !isString {
					continue
				}
			}
			name, _ := member.String("name")
			if err := ctx.ReportAt(member.Loc, member.Type, issue.Draft{
				Category: issue.Gas,
				Severity: issue.Info,
				Message:  "state variable \"" + name + "\" is initialized with a literal; consider declaring it constant",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
