package lint

import (
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// ContractNamePascalCase flags a contract, interface, or library whose
// name does not start with an uppercase letter or contains an underscore.
type ContractNamePascalCase struct{}

func (ContractNamePascalCase) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/contract-name-pascal-case",
		Category:       "LINT",
		Severity:       "INFO",
		Title:          "Contract name is not PascalCase",
		Description:    "Solidity convention names contracts, interfaces, and libraries in PascalCase.",
		Recommendation: "Rename to start with an uppercase letter, e.g. MyContract.",
	}
}

func (r ContractNamePascalCase) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		name, _ := contract.String("name")
		if name == "" || astutil.IsPascalCase(name) {
			continue
		}
		if err := ctx.ReportAt(contract.Loc, contract.Type, issue.Draft{
			Category: issue.Lint,
			Severity: issue.Info,
			Message:  "\"" + name + "\" should be PascalCase",
		}); err != nil {
			return err
		}
	}
	return nil
}

// FunctionNameCamelCase flags a function (other than constructor,
// fallback, or receive) whose name does not start with a lowercase
// letter or contains an underscore.
type FunctionNameCamelCase struct{}

func (FunctionNameCamelCase) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/function-name-camel-case",
		Category:       "LINT",
		Severity:       "INFO",
		Title:          "Function name is not camelCase",
		Description:    "Solidity convention names functions in camelCase.",
		Recommendation: "Rename to start with a lowercase letter, e.g. doThing.",
	}
}

var specialFunctionNames = map[string]bool{"constructor": true, "fallback": true, "receive": true}

func (r FunctionNameCamelCase) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			name, _ := fn.String("name")
			if name == "" || specialFunctionNames[name] || astutil.IsCamelCase(name) {
				continue
			}
			if err := ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Info,
				Message:  "\"" + name + "\" should be camelCase",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

// EventNamePascalCase flags an event whose name does not start with an
// uppercase letter or contains an underscore.
type EventNamePascalCase struct{}

func (EventNamePascalCase) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "lint/event-name-pascal-case",
		Category:       "LINT",
		Severity:       "INFO",
		Title:          "Event name is not PascalCase",
		Description:    "Solidity convention names events in PascalCase.",
		Recommendation: "Rename to start with an uppercase letter, e.g. Transferred.",
	}
}

func (r EventNamePascalCase) Analyze(ctx *rule.Context) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		body, _ := contract.Children("body")
		for _, member := range body {
			if member.Type != "EventDefinition" {
				continue
			}
			name, _ := member.String("name")
			if name == "" || astutil.IsPascalCase(name) {
				continue
			}
			if err := ctx.ReportAt(member.Loc, member.Type, issue.Draft{
				Category: issue.Lint,
				Severity: issue.Info,
				Message:  "\"" + name + "\" should be PascalCase",
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
