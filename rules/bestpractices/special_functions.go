package bestpractices

import (
	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/issue"
	"github.com/solguard/solguard/rule"
	"github.com/solguard/solguard/rules/astutil"
)

// ConstructorVisibility flags a constructor with an explicit visibility
// specifier, a pattern later compiler versions reject outright since a
// constructor's reachability is no longer a visibility concept.
type ConstructorVisibility struct{}

func (ConstructorVisibility) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/constructor-visibility",
		Category:       "BEST_PRACTICES",
		Severity:       "INFO",
		Title:          "Constructor has an explicit visibility",
		Description:    "Declaring a visibility specifier on a constructor is unnecessary and is rejected entirely by newer compiler versions.",
		Recommendation: "Remove the visibility specifier from the constructor.",
	}
}

func (r ConstructorVisibility) Analyze(ctx *rule.Context) error {
	return forEachFunction(ctx, func(fn *ast.Node) error {
		name, _ := fn.String("name")
		visibility, _ := fn.String("visibility")
		if name != "constructor" || visibility == "" {
			return nil
		}
		return ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
			Category: issue.BestPractices,
			Severity: issue.Info,
			Message:  "constructor does not need an explicit visibility specifier",
		})
	})
}

// FallbackShouldBeExternal flags a fallback function not declared
// external, the only visibility the fallback function can meaningfully
// have since it is only ever invoked from outside the contract.
type FallbackShouldBeExternal struct{}

func (FallbackShouldBeExternal) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/fallback-should-be-external",
		Category:       "BEST_PRACTICES",
		Severity:       "WARNING",
		Title:          "fallback is not external",
		Description:    "The fallback function is only ever invoked via an external message call and should be declared external.",
		Recommendation: "Add the external visibility specifier to the fallback function.",
	}
}

func (r FallbackShouldBeExternal) Analyze(ctx *rule.Context) error {
	return forEachFunction(ctx, func(fn *ast.Node) error {
		name, _ := fn.String("name")
		visibility, _ := fn.String("visibility")
		if name != "fallback" || visibility == "external" {
			return nil
		}
		return ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
			Category: issue.BestPractices,
			Severity: issue.Warning,
			Message:  "fallback function should be declared external",
		})
	})
}

// ReceiveShouldBePayable flags a receive function not declared payable;
// a non-payable receive function can never actually be invoked, since
// receive only runs on a plain ether transfer.
type ReceiveShouldBePayable struct{}

func (ReceiveShouldBePayable) Metadata() rule.Metadata {
	return rule.Metadata{
		ID:             "bestpractices/receive-should-be-payable",
		Category:       "BEST_PRACTICES",
		Severity:       "WARNING",
		Title:          "receive is not payable",
		Description:    "A receive function only ever runs on a plain ether transfer; without payable, it can never be invoked.",
		Recommendation: "Add the payable mutability specifier to the receive function.",
	}
}

func (r ReceiveShouldBePayable) Analyze(ctx *rule.Context) error {
	return forEachFunction(ctx, func(fn *ast.Node) error {
		name, _ := fn.String("name")
		mutability, _ := fn.String("mutability")
		if name != "receive" || mutability == "payable" {
			return nil
		}
		return ctx.ReportAt(fn.Loc, fn.Type, issue.Draft{
			Category: issue.BestPractices,
			Severity: issue.Warning,
			Message:  "receive function should be declared payable",
		})
	})
}

func forEachFunction(ctx *rule.Context, check func(*ast.Node) error) error {
	for _, contract := range astutil.ContractsIn(ctx.AST()) {
		for _, fn := range astutil.FunctionsIn(contract) {
			if err := check(fn); err != nil {
				return err
			}
		}
	}
	return nil
}
