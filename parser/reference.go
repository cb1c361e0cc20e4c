package parser

import "github.com/solguard/solguard/internal/solscan"

// Reference is a tolerant parser over a practical subset of Solidity syntax
// (pragmas, contracts/interfaces/libraries, state variables, functions,
// modifiers, events, common statement and expression forms). It is meant
// for tests and the cmd/solguard demo, not production use — a full Solidity
// grammar is its own undertaking and out of scope here.
type Reference struct{}

// NewReference returns the reference Parser implementation.
func NewReference() *Reference { return &Reference{} }

// Parse implements Parser.
func (r *Reference) Parse(source string, _ Options) (Result, error) {
	res := solscan.Parse(source)
	return Result{Root: res.Root, Errors: res.Errors}, nil
}
