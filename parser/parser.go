// Package parser defines the external Solidity-grammar-parser interface the
// engine consumes and ships one reference implementation so the engine can
// be exercised without a production Solidity compiler wired in.
package parser

import "github.com/solguard/solguard/ast"

// Options controls how Parse behaves: tolerant parsing that still returns
// a best-effort AST on partial failure, and 1-based-line/0-based-column
// locations.
type Options struct {
	Tolerant      bool
	WithLocations bool
}

// Result is what Parse returns: a best-effort root node plus any errors
// encountered. Errors does not imply Root is nil — a file is only treated
// as parse-failed when there are errors AND no usable AST.
type Result struct {
	Root   *ast.Node
	Errors []string
}

// Parser is the external collaborator the engine calls once per file.
type Parser interface {
	Parse(source string, opts Options) (Result, error)
}
