// Package astutil holds small node-matching helpers shared by the rule
// library's subpackages, factored out so each rule file stays a short,
// readable pattern match instead of repeating the same type assertions.
package astutil

import (
	"strings"
	"unicode"

	"github.com/solguard/solguard/ast"
)

// Identifier returns the name of n if it is an Identifier node.
func Identifier(n *ast.Node) (string, bool) {
	if n == nil || n.Type != "Identifier" {
		return "", false
	}
	return n.String("name")
}

// IsIdentifierNamed reports whether n is an Identifier with exactly name.
func IsIdentifierNamed(n *ast.Node, name string) bool {
	got, ok := Identifier(n)
	return ok && got == name
}

// MemberAccess returns (base, memberName, true) if n is a MemberAccess node.
func MemberAccess(n *ast.Node) (base *ast.Node, member string, ok bool) {
	if n == nil || n.Type != "MemberAccess" {
		return nil, "", false
	}
	base, _ = n.Child("expression")
	member, _ = n.String("memberName")
	return base, member, true
}

// IsMemberOf reports whether n is a MemberAccess whose base is an
// Identifier named baseName and whose member is one of members.
func IsMemberOf(n *ast.Node, baseName string, members ...string) bool {
	base, member, ok := MemberAccess(n)
	if !ok || !IsIdentifierNamed(base, baseName) {
		return false
	}
	for _, m := range members {
		if m == member {
			return true
		}
	}
	return false
}

// Call returns (callee, args, true) if n is a FunctionCall node.
func Call(n *ast.Node) (callee *ast.Node, args []*ast.Node, ok bool) {
	if n == nil || n.Type != "FunctionCall" {
		return nil, nil, false
	}
	callee, _ = n.Child("expression")
	args, _ = n.Children("arguments")
	return callee, args, true
}

// CallToMember reports whether n is a FunctionCall whose callee is a
// MemberAccess with member name one of members (regardless of the base
// expression), returning the call's receiver (the MemberAccess's base).
func CallToMember(n *ast.Node, members ...string) (receiver *ast.Node, args []*ast.Node, ok bool) {
	callee, callArgs, isCall := Call(n)
	if !isCall {
		return nil, nil, false
	}
	base, member, isMember := MemberAccess(callee)
	if !isMember {
		return nil, nil, false
	}
	for _, m := range members {
		if m == member {
			return base, callArgs, true
		}
	}
	return nil, nil, false
}

// CallToIdentifier reports whether n is a FunctionCall whose callee is a
// bare Identifier named name (e.g. "require", "revert", "selfdestruct").
func CallToIdentifier(n *ast.Node, name string) (args []*ast.Node, ok bool) {
	callee, callArgs, isCall := Call(n)
	if !isCall {
		return nil, false
	}
	if !IsIdentifierNamed(callee, name) {
		return nil, false
	}
	return callArgs, true
}

// StringLiteral returns the literal text of n if it is a string Literal.
func StringLiteral(n *ast.Node) (string, bool) {
	if n == nil || n.Type != "Literal" {
		return "", false
	}
	kind, _ := n.String("kind")
	if kind != "string" {
		return "", false
	}
	return n.String("value")
}

// NumberLiteral returns the literal text of n if it is a numeric Literal.
func NumberLiteral(n *ast.Node) (string, bool) {
	if n == nil || n.Type != "Literal" {
		return "", false
	}
	kind, _ := n.String("kind")
	if kind != "number" {
		return "", false
	}
	return n.String("value")
}

// IsPascalCase reports whether s starts with an uppercase letter and
// contains no underscores, the conventional Solidity contract/event naming.
func IsPascalCase(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsUpper(r[0]) && !strings.Contains(s, "_")
}

// IsCamelCase reports whether s starts with a lowercase letter and
// contains no underscores, the conventional Solidity function naming.
func IsCamelCase(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsLower(r[0]) && !strings.Contains(s, "_")
}

// FunctionsIn returns every FunctionDefinition node directly in a
// contract's body (not nested — this grammar subset has no nested
// function definitions).
func FunctionsIn(contract *ast.Node) []*ast.Node {
	body, _ := contract.Children("body")
	var out []*ast.Node
	for _, member := range body {
		if member.Type == "FunctionDefinition" {
			out = append(out, member)
		}
	}
	return out
}

// ContractsIn returns every ContractDefinition directly under root.
func ContractsIn(root *ast.Node) []*ast.Node {
	nodes, _ := root.Children("nodes")
	var out []*ast.Node
	for _, n := range nodes {
		if n.Type == "ContractDefinition" {
			out = append(out, n)
		}
	}
	return out
}

// HasModifiers reports whether fn (a FunctionDefinition) applies at least
// one modifier.
func HasModifiers(fn *ast.Node) bool {
	mods, ok := fn.Fields["modifiers"].([]string)
	return ok && len(mods) > 0
}
