// Package ast models the externally-produced Solidity abstract syntax tree
// as an opaque, read-only value. The engine never mutates a Node once the
// parser has returned it.
package ast

import "github.com/solguard/solguard/sourceview"

// Node is a single AST node. The concrete grammar lives outside this
// module; Node models the shape every parser output must conform to: a
// type tag, an optional source location, and a bag of fields whose values
// may be scalars, other *Node values, or []*Node slices.
//
// Rules should prefer the small capability accessors below (Type, Loc,
// Child, Children) over reaching into Fields directly.
type Node struct {
	Type   string
	Loc    *sourceview.Range
	Fields map[string]any
}

// Child returns the *Node stored under key, if any.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n.Fields[key]
	if !ok {
		return nil, false
	}
	child, ok := v.(*Node)
	return child, ok
}

// Children returns the []*Node stored under key, if any.
func (n *Node) Children(key string) ([]*Node, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := n.Fields[key]
	if !ok {
		return nil, false
	}
	children, ok := v.([]*Node)
	return children, ok
}

// String returns a scalar string field, if present.
func (n *Node) String(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Fields[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns a scalar bool field, if present.
func (n *Node) Bool(key string) (bool, bool) {
	if n == nil {
		return false, false
	}
	v, ok := n.Fields[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// locationFieldKey names a field Walk never descends into: a *Range stored here is
// metadata about n, not a child node, even though it happens to be a struct
// value reachable from Fields.
const locationFieldKey = "loc"
