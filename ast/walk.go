package ast

import "sort"

// Signal is returned from a Visitor's Enter callback to control traversal.
type Signal int

const (
	// Continue descends into the node's children as usual.
	Continue Signal = iota
	// SkipSubtree suppresses traversal of the node's children; Exit is still
	// called for the node itself
	SkipSubtree
)

// Visitor receives pre-order (Enter) and post-order (Exit) callbacks during
// a Walk. Either callback may be nil; a rule can register only the hook it
// needs rather than a single combined callback.
type Visitor struct {
	Enter func(n, parent *Node) Signal
	Exit  func(n, parent *Node)
}

// Walk performs a depth-first traversal of n, calling v.Enter before
// descending into children and v.Exit after. Traversal follows source order:
// every child field whose value is a *Node or []*Node is visited in the
// order it appears in Fields iteration for array fields (preserved, since
// []*Node is an ordered slice) — map iteration order across distinct field
// *names* is not guaranteed to be source order in general, so concrete
// parsers are expected to additionally expose an explicit child order via
// the "__childOrder" field (a []string of field names) when more than one
// child field exists; fields not named there are visited afterwards in
// lexical key order, so every Walk of the same tree visits fields in the
// same order. Walk never descends into
// the Loc field. Reentrant: a rule may call Walk again from inside a
// callback to inspect a subtree, since Walk holds no package-level state.
func Walk(n *Node, v Visitor) {
	walk(n, nil, v)
}

func walk(n, parent *Node, v Visitor) {
	if n == nil {
		return
	}

	signal := Continue
	if v.Enter != nil {
		signal = v.Enter(n, parent)
	}

	if signal != SkipSubtree {
		for _, key := range orderedFieldKeys(n) {
			switch val := n.Fields[key].(type) {
			case *Node:
				walk(val, n, v)
			case []*Node:
				for _, child := range val {
					walk(child, n, v)
				}
			}
		}
	}

	if v.Exit != nil {
		v.Exit(n, parent)
	}
}

// orderedFieldKeys returns the node's field keys in a stable, deterministic
// order: the explicit "__childOrder" hint first (if the parser supplied
// one as a []string naming which fields hold ordered children), then every
// remaining field key sorted lexically so that repeated walks of the same
// tree always visit fields in the same order.
func orderedFieldKeys(n *Node) []string {
	seen := make(map[string]bool, len(n.Fields))
	var ordered []string

	if hint, ok := n.Fields["__childOrder"].([]string); ok {
		for _, key := range hint {
			if _, exists := n.Fields[key]; exists && !seen[key] {
				ordered = append(ordered, key)
				seen[key] = true
			}
		}
	}

	rest := make([]string, 0, len(n.Fields))
	for key := range n.Fields {
		if key == locationFieldKey || key == "__childOrder" || seen[key] {
			continue
		}
		rest = append(rest, key)
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)
	return ordered
}
