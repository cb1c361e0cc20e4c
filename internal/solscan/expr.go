package solscan

import "github.com/solguard/solguard/ast"

// Expression parsing: a small precedence-climbing parser covering the
// operators this rule library's checks actually inspect (equality,
// logical, relational, additive, multiplicative, member access, calls).

func (p *parser) parseExpression() *ast.Node {
	return p.parseAssignment()
}

func (p *parser) parseAssignment() *ast.Node {
	start := p.cur().pos
	left := p.parseLogicalOr()
	switch p.cur().text {
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=":
		op := p.advance().text
		right := p.parseAssignment()
		return &ast.Node{
			Type: "Assignment",
			Loc:  p.loc(start),
			Fields: map[string]any{
				"__childOrder": []string{"left", "right"},
				"operator":     op,
				"left":         left,
				"right":        right,
			},
		}
	}
	return left
}

func (p *parser) parseLogicalOr() *ast.Node  { return p.parseBinaryLevel(p.parseLogicalAnd, "||") }
func (p *parser) parseLogicalAnd() *ast.Node { return p.parseBinaryLevel(p.parseEquality, "&&") }
func (p *parser) parseEquality() *ast.Node   { return p.parseBinaryLevel(p.parseRelational, "==", "!=") }
func (p *parser) parseRelational() *ast.Node {
	return p.parseBinaryLevel(p.parseAdditive, "<", ">", "<=", ">=")
}
func (p *parser) parseAdditive() *ast.Node { return p.parseBinaryLevel(p.parseMultiplicative, "+", "-") }
func (p *parser) parseMultiplicative() *ast.Node {
	return p.parseBinaryLevel(p.parseUnary, "*", "/", "%", "**")
}

func (p *parser) parseBinaryLevel(next func() *ast.Node, ops ...string) *ast.Node {
	start := p.cur().pos
	left := next()
	for containsOp(ops, p.cur().text) {
		op := p.advance().text
		right := next()
		left = &ast.Node{
			Type: "BinaryOperation",
			Loc:  p.loc(start),
			Fields: map[string]any{
				"__childOrder": []string{"left", "right"},
				"operator":     op,
				"left":         left,
				"right":        right,
			},
		}
	}
	return left
}

func containsOp(ops []string, text string) bool {
	for _, o := range ops {
		if o == text {
			return true
		}
	}
	return false
}

func (p *parser) parseUnary() *ast.Node {
	start := p.cur().pos
	if p.cur().text == "!" || p.cur().text == "-" || p.cur().text == "++" || p.cur().text == "--" || p.cur().text == "delete" {
		op := p.advance().text
		sub := p.parseUnary()
		return &ast.Node{
			Type: "UnaryOperation",
			Loc:  p.loc(start),
			Fields: map[string]any{
				"__childOrder": []string{"sub"},
				"operator":     op,
				"prefix":       true,
				"sub":          sub,
			},
		}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() *ast.Node {
	start := p.cur().pos
	expr := p.parsePrimary()

	for {
		switch {
		case p.is("."):
			p.advance()
			member := ""
			if p.cur().kind == tokIdent {
				member = p.advance().text
			}
			expr = &ast.Node{
				Type: "MemberAccess",
				Loc:  p.loc(start),
				Fields: map[string]any{
					"__childOrder": []string{"expression"},
					"expression":   expr,
					"memberName":   member,
				},
			}
		case p.is("("):
			p.advance()
			var args []*ast.Node
			for !p.atEOF() && !p.is(")") {
				args = append(args, p.parseExpression())
				if p.is(",") {
					p.advance()
				}
			}
			p.expect(")")
			expr = &ast.Node{
				Type: "FunctionCall",
				Loc:  p.loc(start),
				Fields: map[string]any{
					"__childOrder": []string{"expression", "arguments"},
					"expression":   expr,
					"arguments":    args,
				},
			}
		case p.is("["):
			p.advance()
			index := p.parseExpression()
			p.expect("]")
			expr = &ast.Node{
				Type: "IndexAccess",
				Loc:  p.loc(start),
				Fields: map[string]any{
					"__childOrder": []string{"base", "index"},
					"base":         expr,
					"index":        index,
				},
			}
		case p.is("++"), p.is("--"):
			op := p.advance().text
			expr = &ast.Node{
				Type: "UnaryOperation",
				Loc:  p.loc(start),
				Fields: map[string]any{
					"__childOrder": []string{"sub"},
					"operator":     op,
					"prefix":       false,
					"sub":          expr,
				},
			}
		default:
			return expr
		}
	}
}

func (p *parser) parsePrimary() *ast.Node {
	start := p.cur().pos
	t := p.cur()

	switch {
	case t.kind == tokNumber:
		p.advance()
		return &ast.Node{Type: "Literal", Loc: p.loc(start), Fields: map[string]any{"kind": "number", "value": t.text}}
	case t.kind == tokString:
		p.advance()
		return &ast.Node{Type: "Literal", Loc: p.loc(start), Fields: map[string]any{"kind": "string", "value": t.text}}
	case t.text == "true" || t.text == "false":
		p.advance()
		return &ast.Node{Type: "Literal", Loc: p.loc(start), Fields: map[string]any{"kind": "bool", "value": t.text}}
	case t.text == "(":
		p.advance()
		inner := p.parseExpression()
		p.expect(")")
		return inner
	case t.kind == tokIdent:
		p.advance()
		return &ast.Node{Type: "Identifier", Loc: p.loc(start), Fields: map[string]any{"name": t.text}}
	default:
		p.errorf("unexpected token %q in expression", t.text)
		p.advance()
		return &ast.Node{Type: "Identifier", Loc: p.loc(start), Fields: map[string]any{"name": ""}}
	}
}
