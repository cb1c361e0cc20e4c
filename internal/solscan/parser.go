package solscan

import (
	"fmt"

	"github.com/solguard/solguard/ast"
	"github.com/solguard/solguard/sourceview"
)

// Result is the outcome of a tolerant parse: a best-effort root plus any
// recovery errors encountered along the way.
type Result struct {
	Root   *ast.Node
	Errors []string
}

// Parse tokenizes and parses source into a best-effort AST, recovering from
// syntax errors at statement/declaration boundaries rather than aborting.
func Parse(source string) Result {
	p := &parser{tokens: tokenize(source)}
	root := p.parseSourceUnit()
	return Result{Root: root, Errors: p.errors}
}

type parser struct {
	tokens []token
	pos    int
	errors []string
}

func (p *parser) cur() token  { return p.tokens[p.pos] }
func (p *parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) is(text string) bool {
	t := p.cur()
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

func (p *parser) expect(text string) bool {
	if p.is(text) {
		p.advance()
		return true
	}
	p.errorf("expected %q, found %q", text, p.cur().text)
	return false
}

func (p *parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf("%d:%d: %s", p.cur().pos.Line, p.cur().pos.Column, fmt.Sprintf(format, args...)))
}

func rangeFrom(start, end sourceview.Position) *sourceview.Range {
	return &sourceview.Range{Start: start, End: end}
}

func (p *parser) loc(start sourceview.Position) *sourceview.Range {
	return rangeFrom(start, p.cur().pos)
}

// skipBalanced consumes tokens until the matching close for the already-open
// punctuation pair; used for recovery and for constructs this grammar
// subset doesn't model in detail (e.g. parameter lists, for-loop headers).
func (p *parser) skipBalanced(open, close string) string {
	depth := 1
	startTok := p.pos
	for !p.atEOF() && depth > 0 {
		if p.is(open) {
			depth++
		} else if p.is(close) {
			depth--
			if depth == 0 {
				break
			}
		}
		p.advance()
	}
	text := ""
	for i := startTok; i < p.pos; i++ {
		text += p.tokens[i].text + " "
	}
	if p.is(close) {
		p.advance()
	}
	return text
}

// recoverToStatementEnd skips tokens until a ';' or a brace boundary, so one
// malformed statement doesn't poison the rest of the file.
func (p *parser) recoverToStatementEnd() {
	depth := 0
	for !p.atEOF() {
		if p.is("{") {
			depth++
		} else if p.is("}") {
			if depth == 0 {
				return
			}
			depth--
		} else if p.is(";") && depth == 0 {
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *parser) parseSourceUnit() *ast.Node {
	start := p.cur().pos
	var nodes []*ast.Node

	for !p.atEOF() {
		switch {
		case p.is("pragma"):
			nodes = append(nodes, p.parsePragma())
		case p.is("import"):
			p.recoverToStatementEnd()
		case p.is("contract"), p.is("interface"), p.is("library"), p.is("abstract"):
			nodes = append(nodes, p.parseContract())
		default:
			if p.atEOF() {
				break
			}
			p.errorf("unexpected top-level token %q", p.cur().text)
			p.advance()
		}
	}

	return &ast.Node{
		Type: "SourceUnit",
		Loc:  p.loc(start),
		Fields: map[string]any{
			"__childOrder": []string{"nodes"},
			"nodes":        nodes,
		},
	}
}

func (p *parser) parsePragma() *ast.Node {
	start := p.cur().pos
	p.expect("pragma")
	text := ""
	for !p.atEOF() && !p.is(";") {
		text += p.advance().text + " "
	}
	if p.is(";") {
		p.advance()
	}
	return &ast.Node{Type: "PragmaDirective", Loc: p.loc(start), Fields: map[string]any{"text": text}}
}

func (p *parser) parseContract() *ast.Node {
	start := p.cur().pos
	if p.is("abstract") {
		p.advance()
	}
	kind := p.advance().text // contract | interface | library
	name := ""
	if p.cur().kind == tokIdent {
		name = p.advance().text
	}
	for !p.atEOF() && !p.is("{") {
		// skip "is Base1, Base2" inheritance list and anything else before '{'
		p.advance()
	}
	var body []*ast.Node
	if p.expect("{") {
		for !p.atEOF() && !p.is("}") {
			body = append(body, p.parseContractMember())
		}
		p.expect("}")
	}
	return &ast.Node{
		Type: "ContractDefinition",
		Loc:  p.loc(start),
		Fields: map[string]any{
			"__childOrder": []string{"body"},
			"name":         name,
			"kind":         kind,
			"body":         body,
		},
	}
}

func (p *parser) parseContractMember() *ast.Node {
	switch {
	case p.is("function"), p.is("constructor"), p.is("fallback"), p.is("receive"):
		return p.parseFunctionDefinition()
	case p.is("modifier"):
		return p.parseModifierDefinition()
	case p.is("event"):
		start := p.cur().pos
		p.advance()
		name := ""
		if p.cur().kind == tokIdent {
			name = p.advance().text
		}
		if p.is("(") {
			p.advance()
			p.skipBalanced("(", ")")
		}
		p.recoverToStatementEnd()
		return &ast.Node{Type: "EventDefinition", Loc: p.loc(start), Fields: map[string]any{"name": name}}
	case p.is("struct"), p.is("enum"):
		start := p.cur().pos
		kind := p.advance().text
		name := ""
		if p.cur().kind == tokIdent {
			name = p.advance().text
		}
		if p.is("{") {
			p.advance()
			p.skipBalanced("{", "}")
		}
		return &ast.Node{Type: "TypeDefinition", Loc: p.loc(start), Fields: map[string]any{"kind": kind, "name": name}}
	case p.is("using"):
		p.recoverToStatementEnd()
		return &ast.Node{Type: "UsingDirective"}
	default:
		return p.parseStateVariableDeclaration()
	}
}

func (p *parser) parseModifierDefinition() *ast.Node {
	start := p.cur().pos
	p.expect("modifier")
	name := ""
	if p.cur().kind == tokIdent {
		name = p.advance().text
	}
	if p.is("(") {
		p.advance()
		p.skipBalanced("(", ")")
	}
	var body *ast.Node
	for !p.atEOF() && !p.is("{") && !p.is(";") {
		p.advance()
	}
	if p.is("{") {
		body = p.parseBlock()
	} else if p.is(";") {
		p.advance()
	}
	fields := map[string]any{"name": name}
	if body != nil {
		fields["__childOrder"] = []string{"body"}
		fields["body"] = body
	}
	return &ast.Node{Type: "ModifierDefinition", Loc: p.loc(start), Fields: fields}
}

func (p *parser) parseStateVariableDeclaration() *ast.Node {
	start := p.cur().pos
	typeName := ""
	for !p.atEOF() && !p.is("=") && !p.is(";") && p.cur().kind == tokIdent {
		if typeName != "" {
			typeName += " "
		}
		typeName += p.cur().text
		save := p.pos
		p.advance()
		// the last identifier before '=' or ';' is the variable name; back up
		if p.is("=") || p.is(";") {
			p.pos = save
			break
		}
	}
	name := ""
	if p.cur().kind == tokIdent {
		name = p.advance().text
	}
	var value *ast.Node
	if p.is("=") {
		p.advance()
		value = p.parseExpression()
	}
	p.recoverToStatementEnd()

	fields := map[string]any{"typeName": typeName, "name": name}
	if value != nil {
		fields["__childOrder"] = []string{"value"}
		fields["value"] = value
	}
	return &ast.Node{Type: "StateVariableDeclaration", Loc: p.loc(start), Fields: fields}
}

func (p *parser) parseFunctionDefinition() *ast.Node {
	start := p.cur().pos
	kindTok := p.advance() // function | constructor | fallback | receive
	name := ""
	if kindTok.text == "function" && p.cur().kind == tokIdent {
		name = p.advance().text
	} else {
		name = kindTok.text
	}

	if p.is("(") {
		p.advance()
		p.skipBalanced("(", ")")
	}

	visibility := ""
	mutability := ""
	var modifiers []string
	for !p.atEOF() && !p.is("{") && !p.is(";") {
		switch p.cur().text {
		case "public", "private", "internal", "external":
			visibility = p.advance().text
		case "view", "pure", "payable", "nonpayable":
			mutability = p.advance().text
		case "virtual", "override":
			p.advance()
		case "returns":
			p.advance()
			if p.is("(") {
				p.advance()
				p.skipBalanced("(", ")")
			}
		default:
			if p.cur().kind == tokIdent {
				modifiers = append(modifiers, p.advance().text)
			} else {
				p.advance()
			}
		}
	}

	var body *ast.Node
	if p.is("{") {
		body = p.parseBlock()
	} else if p.is(";") {
		p.advance()
	}

	fields := map[string]any{
		"name":       name,
		"visibility": visibility,
		"mutability": mutability,
		"modifiers":  modifiers,
	}
	if body != nil {
		fields["__childOrder"] = []string{"body"}
		fields["body"] = body
	}
	return &ast.Node{Type: "FunctionDefinition", Loc: p.loc(start), Fields: fields}
}

func (p *parser) parseBlock() *ast.Node {
	start := p.cur().pos
	p.expect("{")
	var statements []*ast.Node
	for !p.atEOF() && !p.is("}") {
		before := p.pos
		statements = append(statements, p.parseStatement())
		if p.pos == before {
			// guard against infinite loops on unexpected input
			p.advance()
		}
	}
	p.expect("}")
	return &ast.Node{
		Type: "Block",
		Loc:  p.loc(start),
		Fields: map[string]any{
			"__childOrder": []string{"statements"},
			"statements":   statements,
		},
	}
}

func (p *parser) parseStatement() *ast.Node {
	start := p.cur().pos
	switch {
	case p.is("{"):
		return p.parseBlock()
	case p.is("if"):
		return p.parseIfStatement()
	case p.is("for"), p.is("while"):
		return p.parseLoopStatement()
	case p.is("return"):
		p.advance()
		var value *ast.Node
		if !p.is(";") {
			value = p.parseExpression()
		}
		p.recoverToStatementEnd()
		fields := map[string]any{}
		if value != nil {
			fields["__childOrder"] = []string{"expression"}
			fields["expression"] = value
		}
		return &ast.Node{Type: "ReturnStatement", Loc: p.loc(start), Fields: fields}
	case p.looksLikeVariableDeclaration():
		return p.parseVariableDeclarationStatement()
	default:
		expr := p.parseExpression()
		p.recoverToStatementEnd()
		return &ast.Node{
			Type: "ExpressionStatement",
			Loc:  p.loc(start),
			Fields: map[string]any{
				"__childOrder": []string{"expression"},
				"expression":   expr,
			},
		}
	}
}

func (p *parser) looksLikeVariableDeclaration() bool {
	if p.cur().kind != tokIdent {
		return false
	}
	switch p.cur().text {
	case "uint", "int", "uint256", "int256", "bool", "address", "string", "bytes", "bytes32", "mapping":
		return true
	}
	return false
}

func (p *parser) parseVariableDeclarationStatement() *ast.Node {
	start := p.cur().pos
	typeName := p.advance().text
	for p.is("[") {
		p.advance()
		p.skipBalanced("[", "]")
		typeName += "[]"
	}
	for p.cur().kind == tokIdent && (p.cur().text == "memory" || p.cur().text == "storage" || p.cur().text == "calldata") {
		p.advance()
	}
	name := ""
	if p.cur().kind == tokIdent {
		name = p.advance().text
	}
	var value *ast.Node
	if p.is("=") {
		p.advance()
		value = p.parseExpression()
	}
	p.recoverToStatementEnd()
	fields := map[string]any{"typeName": typeName, "name": name}
	if value != nil {
		fields["__childOrder"] = []string{"value"}
		fields["value"] = value
	}
	return &ast.Node{Type: "VariableDeclarationStatement", Loc: p.loc(start), Fields: fields}
}

func (p *parser) parseIfStatement() *ast.Node {
	start := p.cur().pos
	p.expect("if")
	var condition *ast.Node
	if p.expect("(") {
		condition = p.parseExpression()
		p.expect(")")
	}
	trueBody := p.parseStatement()
	var falseBody *ast.Node
	if p.is("else") {
		p.advance()
		falseBody = p.parseStatement()
	}
	fields := map[string]any{"__childOrder": []string{"condition", "trueBody", "falseBody"}}
	if condition != nil {
		fields["condition"] = condition
	}
	fields["trueBody"] = trueBody
	if falseBody != nil {
		fields["falseBody"] = falseBody
	}
	return &ast.Node{Type: "IfStatement", Loc: p.loc(start), Fields: fields}
}

func (p *parser) parseLoopStatement() *ast.Node {
	start := p.cur().pos
	kind := p.advance().text
	header := ""
	if p.is("(") {
		p.advance()
		header = p.skipBalanced("(", ")")
	}
	body := p.parseStatement()
	nodeType := "WhileStatement"
	if kind == "for" {
		nodeType = "ForStatement"
	}
	return &ast.Node{
		Type: nodeType,
		Loc:  p.loc(start),
		Fields: map[string]any{
			"__childOrder": []string{"body"},
			"header":       header,
			"body":         body,
		},
	}
}
