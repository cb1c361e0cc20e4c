// Package solscan is a small, tolerant tokenizer/parser for a practical
// subset of Solidity syntax. It backs the reference parser.Parser
// implementation (package parser) used by tests and the cmd/solguard demo;
// it is explicitly NOT a production Solidity grammar — a real Solidity
// compiler front end is an external collaborator this engine is designed
// to plug into, not something this module implements.
package solscan

import (
	"strings"

	"github.com/solguard/solguard/sourceview"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  sourceview.Position
}

var multiCharPuncts = []string{
	"**", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "=>",
}

// tokenize scans source into a flat token list, tracking 1-based line and
// 0-based column to match the position convention the rest of the module
// uses.
func tokenize(source string) []token {
	var tokens []token
	line, col := 1, 0
	i := 0
	n := len(source)

	advance := func(delta int) {
		for k := 0; k < delta; k++ {
			if source[i+k] == '\n' {
				line++
				col = 0
			} else {
				col++
			}
		}
		i += delta
	}

	for i < n {
		c := source[i]

		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			advance(1)
			continue
		}

		if c == '/' && i+1 < n && source[i+1] == '/' {
			for i < n && source[i] != '\n' {
				advance(1)
			}
			continue
		}
		if c == '/' && i+1 < n && source[i+1] == '*' {
			advance(2)
			for i < n && !(source[i] == '*' && i+1 < n && source[i+1] == '/') {
				advance(1)
			}
			if i < n {
				advance(2)
			}
			continue
		}

		start := sourceview.Position{Line: line, Column: col}

		if isIdentStart(c) {
			j := i
			for j < n && isIdentPart(source[j]) {
				j++
			}
			tokens = append(tokens, token{kind: tokIdent, text: source[i:j], pos: start})
			advance(j - i)
			continue
		}

		if isDigit(c) {
			j := i
			for j < n && (isDigit(source[j]) || source[j] == '.' || source[j] == 'x' || source[j] == 'X' || isHex(source[j])) {
				j++
			}
			tokens = append(tokens, token{kind: tokNumber, text: source[i:j], pos: start})
			advance(j - i)
			continue
		}

		if c == '"' || c == '\'' {
			quote := c
			j := i + 1
			for j < n && source[j] != quote {
				if source[j] == '\\' && j+1 < n {
					j++
				}
				j++
			}
			end := j
			if end < n {
				end++
			}
			tokens = append(tokens, token{kind: tokString, text: source[i:end], pos: start})
			advance(end - i)
			continue
		}

		matched := false
		for _, p := range multiCharPuncts {
			if strings.HasPrefix(source[i:], p) {
				tokens = append(tokens, token{kind: tokPunct, text: p, pos: start})
				advance(len(p))
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		tokens = append(tokens, token{kind: tokPunct, text: string(c), pos: start})
		advance(1)
	}

	tokens = append(tokens, token{kind: tokEOF, text: "", pos: sourceview.Position{Line: line, Column: col}})
	return tokens
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
