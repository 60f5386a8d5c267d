package resolver

import "unicode"

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits an #if expression into the tokens the condition grammar
// understands. Anything else (numbers, comparisons, arithmetic) fails.
func tokenize(expr string) ([]token, bool) {
	var toks []token

	for i := 0; i < len(expr); {
		ch := expr[i]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			i++
		case ch == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case ch == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case ch == '&' && i+1 < len(expr) && expr[i+1] == '&':
			toks = append(toks, token{kind: tokAnd})
			i += 2
		case ch == '|' && i+1 < len(expr) && expr[i+1] == '|':
			toks = append(toks, token{kind: tokOr})
			i += 2
		case ch == '!' && (i+1 >= len(expr) || expr[i+1] != '='):
			toks = append(toks, token{kind: tokNot})
			i++
		case ch == '_' || unicode.IsLetter(rune(ch)):
			start := i
			for i < len(expr) && (expr[i] == '_' || unicode.IsLetter(rune(expr[i])) || unicode.IsDigit(rune(expr[i]))) {
				i++
			}

			toks = append(toks, token{kind: tokIdent, text: expr[start:i]})
		default:
			return nil, false
		}
	}

	return toks, true
}

// condParser is a recursive-descent parser for conditions of the form
//
//	expr := unary { op unary }     (one op kind throughout)
//	unary := '!' unary | primary
//	primary := 'defined' '(' IDENT ')' | 'defined' IDENT | '(' expr ')'
//
// Negation is only accepted directly on a defined term.
type condParser struct {
	toks []token
	pos  int
	comb Combinator
}

// parseCondition returns the flattened terms and the single combinator joining
// them. ok is false when the expression falls outside the grammar, mixes && and
// ||, or negates a parenthesised group.
func parseCondition(expr string) ([]Term, Combinator, bool) {
	toks, ok := tokenize(expr)
	if !ok || len(toks) == 0 {
		return nil, CombNone, false
	}

	p := &condParser{toks: toks}

	terms, ok := p.expr()
	if !ok || p.pos != len(p.toks) {
		return nil, CombNone, false
	}

	return terms, p.comb, true
}

func (p *condParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}

	return p.toks[p.pos], true
}

func (p *condParser) expr() ([]Term, bool) {
	terms, ok := p.unary()
	if !ok {
		return nil, false
	}

	for {
		tok, more := p.peek()
		if !more || (tok.kind != tokAnd && tok.kind != tokOr) {
			return terms, true
		}

		comb := CombAnd
		if tok.kind == tokOr {
			comb = CombOr
		}

		if p.comb != CombNone && p.comb != comb {
			return nil, false
		}

		p.comb = comb
		p.pos++

		next, ok := p.unary()
		if !ok {
			return nil, false
		}

		terms = append(terms, next...)
	}
}

func (p *condParser) unary() ([]Term, bool) {
	tok, ok := p.peek()
	if !ok {
		return nil, false
	}

	if tok.kind != tokNot {
		return p.primary()
	}

	p.pos++

	terms, ok := p.unary()
	if !ok || len(terms) != 1 {
		return nil, false
	}

	terms[0].Negated = !terms[0].Negated

	return terms, true
}

func (p *condParser) primary() ([]Term, bool) {
	tok, ok := p.peek()
	if !ok {
		return nil, false
	}

	switch tok.kind {
	case tokLParen:
		p.pos++

		terms, ok := p.expr()
		if !ok {
			return nil, false
		}

		if closing, ok := p.peek(); !ok || closing.kind != tokRParen {
			return nil, false
		}

		p.pos++

		return terms, true
	case tokIdent:
		if tok.text != "defined" {
			return nil, false
		}

		p.pos++

		return p.definedOperand()
	case tokRParen, tokAnd, tokOr, tokNot:
		return nil, false
	default:
		return nil, false
	}
}

func (p *condParser) definedOperand() ([]Term, bool) {
	tok, ok := p.peek()
	if !ok {
		return nil, false
	}

	if tok.kind == tokIdent {
		p.pos++
		return []Term{{Feature: tok.text}}, true
	}

	if tok.kind != tokLParen {
		return nil, false
	}

	p.pos++

	ident, ok := p.peek()
	if !ok || ident.kind != tokIdent {
		return nil, false
	}

	p.pos++

	if closing, ok := p.peek(); !ok || closing.kind != tokRParen {
		return nil, false
	}

	p.pos++

	return []Term{{Feature: ident.text}}, true
}
