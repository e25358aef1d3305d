// Package expr evaluates arithmetic expressions made of numbers, the four
// operators, parentheses and unary signs. It has no identifiers or calls.
package expr

import (
	"fmt"
	"strconv"
)

// SyntaxError reports where and why an expression could not be parsed.
type SyntaxError struct {
	Pos int // byte offset into the input
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// Eval parses and evaluates s. Division by zero follows IEEE 754 and yields
// ±Inf or NaN rather than an error.
func Eval(s string) (float64, error) {
	toks, err := tokenize(s)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks}
	if p.peek().kind == tokEOF {
		return 0, &SyntaxError{Pos: 0, Msg: "empty expression"}
	}

	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}
	return v, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus, tokMinus:
			op := p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			if op.kind == tokPlus {
				left += right
			} else {
				left -= right
			}
		default:
			return left, nil
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar, tokSlash:
			op := p.next()
			right, err := p.unary()
			if err != nil {
				return 0, err
			}
			if op.kind == tokStar {
				left *= right
			} else {
				left /= right
			}
		default:
			return left, nil
		}
	}
}

// unary := ('+' | '-') unary | primary
func (p *parser) unary() (float64, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()
		return p.unary()
	case tokMinus:
		p.next()
		v, err := p.unary()
		return -v, err
	}
	return p.primary()
}

// primary := number | '(' expr ')'
func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("bad number %q", t.text)}
		}
		return v, nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if c := p.next(); c.kind != tokRParen {
			return 0, &SyntaxError{Pos: c.pos, Msg: "missing )"}
		}
		return v, nil
	case tokEOF:
		return 0, &SyntaxError{Pos: t.pos, Msg: "unexpected end of expression"}
	default:
		return 0, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}
}
