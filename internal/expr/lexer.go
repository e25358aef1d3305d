package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var symbols = map[rune]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'−': tokMinus,
	'*': tokStar,
	'×': tokStar,
	'/': tokSlash,
	'÷': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

func tokenize(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '.' || isDigit(r):
			end := scanNumber(s, i)
			if end == i {
				return nil, &SyntaxError{Pos: i, Msg: "bad number"}
			}
			toks = append(toks, token{kind: tokNumber, text: s[i:end], pos: i})
			i = end
		default:
			kind, ok := symbols[r]
			if !ok {
				return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
			toks = append(toks, token{kind: kind, text: string(r), pos: i})
			i += size
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(s)}), nil
}

// scanNumber returns the end of the number starting at i: digits with at most
// one point, then an optional exponent. A bare "." scans as nothing.
func scanNumber(s string, i int) int {
	j := i
	digits := 0
	for j < len(s) && isDigit(rune(s[j])) {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isDigit(rune(s[j])) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return i
	}

	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		start := k
		for k < len(s) && isDigit(rune(s[k])) {
			k++
		}
		if k > start {
			j = k
		}
	}
	return j
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
