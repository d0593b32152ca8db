package token

import (
	"strings"
	"unicode"
)

// Tokenizer scans a rule expression on demand. Only the current token is
// held; Advance discards it and scans the next one. A Tokenizer belongs to
// a single evaluation and must not be shared.
type Tokenizer struct {
	input   []rune
	pos     int
	current Token
}

// NewTokenizer creates a Tokenizer over input and scans the first token.
func NewTokenizer(input string) (*Tokenizer, error) {
	t := &Tokenizer{input: []rune(input)}
	if err := t.scan(); err != nil {
		return nil, err
	}
	return t, nil
}

// Current returns the current token without advancing. At the end of input
// the returned token has kind EOF.
func (t *Tokenizer) Current() Token {
	return t.current
}

// Advance returns the current token and scans the next one.
func (t *Tokenizer) Advance() (Token, error) {
	if t.current.IsEOF() {
		return Token{}, ErrUnexpectedEnd
	}
	tok := t.current
	if err := t.scan(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// AdvanceExpecting is Advance restricted to a current token of the given kind.
func (t *Tokenizer) AdvanceExpecting(kind Kind) (Token, error) {
	if t.current.IsEOF() {
		return Token{}, ErrUnexpectedEnd
	}
	if t.current.Kind != kind {
		return Token{}, &UnexpectedTokenError{Found: t.current, Expected: &kind}
	}
	return t.Advance()
}

func (t *Tokenizer) scan() error {
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		t.current = Token{Kind: EOF, Position: t.pos}
		return nil
	}

	start := t.pos
	ch := t.input[t.pos]
	switch {
	case isNameChar(ch):
		t.current = t.readName()
		return nil
	case ch == '(':
		t.current = t.single(LPAREN)
	case ch == ')':
		t.current = t.single(RPAREN)
	case ch == '&':
		t.current = t.single(AND)
	case ch == '|':
		t.current = t.single(OR)
	case ch == '!':
		t.current = t.single(NOT)
	default:
		return &LexicalError{Char: ch, Position: start}
	}
	return nil
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
}

func (t *Tokenizer) single(kind Kind) Token {
	tok := Token{Kind: kind, Text: string(t.input[t.pos]), Position: t.pos}
	t.pos++
	return tok
}

func (t *Tokenizer) readName() Token {
	start := t.pos
	for t.pos < len(t.input) && isNameChar(t.input[t.pos]) {
		t.pos++
	}

	text := string(t.input[start:t.pos])

	kind := NAME
	switch {
	case strings.EqualFold(text, "and"):
		kind = AND
	case strings.EqualFold(text, "or"):
		kind = OR
	}
	return Token{Kind: kind, Text: text, Position: start}
}

func isNameChar(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '.'
}
