package token

import "fmt"

type Kind int

const (
	// EOF marks the absence of a token at the end of input.
	EOF Kind = iota
	NAME
	AND
	OR
	NOT
	LPAREN
	RPAREN
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case NAME:
		return "NAME"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its kind, source text and the
// zero-based character offset of its first character.
type Token struct {
	Kind     Kind
	Text     string
	Position int
}

func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

func (t Token) String() string {
	if t.IsEOF() {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Position)
}
