package token

import "fmt"

type Error string

const (
	ErrUnexpectedEnd Error = "unexpected end of expression"
)

func (e Error) Error() string {
	return string(e)
}

// LexicalError reports a character that cannot start any token.
type LexicalError struct {
	Char     rune
	Position int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at position %d", e.Char, e.Position)
}

// UnexpectedTokenError reports a token that is present but not valid where
// it was found. Expected is nil when no single kind would have been valid.
type UnexpectedTokenError struct {
	Found    Token
	Expected *Kind
}

func (e *UnexpectedTokenError) Error() string {
	if e.Expected != nil {
		return fmt.Sprintf("expected %s but got %s '%s' at position %d",
			*e.Expected, e.Found.Kind, e.Found.Text, e.Found.Position)
	}
	return fmt.Sprintf("unexpected token '%s' at position %d", e.Found.Text, e.Found.Position)
}
