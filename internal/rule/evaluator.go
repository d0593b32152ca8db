package rule

import (
	"github.com/DjordjeVuckovic/rule-hunter/internal/token"
)

// Evaluate parses expression and computes its value, resolving every atom
// through r. It returns the first lexical, syntax or resolver error met
// while scanning left to right.
//
// A resolver error is returned as an *OracleError wrapping it, so the value
// differs from the one r returned: compare with errors.Is or errors.As, not
// ==. The message is the resolver's, unchanged.
func Evaluate(expression string, r Resolver) (bool, error) {
	tokenizer, err := token.NewTokenizer(expression)
	if err != nil {
		return false, err
	}

	p := &evaluator{tokenizer: tokenizer, resolver: r}

	result, err := p.expression()
	if err != nil {
		return false, err
	}

	if trailing := tokenizer.Current(); !trailing.IsEOF() {
		return false, &token.UnexpectedTokenError{Found: trailing}
	}

	return result, nil
}

type evaluator struct {
	tokenizer *token.Tokenizer
	resolver  Resolver
}

func (p *evaluator) expression() (bool, error) {
	acc, err := p.subexpression()
	if err != nil {
		return false, err
	}

	for {
		op := p.tokenizer.Current().Kind
		if op != token.AND && op != token.OR {
			return acc, nil
		}
		if _, err := p.tokenizer.Advance(); err != nil {
			return false, err
		}

		// the right operand is evaluated regardless of acc
		rhs, err := p.subexpression()
		if err != nil {
			return false, err
		}

		if op == token.AND {
			acc = acc && rhs
		} else {
			acc = acc || rhs
		}
	}
}

func (p *evaluator) subexpression() (bool, error) {
	current := p.tokenizer.Current()

	switch current.Kind {
	case token.EOF:
		return false, token.ErrUnexpectedEnd

	case token.LPAREN:
		if _, err := p.tokenizer.Advance(); err != nil {
			return false, err
		}
		value, err := p.expression()
		if err != nil {
			return false, err
		}
		if _, err := p.tokenizer.AdvanceExpecting(token.RPAREN); err != nil {
			return false, err
		}
		return value, nil

	case token.NOT:
		if _, err := p.tokenizer.Advance(); err != nil {
			return false, err
		}
		value, err := p.subexpression()
		if err != nil {
			return false, err
		}
		return !value, nil

	case token.NAME:
		value, err := p.resolver.Resolve(current.Text)
		if err != nil {
			return false, &OracleError{Atom: current.Text, Err: err}
		}
		if _, err := p.tokenizer.Advance(); err != nil {
			return false, err
		}
		return value, nil

	default:
		return false, &token.UnexpectedTokenError{Found: current}
	}
}
