package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/rule-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/rule-hunter/internal/token"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("rule set has no rules")

	if err.Error() != "rule set has no rules" {
		t.Errorf("expected 'rule set has no rules', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationf(t *testing.T) {
	err := apperr.NewValidationf("rule %q: unknown target %q", "keep-api", "module")

	if err.Error() != `rule "keep-api": unknown target "module"` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewValidationWrap(t *testing.T) {
	err := apperr.NewValidationWrap("rule \"keep-api\" attrib", token.ErrUnexpectedEnd)

	if err.Error() != "rule \"keep-api\" attrib: unexpected end of expression" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, token.ErrUnexpectedEnd) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidationWrap("invalid attrib", &token.LexicalError{Char: '$', Position: 4})

	wrapped := fmt.Errorf("failed to load rules: %w", original)
	doubleWrapped := fmt.Errorf("serve: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "invalid attrib" {
		t.Errorf("expected 'invalid attrib', got %q", ve.Message)
	}

	var lexErr *token.LexicalError
	if !errors.As(doubleWrapped, &lexErr) || lexErr.Position != 4 {
		t.Fatal("errors.As should reach the lexical error")
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}
