package skiprule

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/rule-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML rule set and validates it.
func Parse(data []byte) (*RuleSet, error) {
	var s RuleSet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, apperr.NewValidationWrap("parse rule set YAML", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every rule and compiles its patterns. Expressions are
// evaluated against the atom vocabulary of the rule target, which reaches
// every atom because evaluation never short-circuits.
func (s *RuleSet) Validate() error {
	if len(s.Rules) == 0 {
		return apperr.NewValidation("rule set must have at least one rule")
	}

	seen := make(map[string]struct{}, len(s.Rules))
	for i := range s.Rules {
		r := &s.Rules[i]
		if r.ID == "" {
			return apperr.NewValidationf("rules[%d] must have id defined", i)
		}
		if _, dup := seen[r.ID]; dup {
			return apperr.NewValidationf("duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}

		if err := r.Target.Validate(); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("rule %q", r.ID), err)
		}
		r.compiled = false
		if err := r.compile(); err != nil {
			return apperr.NewValidationWrap("invalid pattern", err)
		}
		if err := validateExpression(r.Attrib, r.Target.atoms()); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("rule %q attrib", r.ID), err)
		}
		if err := validateExpression(r.TypeAttrib, atoms.TypeTarget); err != nil {
			return apperr.NewValidationWrap(fmt.Sprintf("rule %q typeAttrib", r.ID), err)
		}
	}
	return nil
}

func validateExpression(expression string, target atoms.Target) error {
	if expression == "" {
		return nil
	}
	_, err := rule.Evaluate(expression, atoms.Known(target))
	return err
}
