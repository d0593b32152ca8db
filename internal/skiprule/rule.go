package skiprule

import (
	"fmt"

	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/metrics"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
)

// Target names the kind of entity a rule applies to.
type Target string

const (
	TypeTarget     Target = "type"
	MethodTarget   Target = "method"
	FieldTarget    Target = "field"
	PropertyTarget Target = "property"
	EventTarget    Target = "event"
)

func (t Target) Validate() error {
	switch t {
	case TypeTarget, MethodTarget, FieldTarget, PropertyTarget, EventTarget:
		return nil
	default:
		return fmt.Errorf("invalid target: %q", t)
	}
}

func (t Target) atoms() atoms.Target {
	if t == TypeTarget {
		return atoms.TypeTarget
	}
	return atoms.MemberTarget
}

// Rule keeps every entity it matches from being renamed.
type Rule struct {
	ID     string `json:"id" yaml:"id"`
	Target Target `json:"target" yaml:"target"`
	// Name matches the member name, or the short type name for type rules.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Type matches the full name of the declaring type, or of the type itself.
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Attrib     string `json:"attrib,omitempty" yaml:"attrib,omitempty"`
	TypeAttrib string `json:"typeAttrib,omitempty" yaml:"typeAttrib,omitempty"`
	Inherits   string `json:"inherits,omitempty" yaml:"inherits,omitempty"`
	Static     *bool  `json:"static,omitempty" yaml:"static,omitempty"`

	compiled bool
	name     pattern
	typeName pattern
}

func (r *Rule) compile() error {
	if r.compiled {
		return nil
	}

	var err error
	if r.name, err = compilePattern(r.Name); err != nil {
		return fmt.Errorf("rule %q name: %w", r.ID, err)
	}
	if r.typeName, err = compilePattern(r.Type); err != nil {
		return fmt.Errorf("rule %q type: %w", r.ID, err)
	}
	r.compiled = true
	return nil
}

// MatchType tests a type against a type rule. Member rules never match types.
func (r *Rule) MatchType(t *catalog.Type, inherits *catalog.InheritMap) (bool, error) {
	if r.Target != TypeTarget {
		return false, nil
	}
	if err := r.compile(); err != nil {
		return false, err
	}

	if !r.typeName.match(t.FullName) {
		return false, nil
	}
	if ok, err := r.evaluate("typeAttrib", r.TypeAttrib, atoms.ForType(t)); !ok || err != nil {
		return false, err
	}
	if ok, err := r.evaluate("attrib", r.Attrib, atoms.ForType(t)); !ok || err != nil {
		return false, err
	}
	if !r.name.match(t.Name()) {
		return false, nil
	}
	if r.Static != nil && *r.Static != t.Static {
		return false, nil
	}
	if r.Inherits != "" && !inherits.Inherits(t, r.Inherits) {
		return false, nil
	}
	return true, nil
}

// MatchMember tests a member declared by t against a rule of the member's
// kind.
func (r *Rule) MatchMember(m *catalog.Member, t *catalog.Type, inherits *catalog.InheritMap) (bool, error) {
	if string(r.Target) != string(m.Kind) {
		return false, nil
	}
	if err := r.compile(); err != nil {
		return false, err
	}

	if !r.typeName.match(t.FullName) {
		return false, nil
	}
	if ok, err := r.evaluate("typeAttrib", r.TypeAttrib, atoms.ForType(t)); !ok || err != nil {
		return false, err
	}
	if ok, err := r.evaluate("attrib", r.Attrib, atoms.ForMember(m, t)); !ok || err != nil {
		return false, err
	}
	if !r.name.match(m.Name) {
		return false, nil
	}
	if r.Static != nil && *r.Static != m.Static {
		return false, nil
	}
	if r.Inherits != "" && !inherits.Inherits(t, r.Inherits) {
		return false, nil
	}
	return true, nil
}

// evaluate treats an empty expression as no constraint.
func (r *Rule) evaluate(field, expression string, resolver rule.Resolver) (bool, error) {
	if expression == "" {
		return true, nil
	}
	ok, err := rule.Evaluate(expression, resolver)
	metrics.RecordEvaluation(ok, err)
	if err != nil {
		return false, fmt.Errorf("rule %q %s: %w", r.ID, field, err)
	}
	return ok, nil
}
