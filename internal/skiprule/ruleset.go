package skiprule

import (
	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
)

// RuleSet is an ordered list of skip rules. The first matching rule wins.
type RuleSet struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []Rule `json:"rules" yaml:"rules"`
}

func (s *RuleSet) MatchType(t *catalog.Type, inherits *catalog.InheritMap) (*Rule, error) {
	for i := range s.Rules {
		ok, err := s.Rules[i].MatchType(t, inherits)
		if err != nil {
			return nil, err
		}
		if ok {
			return &s.Rules[i], nil
		}
	}
	return nil, nil
}

func (s *RuleSet) MatchMember(m *catalog.Member, t *catalog.Type, inherits *catalog.InheritMap) (*Rule, error) {
	for i := range s.Rules {
		ok, err := s.Rules[i].MatchMember(m, t, inherits)
		if err != nil {
			return nil, err
		}
		if ok {
			return &s.Rules[i], nil
		}
	}
	return nil, nil
}
