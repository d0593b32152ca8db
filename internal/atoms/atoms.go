// Package atoms resolves the names used in rule expressions against catalog
// entities. Names are case-insensitive.
package atoms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
)

// TypePrefix qualifies a member atom so it is resolved against the declaring
// type instead of the member.
const TypePrefix = "type."

type UnknownAtomError struct {
	Name string
}

func (e *UnknownAtomError) Error() string {
	return fmt.Sprintf("unrecognized value in expression: %s", e.Name)
}

// Target selects the atom vocabulary of an expression.
type Target string

const (
	TypeTarget   Target = "type"
	MemberTarget Target = "member"
)

var typeAtoms = map[string]func(t *catalog.Type) bool{
	"public":       func(t *catalog.Type) bool { return t.Visibility == catalog.Public },
	"protected":    func(t *catalog.Type) bool { return t.Visibility.IsProtected() },
	"internal":     func(t *catalog.Type) bool { return t.Visibility.IsInternal() },
	"private":      func(t *catalog.Type) bool { return t.Visibility == catalog.Private },
	"nested":       func(t *catalog.Type) bool { return t.Nested },
	"static":       func(t *catalog.Type) bool { return t.Static },
	"abstract":     func(t *catalog.Type) bool { return t.Abstract },
	"sealed":       func(t *catalog.Type) bool { return t.Sealed },
	"interface":    func(t *catalog.Type) bool { return t.Interface },
	"enum":         func(t *catalog.Type) bool { return t.Enum },
	"serializable": func(t *catalog.Type) bool { return t.Serializable },
}

var memberAtoms = map[string]func(m *catalog.Member) bool{
	"public":    func(m *catalog.Member) bool { return m.Visibility == catalog.Public },
	"protected": func(m *catalog.Member) bool { return m.Visibility.IsProtected() },
	"internal":  func(m *catalog.Member) bool { return m.Visibility.IsInternal() },
	"private":   func(m *catalog.Member) bool { return m.Visibility == catalog.Private },
	"static":    func(m *catalog.Member) bool { return m.Static },
	"virtual":   func(m *catalog.Member) bool { return m.Virtual },
	"abstract":  func(m *catalog.Member) bool { return m.Abstract },
}

// ForType resolves type atoms against t.
func ForType(t *catalog.Type) rule.Resolver {
	return rule.ResolverFunc(func(name string) (bool, error) {
		name = strings.ToLower(name)
		atom, ok := typeAtoms[name]
		if !ok {
			return false, &UnknownAtomError{Name: name}
		}
		return atom(t), nil
	})
}

// ForMember resolves member atoms against m and type.<atom> names against
// the declaring type.
func ForMember(m *catalog.Member, declaring *catalog.Type) rule.Resolver {
	return rule.ResolverFunc(func(name string) (bool, error) {
		name = strings.ToLower(name)
		if rest, ok := strings.CutPrefix(name, TypePrefix); ok {
			atom, ok := typeAtoms[rest]
			if !ok || declaring == nil {
				return false, &UnknownAtomError{Name: name}
			}
			return atom(declaring), nil
		}

		atom, ok := memberAtoms[name]
		if !ok {
			return false, &UnknownAtomError{Name: name}
		}
		return atom(m), nil
	})
}

// Known returns a resolver that accepts every atom of the target vocabulary
// and rejects everything else. It is used to validate expressions before
// any entity is at hand.
func Known(target Target) rule.Resolver {
	return rule.ResolverFunc(func(name string) (bool, error) {
		name = strings.ToLower(name)
		if isKnown(target, name) {
			return false, nil
		}
		return false, &UnknownAtomError{Name: name}
	})
}

func isKnown(target Target, name string) bool {
	if target == TypeTarget {
		_, ok := typeAtoms[name]
		return ok
	}
	if rest, ok := strings.CutPrefix(name, TypePrefix); ok {
		_, ok = typeAtoms[rest]
		return ok
	}
	_, ok := memberAtoms[name]
	return ok
}

// Names lists the atom names of the target vocabulary in sorted order.
func Names(target Target) []string {
	var names []string
	if target == TypeTarget {
		for name := range typeAtoms {
			names = append(names, name)
		}
	} else {
		for name := range memberAtoms {
			names = append(names, name)
		}
		for name := range typeAtoms {
			names = append(names, TypePrefix+name)
		}
	}
	sort.Strings(names)
	return names
}
