package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Visibility string

const (
	Public            Visibility = "public"
	Protected         Visibility = "protected"
	Internal          Visibility = "internal"
	Private           Visibility = "private"
	ProtectedInternal Visibility = "protected_internal"
	PrivateProtected  Visibility = "private_protected"
)

func (v Visibility) Validate() error {
	switch v {
	case Public, Protected, Internal, Private, ProtectedInternal, PrivateProtected:
		return nil
	default:
		return fmt.Errorf("invalid visibility: %q", v)
	}
}

// IsProtected reports whether derived types can see the entity.
func (v Visibility) IsProtected() bool {
	return v == Protected || v == ProtectedInternal || v == PrivateProtected
}

// IsInternal reports whether the declaring assembly can see the entity.
func (v Visibility) IsInternal() bool {
	return v == Internal || v == ProtectedInternal || v == PrivateProtected
}

type MemberKind string

const (
	Method   MemberKind = "method"
	Field    MemberKind = "field"
	Property MemberKind = "property"
	Event    MemberKind = "event"
)

func (k MemberKind) Validate() error {
	switch k {
	case Method, Field, Property, Event:
		return nil
	default:
		return fmt.Errorf("invalid member kind: %q", k)
	}
}

type Member struct {
	ID         uuid.UUID  `json:"id" yaml:"id,omitempty"`
	Name       string     `json:"name" yaml:"name"`
	Kind       MemberKind `json:"kind" yaml:"kind"`
	Visibility Visibility `json:"visibility" yaml:"visibility"`
	Static     bool       `json:"static,omitempty" yaml:"static,omitempty"`
	Virtual    bool       `json:"virtual,omitempty" yaml:"virtual,omitempty"`
	Abstract   bool       `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

type Type struct {
	ID           uuid.UUID  `json:"id" yaml:"id,omitempty"`
	FullName     string     `json:"fullName" yaml:"fullName"`
	Visibility   Visibility `json:"visibility" yaml:"visibility"`
	Nested       bool       `json:"nested,omitempty" yaml:"nested,omitempty"`
	Static       bool       `json:"static,omitempty" yaml:"static,omitempty"`
	Abstract     bool       `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Sealed       bool       `json:"sealed,omitempty" yaml:"sealed,omitempty"`
	Interface    bool       `json:"interface,omitempty" yaml:"interface,omitempty"`
	Enum         bool       `json:"enum,omitempty" yaml:"enum,omitempty"`
	Serializable bool       `json:"serializable,omitempty" yaml:"serializable,omitempty"`
	BaseTypes    []string   `json:"baseTypes,omitempty" yaml:"baseTypes,omitempty"`
	Members      []Member   `json:"members,omitempty" yaml:"members,omitempty"`
}

// Namespace returns the part of the full name before the last dot.
func (t *Type) Namespace() string {
	if i := strings.LastIndex(t.FullName, "."); i >= 0 {
		return t.FullName[:i]
	}
	return ""
}

// Name returns the part of the full name after the last dot.
func (t *Type) Name() string {
	return t.FullName[strings.LastIndex(t.FullName, ".")+1:]
}

// MemberFullName qualifies a member name with its declaring type.
func (t *Type) MemberFullName(m *Member) string {
	return t.FullName + "::" + m.Name
}

// Catalog is a named set of types whose members are tested against rules.
type Catalog struct {
	Name  string `json:"name" yaml:"name"`
	Types []Type `json:"types" yaml:"types"`
}

// Validate checks names, visibilities and kinds and assigns IDs to entities
// that have none.
func (c *Catalog) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("catalog name is required")
	}

	seen := make(map[string]struct{}, len(c.Types))
	for i := range c.Types {
		t := &c.Types[i]
		if t.FullName == "" {
			return fmt.Errorf("types[%d] must have fullName defined", i)
		}
		if _, dup := seen[t.FullName]; dup {
			return fmt.Errorf("duplicate type %q", t.FullName)
		}
		seen[t.FullName] = struct{}{}

		if t.Visibility == "" {
			t.Visibility = Internal
		}
		if err := t.Visibility.Validate(); err != nil {
			return fmt.Errorf("type %q: %w", t.FullName, err)
		}
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}

		for j := range t.Members {
			m := &t.Members[j]
			if m.Name == "" {
				return fmt.Errorf("type %q: members[%d] must have name defined", t.FullName, j)
			}
			if err := m.Kind.Validate(); err != nil {
				return fmt.Errorf("member %q: %w", t.MemberFullName(m), err)
			}
			if m.Visibility == "" {
				m.Visibility = Private
			}
			if err := m.Visibility.Validate(); err != nil {
				return fmt.Errorf("member %q: %w", t.MemberFullName(m), err)
			}
			if m.ID == uuid.Nil {
				m.ID = uuid.New()
			}
		}
	}

	return nil
}

// Lookup finds a type by full name.
func (c *Catalog) Lookup(fullName string) (*Type, bool) {
	for i := range c.Types {
		if c.Types[i].FullName == fullName {
			return &c.Types[i], true
		}
	}
	return nil, false
}
