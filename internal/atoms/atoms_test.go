package atoms

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForType(t *testing.T) {
	typ := &catalog.Type{
		FullName:     "App.Model",
		Visibility:   catalog.ProtectedInternal,
		Nested:       true,
		Sealed:       true,
		Serializable: true,
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{expression: "public", want: false},
		{expression: "protected", want: true},
		{expression: "internal", want: true},
		{expression: "private", want: false},
		{expression: "nested and sealed", want: true},
		{expression: "Serializable and !Enum", want: true},
		{expression: "static or abstract or interface", want: false},
		{expression: "NESTED", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := rule.Evaluate(tt.expression, ForType(typ))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestForMember(t *testing.T) {
	declaring := &catalog.Type{FullName: "App.Service", Visibility: catalog.Public, Sealed: true}

	tests := []struct {
		name       string
		member     catalog.Member
		expression string
		want       bool
	}{
		{name: "public", member: catalog.Member{Visibility: catalog.Public}, expression: "public", want: true},
		{name: "family", member: catalog.Member{Visibility: catalog.Protected}, expression: "protected and !internal", want: true},
		{name: "family or assembly", member: catalog.Member{Visibility: catalog.ProtectedInternal}, expression: "protected and internal", want: true},
		{name: "family and assembly", member: catalog.Member{Visibility: catalog.PrivateProtected}, expression: "protected and internal and !private", want: true},
		{name: "assembly", member: catalog.Member{Visibility: catalog.Internal}, expression: "internal and !protected", want: true},
		{name: "private", member: catalog.Member{Visibility: catalog.Private}, expression: "private", want: true},
		{name: "flags", member: catalog.Member{Visibility: catalog.Public, Static: true, Virtual: true}, expression: "static and virtual and !abstract", want: true},
		{name: "declaring type", member: catalog.Member{Visibility: catalog.Private}, expression: "private and type.public and Type.Sealed", want: true},
		{name: "declaring type negated", member: catalog.Member{Visibility: catalog.Public}, expression: "public and !type.public", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Evaluate(tt.expression, ForMember(&tt.member, declaring))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownAtoms(t *testing.T) {
	typ := &catalog.Type{FullName: "App.Model", Visibility: catalog.Public}
	member := &catalog.Member{Name: "Run", Visibility: catalog.Public}

	tests := []struct {
		name       string
		resolver   rule.Resolver
		expression string
		atom       string
	}{
		{name: "type resolver", resolver: ForType(typ), expression: "public and Virtual", atom: "virtual"},
		{name: "type resolver rejects prefix", resolver: ForType(typ), expression: "type.public", atom: "type.public"},
		{name: "member resolver", resolver: ForMember(member, typ), expression: "sealed", atom: "sealed"},
		{name: "member resolver type prefix", resolver: ForMember(member, typ), expression: "type.virtual", atom: "type.virtual"},
		{name: "known type", resolver: Known(TypeTarget), expression: "public or bogus", atom: "bogus"},
		{name: "known member", resolver: Known(MemberTarget), expression: "type.nested and Enum", atom: "enum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rule.Evaluate(tt.expression, tt.resolver)
			require.Error(t, err)

			var unknown *UnknownAtomError
			require.True(t, errors.As(err, &unknown), "got %v", err)
			assert.Equal(t, tt.atom, unknown.Name)
			assert.Equal(t, "unrecognized value in expression: "+tt.atom, err.Error())
		})
	}
}

func TestKnown_ChecksEveryBranch(t *testing.T) {
	_, err := rule.Evaluate("public or (private and nope)", Known(MemberTarget))
	require.Error(t, err)

	for _, name := range Names(MemberTarget) {
		_, err := rule.Evaluate(name, Known(MemberTarget))
		assert.NoError(t, err, name)
	}
	for _, name := range Names(TypeTarget) {
		_, err := rule.Evaluate(name, Known(TypeTarget))
		assert.NoError(t, err, name)
	}
}

func TestNames(t *testing.T) {
	types := Names(TypeTarget)
	assert.Len(t, types, 11)
	assert.Contains(t, types, "serializable")
	assert.IsNonDecreasing(t, types)

	members := Names(MemberTarget)
	assert.Len(t, members, 7+11)
	assert.Contains(t, members, "type.public")
	assert.Contains(t, members, "virtual")
}
