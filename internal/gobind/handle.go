package gobind

import (
	"go/types"

	"github.com/semlint/caseful/internal/sem"
)

// Handle adapts a go/types type to the sem.TypeHandle query surface.
//
// Go has no nullable scalar types, so the nullable predicates always answer
// false here; those domain shapes exist for languages that have them and are
// reachable through caller-supplied handles. An enumeration is what the Go
// ecosystem treats as one: a named type with integer, float, or string
// underlying and at least one package-scope constant of that exact type.
type Handle struct {
	typ     types.Type
	name    string
	boolean bool
	members []sem.EnumMember
}

var _ sem.TypeHandle = (*Handle)(nil)

// HandleFor builds a handle for the given type. It never fails: types
// outside the recognized shapes produce a handle answering false to every
// predicate, which makes the checker abstain.
func HandleFor(t types.Type) *Handle {
	t = types.Unalias(t)
	h := &Handle{typ: t, name: types.TypeString(t, shortQualifier)}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return h
	}

	if basic.Info()&types.IsBoolean != 0 {
		h.boolean = true
		return h
	}

	named, ok := t.(*types.Named)
	if !ok {
		return h
	}
	if basic.Info()&(types.IsInteger|types.IsFloat|types.IsString) == 0 {
		return h
	}

	h.members = packageScopeMembers(named)

	return h
}

func (h *Handle) Name() string            { return h.name }
func (h *Handle) IsBoolean() bool         { return h.boolean }
func (h *Handle) IsNullableBoolean() bool { return false }
func (h *Handle) IsEnum() bool            { return len(h.members) > 0 }
func (h *Handle) IsNullableEnum() bool    { return false }

func (h *Handle) EnumMembers() []sem.EnumMember { return h.members }

// enumMember wraps one member constant. It is a value type around the
// canonical *types.Const object, so two wrappers of the same constant
// compare equal regardless of which handle produced them.
type enumMember struct {
	obj *types.Const
}

func (m enumMember) Name() string { return m.obj.Name() }

// packageScopeMembers collects the constants of the named type declared in
// its defining package scope, in scope order. Constants declared in inner
// scopes are out of sight here; the member list is the complete set visible
// to the type's declaration.
func packageScopeMembers(named *types.Named) []sem.EnumMember {
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return nil
	}

	var members []sem.EnumMember
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		if !types.Identical(c.Type(), named) {
			continue
		}

		members = append(members, enumMember{obj: c})
	}

	return members
}

func shortQualifier(p *types.Package) string {
	if p == nil {
		return ""
	}
	return p.Name()
}
