// Package ident normalizes heterogeneous expression shapes into a single
// canonical identifier descriptor. It is consumed by the exhaustiveness
// checker to type switch discriminants and by naming rules that need an
// identifier's display name.
package ident

import (
	"fmt"

	"github.com/semlint/caseful/internal/sem"
)

// Kind tells what sort of referenceable entity a descriptor stands for.
type Kind int

const (
	kindInvalid Kind = iota

	KindVariable
	KindValueParam
	KindRefParam
	KindOutParam
	KindField
	KindEvent
	KindProperty
	KindIndexedProperty
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindValueParam:
		return "Parameter"
	case KindRefParam:
		return "RefParameter"
	case KindOutParam:
		return "OutParameter"
	case KindField:
		return "Field"
	case KindEvent:
		return "Event"
	case KindProperty:
		return "Property"
	case KindIndexedProperty:
		return "IndexedProperty"
	case KindMethod:
		return "Method"
	default:
		return fmt.Sprintf("unknown-kind(%d)", k)
	}
}

// Descriptor is the canonical description of an identifier-shaped
// expression. Produced fresh per Resolve call, never mutated after.
type Descriptor struct {
	// Name is the entity's simple name.
	Name string

	// DisplayName is how the entity should read in a diagnostic message:
	// receiver-qualified for members and methods, the bare name otherwise.
	DisplayName string

	Type sem.TypeHandle
	Kind Kind
}

// Resolve classifies an expression into the closed referenceable-entity set
// and produces its descriptor. A nil result means the expression is not
// identifier-shaped; that is an expected outcome, not an error, and callers
// are supposed to abstain on it.
func Resolve(e sem.Expr) *Descriptor {
	switch v := e.(type) {
	case *sem.LocalRef:
		return &Descriptor{
			Name:        v.Name,
			DisplayName: v.Name,
			Type:        v.DeclType,
			Kind:        KindVariable,
		}

	case *sem.ParamRef:
		return &Descriptor{
			Name:        v.Name,
			DisplayName: v.Name,
			Type:        v.DeclType,
			Kind:        paramKind(v.Mode),
		}

	case *sem.FieldRef:
		return member(v.Recv, v.Name, v.DeclType, KindField)

	case *sem.EventRef:
		return member(v.Recv, v.Name, v.DeclType, KindEvent)

	case *sem.PropertyRef:
		return member(v.Recv, v.Name, v.DeclType, KindProperty)

	case *sem.IndexedPropertyRef:
		return member(v.Recv, v.Name, v.DeclType, KindIndexedProperty)

	case *sem.Invocation:
		return member(v.Recv, v.Name, v.ReturnType, KindMethod)

	case *sem.Literal, *sem.Conversion, *sem.Opaque:
		// Not identifier-shaped. Insufficient information by contract.
		return nil

	default:
		return nil
	}
}

func member(recv, name string, t sem.TypeHandle, kind Kind) *Descriptor {
	display := name
	if recv != "" {
		display = recv + "." + name
	}

	return &Descriptor{
		Name:        name,
		DisplayName: display,
		Type:        t,
		Kind:        kind,
	}
}

func paramKind(m sem.ParamMode) Kind {
	switch m {
	case sem.ParamModeRef:
		return KindRefParam
	case sem.ParamModeOut:
		return KindOutParam
	default:
		return KindValueParam
	}
}
