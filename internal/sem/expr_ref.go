package sem

import (
	"fmt"
	"go/token"
)

// ParamMode describes how a parameter is passed.
type ParamMode int

const (
	paramModeInvalid ParamMode = iota
	ParamModeValue
	ParamModeRef
	ParamModeOut
)

var paramModeValueMap = map[ParamMode]string{
	ParamModeValue: "value",
	ParamModeRef:   "ref",
	ParamModeOut:   "out",
}

func (m ParamMode) String() string {
	v, ok := paramModeValueMap[m]
	if !ok {
		return fmt.Sprintf("invalid(%d)", m)
	}

	return v
}

// UnmarshalText for setting values with configs, CLI, etc.
func (m *ParamMode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range paramModeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown parameter passing mode %q", text)
}

func (m ParamMode) MarshalText() ([]byte, error) {
	v, ok := paramModeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid ParamMode(%d)", m)
	}

	return []byte(v), nil
}

// LocalRef references a local variable.
//
//	count // Name: "count", DeclType: <int handle>
type LocalRef struct {
	Name     string
	DeclType TypeHandle
	Pos      token.Pos
}

// ParamRef references a parameter of the enclosing routine, together with
// its passing mode.
//
//	procedure Render(mode: DrawMode) // Name: "mode", Mode: ParamModeValue
type ParamRef struct {
	Name     string
	Mode     ParamMode
	DeclType TypeHandle
	Pos      token.Pos
}

// FieldRef references a field member. Enumeration member constants surface
// as const field references of the enumeration itself, so
//
//	Biome.Tundra // Recv: "Biome", Name: "Tundra", Const: true
type FieldRef struct {
	// Recv is the display name of the owning type, empty for free fields.
	Recv string
	Name string

	// Const is set when the field denotes a constant, e.g. an enumeration
	// member.
	Const    bool
	DeclType TypeHandle
	Pos      token.Pos
}

// EventRef references an event member.
type EventRef struct {
	Recv     string
	Name     string
	DeclType TypeHandle
	Pos      token.Pos
}

// PropertyRef references a property member. The property name itself is the
// reference, never a backing field.
type PropertyRef struct {
	Recv     string
	Name     string
	DeclType TypeHandle
	Pos      token.Pos
}

// IndexedPropertyRef references an indexed property member, e.g.
// Items[i] shaped accessors.
type IndexedPropertyRef struct {
	Recv     string
	Name     string
	DeclType TypeHandle
	Pos      token.Pos
}

func (*LocalRef) isNode()           {}
func (*LocalRef) isExpr()           {}
func (*ParamRef) isNode()           {}
func (*ParamRef) isExpr()           {}
func (*FieldRef) isNode()           {}
func (*FieldRef) isExpr()           {}
func (*EventRef) isNode()           {}
func (*EventRef) isExpr()           {}
func (*PropertyRef) isNode()        {}
func (*PropertyRef) isExpr()        {}
func (*IndexedPropertyRef) isNode() {}
func (*IndexedPropertyRef) isExpr() {}
