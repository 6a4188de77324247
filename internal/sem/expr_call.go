package sem

import "go/token"

// Invocation represents a resolved call of a method or free routine. The
// reference carries the callee's simple name and return type, which is what
// a switch discriminant of the form
//
//	switch CurrentBiome() { … } // Name: "CurrentBiome", ReturnType: <Biome handle>
//
// needs to be typed with.
type Invocation struct {
	// Recv is the display name of the receiver type, empty for free routines.
	Recv string
	Name string

	// ReturnType is nil when the callee returns nothing usable as a value
	// (no results, or more than one).
	ReturnType TypeHandle
	Pos        token.Pos
}

func (*Invocation) isNode() {}
func (*Invocation) isExpr() {}
