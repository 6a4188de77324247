package sem

import "go/token"

// Conversion represents an explicit type conversion wrapping another
// expression. Case labels of boxed or widened enumeration constants arrive
// in this shape:
//
//	case Severity(Levels.High): // To: <Severity handle>, X: &FieldRef{…}
type Conversion struct {
	To TypeHandle
	X  Expr

	Pos token.Pos
}

// Opaque represents every expression shape outside the recognized variant
// set: operators, computed values, aggregates. It carries no identifier
// information at all, which is exactly what downstream consumers need to
// know about it.
type Opaque struct {
	Pos token.Pos
}

func (*Conversion) isNode() {}
func (*Conversion) isExpr() {}
func (*Opaque) isNode()     {}
func (*Opaque) isExpr()     {}
