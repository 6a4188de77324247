package sem

import (
	"fmt"
	"go/token"
)

// LitKind classifies literal constants as far as the analysis cares.
type LitKind int

const (
	litKindInvalid LitKind = iota

	LitTrue
	LitFalse
	LitNull

	// LitOther covers every literal whose exact value is irrelevant here:
	// numbers, strings, characters.
	LitOther
)

func (k LitKind) String() string {
	switch k {
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	case LitNull:
		return "null"
	case LitOther:
		return "literal"
	default:
		return fmt.Sprintf("invalid-literal-kind(%d)", k)
	}
}

// Literal represents a literal constant expression.
//
//	case true:  // Kind: LitTrue
//	case nil:   // Kind: LitNull
type Literal struct {
	Kind LitKind
	Pos  token.Pos
}

func (*Literal) isNode() {}
func (*Literal) isExpr() {}
