package sem

// Node is the base interface implemented by all sem node types.
// Each node denotes a single resolved construct supplied by the driver
// (e.g., an identifier reference, a literal, a switch clause).
type Node interface {
	isNode()
}

// Expr marks nodes representing resolved expressions. The variant set is
// closed: every analyzer dispatching over Expr is expected to handle each
// variant explicitly, with Opaque standing for "anything else".
type Expr interface {
	Node
	isExpr()
}

// CaseClause marks the two clause shapes a switch construct may carry:
// a ValueClause matching one value, or a DefaultClause matching the rest.
type CaseClause interface {
	Node
	isCaseClause()
}
