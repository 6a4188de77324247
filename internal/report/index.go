package report

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/semlint/caseful/internal/sem"
)

// NewIndex is [Index] constructor.
func NewIndex() *Index {
	return &Index{tree: rbtree.New[*indexedSpan]()}
}

// Index maps token positions to the innermost semantic node whose source
// span contains them. The analyzer registers every lowered switch construct
// here so that suppression directives found inside a construct's span can be
// attributed to it, nested switches included.
type Index struct {
	tree *rbtree.Tree[*indexedSpan]
}

// GetByPos returns the most specific (innermost) node covering pos.
func (c *Index) GetByPos(pos token.Pos) sem.Node {
	probe := &indexedSpan{start: pos, end: pos}
	res := c.tree.Search(probe)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// Add registers a node with its [start,end] token span.
// The RB-tree orders only disjoint spans; any overlap is reported back via
// InsertReturn, and we resolve it into a strict containment hierarchy.
// All ordering/balancing is handled by the underlying rbtree.
func (c *Index) Add(node sem.Node, start, end token.Pos) {
	span := &indexedSpan{start: start, end: end, node: node}
	attachInto(c.tree, span)
}
