// Released under an MIT license. See LICENSE.

// Package cell provides nk's pair type.
package cell

import (
	"github.com/nounworks/nk/internal/common"
	"github.com/nounworks/nk/internal/common/interface/literal"
	"github.com/nounworks/nk/internal/common/interface/noun"
)

const name = "cell"

// T (cell) is an ordered pair of nouns. Cells are immutable: changing
// a branch means building new cells along the path to it.
type T struct {
	head noun.I
	tail noun.I
}

type cell = T

// New pairs h and t together to form a new cell.
func New(h, t noun.I) noun.I {
	return &cell{head: h, tail: t}
}

// Equal returns true if n is a cell with a head and tail equal to c's.
func (c *cell) Equal(n noun.I) bool {
	return Is(n) && c.head.Equal(To(n).head) && c.tail.Equal(To(n).tail)
}

// Literal returns the literal representation of the cell c. A cell in
// tail position folds into the enclosing brackets, so that the cell
// [1 [2 3]] prints as [1 2 3].
func (c *cell) Literal() string {
	s := "[" + literal.String(c.head)

	t := c.tail
	for Is(t) {
		s += " " + literal.String(To(t).head)

		t = To(t).tail
	}

	return s + " " + literal.String(t) + "]"
}

// Name returns the name for the cell type.
func (c *cell) Name() string {
	return name
}

// String returns the text representation of the cell c.
func (c *cell) String() string {
	return c.Literal()
}

// Functions specific to cell.

// Head returns the head (left branch) of the cell n.
// If n is not a cell, this function will panic.
func Head(n noun.I) noun.I {
	return To(n).head
}

// Tail returns the tail (right branch) of the cell n.
// If n is not a cell, this function will panic.
func Tail(n noun.I) noun.I {
	return To(n).tail
}

// Is returns true if n is a *T.
func Is(n noun.I) bool {
	_, ok := n.(*T)

	return ok
}

// To returns a *T if n is a *T; Otherwise it panics.
func To(n noun.I) *T {
	if t, ok := n.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t cell

	// The cell type is a noun.
	_ = noun.I(&t)

	// The cell type has a literal representation.
	_ = literal.I(&t)

	// The cell type is a stringer.
	_ = common.Stringer(&t)
}
