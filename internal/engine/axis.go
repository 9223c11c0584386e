// Released under an MIT license. See LICENSE.

package engine

import (
	"math/big"

	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/common/type/cell"
)

//nolint:gochecknoglobals
var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// At returns the subtree of tree at the axis a. Axis 1 is the whole
// tree; axis 2n is the head and axis 2n+1 the tail of the node at
// axis n. An axis of 0, a cell axis, or an axis that descends past an
// atom crashes.
func At(a, tree noun.I) (noun.I, error) {
	if !atom.Is(a) {
		return nil, &Crash{Noun: a, Reason: "axis is not an atom"}
	}

	return at(atom.To(a).Int(), tree)
}

// at walks the binary digits of the axis below the leading 1, most
// significant first, going to the head on 0 and the tail on 1.
func at(a *big.Int, tree noun.I) (noun.I, error) {
	if a.Sign() == 0 {
		return nil, &Crash{Noun: atom.Num(a), Reason: "axis out of range"}
	}

	for i := a.BitLen() - 2; i >= 0; i-- {
		if !cell.Is(tree) {
			return nil, &Crash{Noun: tree, Reason: "axis descends past an atom"}
		}

		if a.Bit(i) == 0 {
			tree = cell.Head(tree)
		} else {
			tree = cell.Tail(tree)
		}
	}

	return tree, nil
}

// Edit returns a tree identical to tree except that the subtree at the
// axis a is replaced by v. Nothing is modified in place: the cells on
// the path to the axis are rebuilt and the untouched branches are
// shared with the original tree. An axis that does not resolve to a
// node of tree crashes.
func Edit(a, v, tree noun.I) (noun.I, error) {
	if !atom.Is(a) {
		return nil, &Crash{Noun: a, Reason: "axis is not an atom"}
	}

	return edit(atom.To(a).Int(), v, tree)
}

// edit pairs the replacement with its sibling at the axis and replaces
// the parent node with the new pair, halving the axis until it reaches
// the root.
func edit(a *big.Int, v, tree noun.I) (noun.I, error) {
	if a.Sign() == 0 {
		return nil, &Crash{Noun: atom.Num(a), Reason: "axis out of range"}
	}

	if a.Cmp(one) == 0 {
		return v, nil
	}

	q, m := new(big.Int).DivMod(a, two, new(big.Int))

	if m.Sign() == 0 {
		sibling, err := at(new(big.Int).Add(a, one), tree)
		if err != nil {
			return nil, err
		}

		return edit(q, cell.New(v, sibling), tree)
	}

	sibling, err := at(new(big.Int).Sub(a, one), tree)
	if err != nil {
		return nil, err
	}

	return edit(q, cell.New(sibling, v), tree)
}
