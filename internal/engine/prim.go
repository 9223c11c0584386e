// Released under an MIT license. See LICENSE.

package engine

import (
	"math/big"

	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/common/type/cell"
)

// IsCell returns the loobean for whether n is a cell: 0 for a cell,
// 1 for an atom. It is total over nouns and never crashes.
func IsCell(n noun.I) noun.I {
	if cell.Is(n) {
		return atom.Yes
	}

	return atom.No
}

// Inc returns n+1. Incrementing a cell crashes.
func Inc(n noun.I) (noun.I, error) {
	if !atom.Is(n) {
		return nil, &Crash{Noun: n, Reason: "increment of a cell"}
	}

	return atom.Num(new(big.Int).Add(atom.To(n).Int(), one)), nil
}

// Eq takes a cell [a b] and returns the loobean for whether a and b
// are structurally equal. An atom argument crashes.
func Eq(n noun.I) (noun.I, error) {
	if !cell.Is(n) {
		return nil, &Crash{Noun: n, Reason: "equality test of an atom"}
	}

	if cell.Head(n).Equal(cell.Tail(n)) {
		return atom.Yes, nil
	}

	return atom.No, nil
}
