// Released under an MIT license. See LICENSE.

// Package atom provides nk's atom type.
package atom

import (
	"math/big"

	"github.com/nounworks/nk/internal/common"
	"github.com/nounworks/nk/internal/common/interface/literal"
	"github.com/nounworks/nk/internal/common/interface/noun"
)

const name = "atom"

// T (atom) wraps Go's big.Int type. An atom is never negative.
type T big.Int

type atom = T

//nolint:gochecknoglobals
var (
	// Yes is the loobean for truth.
	Yes = Int(0)

	// No is the loobean for falsity.
	No = Int(1)
)

// New creates an atom from its decimal text.
func New(s string) noun.I {
	v := &big.Int{}

	if _, ok := v.SetString(s, 10); !ok || v.Sign() < 0 {
		panic("'" + s + "' is not a valid atom")
	}

	return (*atom)(v)
}

// Int creates an atom from the integer i.
func Int(i int64) noun.I {
	if i < 0 {
		panic("atoms are never negative")
	}

	return (*atom)(big.NewInt(i))
}

// Num wraps the *big.Int v as an atom.
func Num(v *big.Int) noun.I {
	if v.Sign() < 0 {
		panic("atoms are never negative")
	}

	return (*atom)(v)
}

// Equal returns true if n is an atom with the same value as the atom a.
func (a *atom) Equal(n noun.I) bool {
	return Is(n) && a.Int().Cmp(To(n).Int()) == 0
}

// Int returns the value of the atom a as a *big.Int. Atoms are
// immutable: the returned value must not be modified.
func (a *atom) Int() *big.Int {
	return (*big.Int)(a)
}

// Literal returns the literal representation of the atom a.
func (a *atom) Literal() string {
	return a.String()
}

// Name returns the type name for the atom a.
func (a *atom) Name() string {
	return name
}

// String returns the text of the atom a.
func (a *atom) String() string {
	return a.Int().String()
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

	panic("not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t atom

	// The atom type is a noun.
	_ = noun.I(&t)

	// The atom type has a literal representation.
	_ = literal.I(&t)

	// The atom type is a stringer.
	_ = common.Stringer(&t)
}
