// Released under an MIT license. See LICENSE.

package engine_test

import (
	"testing"

	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/common/type/cell"
	"github.com/nounworks/nk/internal/engine"
)

func TestIsCell(t *testing.T) {
	if v := engine.IsCell(tree()); !v.Equal(atom.Yes) {
		t.Errorf("got %s for a cell, want 0", v)
	}

	if v := engine.IsCell(atom.Int(5)); !v.Equal(atom.No) {
		t.Errorf("got %s for an atom, want 1", v)
	}
}

func TestInc(t *testing.T) {
	v, err := engine.Inc(atom.Int(41))
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(atom.Int(42)) {
		t.Errorf("got %s, want 42", v)
	}
}

func TestIncBig(t *testing.T) {
	v, err := engine.Inc(atom.New("18446744073709551615"))
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(atom.New("18446744073709551616")) {
		t.Errorf("got %s, want 18446744073709551616", v)
	}
}

func TestIncCell(t *testing.T) {
	_, err := engine.Inc(tree())

	crashed(t, err)
}

func TestEq(t *testing.T) {
	if v, err := engine.Eq(cell.New(tree(), tree())); err != nil {
		t.Fatal(err)
	} else if !v.Equal(atom.Yes) {
		t.Errorf("got %s for equal nouns, want 0", v)
	}

	if v, err := engine.Eq(cell.New(tree(), atom.Int(5))); err != nil {
		t.Fatal(err)
	} else if !v.Equal(atom.No) {
		t.Errorf("got %s for unequal nouns, want 1", v)
	}
}

func TestEqAtom(t *testing.T) {
	_, err := engine.Eq(atom.Int(5))

	crashed(t, err)
}
