// Released under an MIT license. See LICENSE.

// Package reader turns the textual form of a noun into the noun.
//
// The reduction engine never sees text; it is handed nouns and hands
// back nouns. The reader exists for hosts like the nk command, which
// accept a noun written as an unsigned decimal atom or as a bracketed
// cell of two or more nouns. Brackets nest to the right, so [a b c]
// reads as [a [b c]].
package reader

import (
	"fmt"

	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/common/type/cell"
)

// T (reader) scans one noun from a piece of text.
type T struct {
	src string
	pos int
}

type reader = T

// New creates a reader for src.
func New(src string) *T {
	return &T{src: src}
}

// Read parses src as a single noun.
func Read(src string) (noun.I, error) {
	r := New(src)

	n, err := r.noun()
	if err != nil {
		return nil, err
	}

	r.space()

	if r.pos != len(r.src) {
		return nil, fmt.Errorf("trailing text %q after noun", r.src[r.pos:])
	}

	return n, nil
}

func (r *reader) noun() (noun.I, error) {
	r.space()

	switch {
	case r.pos == len(r.src):
		return nil, fmt.Errorf("expected a noun")
	case r.src[r.pos] == '[':
		return r.cell()
	default:
		return r.atom()
	}
}

func (r *reader) atom() (noun.I, error) {
	start := r.pos

	for r.pos < len(r.src) && r.src[r.pos] >= '0' && r.src[r.pos] <= '9' {
		r.pos++
	}

	if r.pos == start {
		return nil, fmt.Errorf("unexpected %q", r.src[r.pos])
	}

	return atom.New(r.src[start:r.pos]), nil
}

func (r *reader) cell() (noun.I, error) {
	r.pos++ // Consume the '['.

	var ns []noun.I

	for {
		r.space()

		if r.pos == len(r.src) {
			return nil, fmt.Errorf("unterminated cell")
		}

		if r.src[r.pos] == ']' {
			r.pos++

			break
		}

		n, err := r.noun()
		if err != nil {
			return nil, err
		}

		ns = append(ns, n)
	}

	if len(ns) < 2 {
		return nil, fmt.Errorf("a cell pairs at least two nouns")
	}

	// [a b c] nests rightward to [a [b c]].
	n := ns[len(ns)-1]
	for i := len(ns) - 2; i >= 0; i-- {
		n = cell.New(ns[i], n)
	}

	return n, nil
}

func (r *reader) space() {
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.pos++
		default:
			return
		}
	}
}
