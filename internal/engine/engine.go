// Released under an MIT license. See LICENSE.

// Package engine provides the nock reduction function and the axis
// and primitive operations it is built on. Reduction takes a cell
// [subject formula] and pattern-matches on the head of the formula,
// producing a new noun or a Crash. It never modifies its input.
package engine

import (
	"math/big"

	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/common/type/cell"
)

// Formula opcodes.
const (
	opAt = iota
	opConst
	opEval
	opIsCell
	opInc
	opEq
	opIf
	opCompose
	opPush
	opCall
	opEdit
	opHint
)

//nolint:gochecknoglobals
var (
	nounZero  = atom.Int(0)
	nounOne   = atom.Int(1)
	nounTwo   = atom.Int(2)
	nounThree = atom.Int(3)
)

// Nock reduces the pair [subject formula] to a noun. The only failure
// is a *Crash, returned whenever reduction hits an undefined case.
func Nock(n noun.I) (noun.I, error) {
	if !cell.Is(n) {
		return nil, &Crash{Noun: n, Reason: "reduction of an atom"}
	}

	return nock(cell.Head(n), cell.Tail(n))
}

//nolint:funlen,gocyclo
func nock(subject, formula noun.I) (noun.I, error) {
	if !cell.Is(formula) {
		return nil, &Crash{Noun: formula, Reason: "formula is an atom"}
	}

	op, rest := cell.Head(formula), cell.Tail(formula)

	// A cell in opcode position pairs two reductions.
	if cell.Is(op) {
		h, err := nock(subject, op)
		if err != nil {
			return nil, err
		}

		t, err := nock(subject, rest)
		if err != nil {
			return nil, err
		}

		return cell.New(h, t), nil
	}

	code := atom.To(op).Int()
	if !code.IsUint64() {
		return nil, &Crash{Noun: op, Reason: "unknown opcode"}
	}

	switch code.Uint64() {
	case opAt:
		return At(rest, subject)

	case opConst:
		return rest, nil

	case opEval:
		b, c, err := split(rest)
		if err != nil {
			return nil, err
		}

		s, err := nock(subject, b)
		if err != nil {
			return nil, err
		}

		f, err := nock(subject, c)
		if err != nil {
			return nil, err
		}

		return nock(s, f)

	case opIsCell:
		v, err := nock(subject, rest)
		if err != nil {
			return nil, err
		}

		return IsCell(v), nil

	case opInc:
		v, err := nock(subject, rest)
		if err != nil {
			return nil, err
		}

		return Inc(v)

	case opEq:
		b, c, err := split(rest)
		if err != nil {
			return nil, err
		}

		l, err := nock(subject, b)
		if err != nil {
			return nil, err
		}

		r, err := nock(subject, c)
		if err != nil {
			return nil, err
		}

		return Eq(cell.New(l, r))

	case opIf:
		b, branches, err := split(rest)
		if err != nil {
			return nil, err
		}

		t, err := nock(subject, b)
		if err != nil {
			return nil, err
		}

		if !atom.Is(t) {
			return nil, &Crash{Noun: t, Reason: "test is not a loobean"}
		}

		// The test selects a branch by axis: 0 becomes axis 2, the
		// head, and 1 becomes axis 3, the tail. Anything else falls
		// off the branch pair and crashes there.
		branch, err := at(new(big.Int).Add(atom.To(t).Int(), two), branches)
		if err != nil {
			return nil, err
		}

		return nock(subject, branch)

	case opCompose:
		b, c, err := split(rest)
		if err != nil {
			return nil, err
		}

		s, err := nock(subject, b)
		if err != nil {
			return nil, err
		}

		return nock(s, c)

	case opPush:
		b, c, err := split(rest)
		if err != nil {
			return nil, err
		}

		v, err := nock(subject, b)
		if err != nil {
			return nil, err
		}

		return nock(cell.New(v, subject), c)

	case opCall:
		b, c, err := split(rest)
		if err != nil {
			return nil, err
		}

		core, err := nock(subject, c)
		if err != nil {
			return nil, err
		}

		// Pull the arm at axis b and fire it with the whole core as
		// its subject: *[core 2 [0 1] 0 b].
		return nock(core, cell.New(nounTwo,
			cell.New(cell.New(nounZero, nounOne), cell.New(nounZero, b))))

	case opEdit:
		spot, d, err := split(rest)
		if err != nil {
			return nil, err
		}

		if !cell.Is(spot) {
			return nil, &Crash{Noun: spot, Reason: "edit needs an axis and a formula"}
		}

		v, err := nock(subject, cell.Tail(spot))
		if err != nil {
			return nil, err
		}

		base, err := nock(subject, d)
		if err != nil {
			return nil, err
		}

		return Edit(cell.Head(spot), v, base)

	case opHint:
		clue, d, err := split(rest)
		if err != nil {
			return nil, err
		}

		if cell.Is(clue) {
			// A dynamic hint reduces its clue formula before the
			// body. The clue's value is discarded, but a crashing
			// clue still crashes the whole reduction.
			v, err := nock(subject, cell.Tail(clue))
			if err != nil {
				return nil, err
			}

			r, err := nock(subject, d)
			if err != nil {
				return nil, err
			}

			return nock(cell.New(v, r), cell.New(nounZero, nounThree))
		}

		return nock(subject, d)

	default:
		return nil, &Crash{Noun: op, Reason: "unknown opcode"}
	}
}

// split destructures the cell n into its head and tail.
func split(n noun.I) (noun.I, noun.I, error) {
	if !cell.Is(n) {
		return nil, nil, &Crash{Noun: n, Reason: "formula tail is an atom"}
	}

	return cell.Head(n), cell.Tail(n), nil
}
