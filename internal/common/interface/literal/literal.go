// Released under an MIT license. See LICENSE.

// Package literal defines the interface for nk types that can be written back out.
package literal

import (
	"github.com/nounworks/nk/internal/common/interface/noun"
)

// I (literal) is any type that can be written back out as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a noun, if possible.
func String(n noun.I) string {
	l, ok := n.(I)
	if !ok {
		panic(n.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
