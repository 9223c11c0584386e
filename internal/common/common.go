// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/nounworks/nk/internal/common/interface/noun"
)

type Stringer = fmt.Stringer

// String returns the string value for a noun, if possible.
func String(n noun.I) string {
	s, ok := n.(Stringer)
	if !ok {
		panic(n.Name() + " cannot be used in a string context")
	}

	return s.String()
}
