// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/nounworks/nk/internal/common"
	"github.com/nounworks/nk/internal/common/interface/noun"
)

// Crash is the uniform failure result of reduction. A reduction that
// hits an undefined case fails as a whole: the crash propagates out of
// every enclosing reduction unchanged. Crash is an error, not a noun,
// so it can never end up inside a cell.
type Crash struct {
	// Noun is the offending noun.
	Noun noun.I

	// Reason says which undefined case was hit.
	Reason string
}

// Error returns the text of the crash c.
func (c *Crash) Error() string {
	return "crash: " + c.Reason + ": " + common.String(c.Noun)
}
