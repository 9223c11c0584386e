// Released under an MIT license. See LICENSE.

package atom

import (
	"testing"
)

func TestEqual(t *testing.T) {
	if !Int(42).Equal(New("42")) {
		t.Fail()
	}

	if Int(42).Equal(Int(43)) {
		t.Fail()
	}
}

func TestBig(t *testing.T) {
	s := "340282366920938463463374607431768211456"

	if To(New(s)).String() != s {
		t.Fail()
	}
}

func TestLoobeans(t *testing.T) {
	if !Yes.Equal(Int(0)) || !No.Equal(Int(1)) {
		t.Fail()
	}
}

func TestNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fail()
		}
	}()

	Int(-1)
}
