/*
Nk reduces nouns.  A noun is either an atom (an unsigned integer of any
size) or a cell (a pair of nouns). Nk reads a noun of the shape

    [subject formula]

and reduces it with the nock function, printing the resulting noun or
reporting a crash when the formula hits an undefined case:

    $ nk -e '[42 4 4 0 1]'
    44

For more detail, see: https://github.com/nounworks/nk

Nk is released under an MIT license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/nounworks/nk/internal/common"
	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/engine"
	"github.com/nounworks/nk/internal/reader"
	"github.com/nounworks/nk/internal/system/options"
	"github.com/nounworks/nk/internal/ui"
)

type evaluator struct {
	dump   bool
	failed bool
}

// Evaluate reduces the noun n and prints the result.
func (e *evaluator) Evaluate(n noun.I) {
	if e.dump {
		fmt.Fprintln(os.Stderr, repr.String(n, repr.Indent("  ")))
	}

	v, err := engine.Nock(n)
	if err != nil {
		e.failed = true

		fmt.Fprintln(os.Stderr, err.Error())

		return
	}

	fmt.Println(common.String(v))
}

func main() {
	options.Parse()

	e := &evaluator{dump: options.Dump()}

	switch {
	case options.Expr() != "":
		evaluate(e, options.Expr())
	case options.File() != "":
		b, err := os.ReadFile(options.File())
		if err != nil {
			fail(err)
		}

		evaluate(e, string(b))
	case options.Interactive():
		ui.Run(e)
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
		}

		evaluate(e, string(b))
	}

	if e.failed {
		os.Exit(1)
	}
}

func evaluate(e *evaluator, src string) {
	n, err := reader.Read(src)
	if err != nil {
		fail(err)
	}

	e.Evaluate(n)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
