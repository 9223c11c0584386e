// Released under an MIT license. See LICENSE.

// Package options parses the nk command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	dump        bool
	expr        string
	file        string
	interactive bool
	usage       = `nk

Usage:
  nk [-d] -e EXPR
  nk [-d] [FILE]
  nk -h
  nk -v

Arguments:
  FILE  Path to a file holding a single [subject formula] noun.

Options:
  -d, --dump       Dump the structure of the parsed noun before reducing it.
  -e, --expr=EXPR  Reduce EXPR instead of reading a file or stdin.
  -h, --help       Display this help.
  -v, --version    Print nk version.

If nk's stdin is a TTY and no expression or file was given, nouns are read
interactively, one per line. Otherwise a single noun of the shape
[subject formula] is read from stdin, reduced, and the result printed.
`
	version = "nk 0.1"
)

func Dump() bool {
	return dump
}

func Expr() string {
	return expr
}

func File() string {
	return file
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	dump, _ = opts.Bool("--dump")
	expr, _ = opts.String("--expr")
	file, _ = opts.String("FILE")

	if expr == "" && file == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}
