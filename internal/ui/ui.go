// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for nk.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/nounworks/nk/internal/common/interface/noun"
	"github.com/nounworks/nk/internal/reader"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to reduce nouns.
type Evaluator interface {
	Evaluate(n noun.I)
}

// Run launches the UI, which reads one noun per line and hands each
// to the Evaluator.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("nk> ")

		switch err {
		case nil:
			// Keep going.
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			os.Stdout.Write([]byte("\n"))

			return
		default:
			println(err.Error())

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		n, err := reader.Read(line)
		if err != nil {
			println(err.Error())

			continue
		}

		e.Evaluate(n)
	}
}
