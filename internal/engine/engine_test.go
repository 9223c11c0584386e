// Released under an MIT license. See LICENSE.

package engine_test

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nounworks/nk/internal/common"
	"github.com/nounworks/nk/internal/common/type/atom"
	"github.com/nounworks/nk/internal/engine"
	"github.com/nounworks/nk/internal/reader"
)

type vector struct {
	Name  string `yaml:"name"`
	Eval  string `yaml:"eval"`
	Want  string `yaml:"want"`
	Crash bool   `yaml:"crash"`
}

func TestReduction(t *testing.T) {
	b, err := os.ReadFile("testdata/eval.yaml")
	if err != nil {
		t.Fatal(err)
	}

	var vs []vector
	if err := yaml.Unmarshal(b, &vs); err != nil {
		t.Fatal(err)
	}

	for _, v := range vs {
		v := v

		t.Run(v.Name, func(t *testing.T) {
			n, err := reader.Read(v.Eval)
			if err != nil {
				t.Fatal(err)
			}

			got, err := engine.Nock(n)

			if v.Crash {
				crashed(t, err)

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if s := common.String(got); s != v.Want {
				t.Errorf("got %s, want %s", s, v.Want)
			}
		})
	}
}

func TestNockAtom(t *testing.T) {
	_, err := engine.Nock(atom.Int(42))

	crashed(t, err)
}

func TestCrashReport(t *testing.T) {
	n, err := reader.Read("[42 0 0]")
	if err != nil {
		t.Fatal(err)
	}

	_, err = engine.Nock(n)

	c := crashed(t, err)

	if c.Noun == nil || c.Reason == "" {
		t.Errorf("crash is missing its noun or reason: %#v", c)
	}

	if !strings.HasPrefix(c.Error(), "crash: ") {
		t.Errorf("unexpected crash text %q", c.Error())
	}
}

// The result of a reduction shares structure with its inputs but
// never aliases them in a way a caller could observe: the subject is
// not modified by edits made during reduction.
func TestReductionLeavesSubject(t *testing.T) {
	n, err := reader.Read("[[506 407] 10 [2 1 42] 0 1]")
	if err != nil {
		t.Fatal(err)
	}

	v, err := engine.Nock(n)
	if err != nil {
		t.Fatal(err)
	}

	if s := common.String(v); s != "[42 407]" {
		t.Errorf("got %s, want [42 407]", s)
	}

	want, err := reader.Read("[[506 407] 10 [2 1 42] 0 1]")
	if err != nil {
		t.Fatal(err)
	}

	if !n.Equal(want) {
		t.Errorf("reduction modified its input: %s", common.String(n))
	}
}
