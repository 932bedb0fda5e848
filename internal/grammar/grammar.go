// Package grammar embeds the EBNF description of the glox syntax. The parser
// is written by hand; the grammar is kept next to it as documentation and is
// checked for consistency with golang.org/x/exp/ebnf.
package grammar

import (
	_ "embed"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production a whole program is derived from.
const Start = "Program"

//go:embed grammar.ebnf
var Source string

// Parse parses the embedded grammar.
func Parse() (ebnf.Grammar, error) {
	return parse("grammar.ebnf", strings.NewReader(Source))
}

// Verify parses the embedded grammar and checks that every production is
// defined and reachable from Start.
func Verify() (ebnf.Grammar, error) {
	return verify("grammar.ebnf", strings.NewReader(Source))
}

// Productions returns the sorted names of the grammar's productions.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parse(filename string, src io.Reader) (ebnf.Grammar, error) {
	return ebnf.Parse(filename, src)
}

func verify(filename string, src io.Reader) (ebnf.Grammar, error) {
	g, err := parse(filename, src)
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, err
	}
	return g, nil
}
