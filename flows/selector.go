package flows

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Selector is a filter on flow names. The zero value selects all flows.
type Selector struct {
	include map[string]bool
	exclude map[string]bool
}

// All returns a selector for every flow.
func All() Selector {
	return Selector{}
}

// Only returns a selector for the named flows.
func Only(names ...string) Selector {
	s := Selector{include: make(map[string]bool, len(names))}
	for _, n := range names {
		s.include[n] = true
	}
	return s
}

// Except returns a selector for every flow but the named ones.
func Except(names ...string) Selector {
	s := Selector{exclude: make(map[string]bool, len(names))}
	for _, n := range names {
		s.exclude[n] = true
	}
	return s
}

// IsAll is true if s does not restrict flows at all.
func (s Selector) IsAll() bool {
	return len(s.include) == 0 && len(s.exclude) == 0
}

// Selects is true if flow name passes s.
func (s Selector) Selects(name string) bool {
	if s.exclude[name] {
		return false
	}
	return len(s.include) == 0 || s.include[name]
}

func (s Selector) String() string {
	if s.IsAll() {
		return "all"
	}
	var terms []string
	for n := range s.include {
		terms = append(terms, n)
	}
	for n := range s.exclude {
		terms = append(terms, "!"+n)
	}
	sort.Strings(terms)
	return strings.Join(terms, ", ")
}

// --- Parsing ---------------------------------------------------------------

var (
	selectorLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[,!*]`},
	})

	selectorParser = participle.MustBuild[selectorAST](
		participle.Lexer(selectorLexer),
		participle.Elide("Whitespace"),
	)
)

type selectorAST struct {
	Terms []*termAST `parser:"@@ ( ',' @@ )*"`
}

type termAST struct {
	All  bool   `parser:"  @('all' | '*')"`
	Not  bool   `parser:"| @'!'?"`
	Name string `parser:"  @Ident"`
}

// Parse reads a selector from its textual form. An empty string selects
// all flows. Terms are separated by commas; 'all' (or '*') selects every
// flow, overriding positive names given alongside it, while exclusions
// still apply. Thus "all, !watermark" equals Except("watermark").
func Parse(text string) (Selector, error) {
	if strings.TrimSpace(text) == "" {
		return All(), nil
	}
	ast, err := selectorParser.ParseString("", text)
	if err != nil {
		return Selector{}, fmt.Errorf("flow selector %q: %w", text, err)
	}
	s, all := Selector{}, false
	for _, t := range ast.Terms {
		switch {
		case t.All:
			all = true
		case t.Not:
			if s.exclude == nil {
				s.exclude = make(map[string]bool)
			}
			s.exclude[t.Name] = true
		default:
			if s.include == nil {
				s.include = make(map[string]bool)
			}
			s.include[t.Name] = true
		}
	}
	if all {
		s.include = nil
	}
	tracer().Debugf("parsed flow selector %q as %s", text, s)
	return s, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) Selector {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}
