/*
Package douceuradapter reads computed styles in CSS syntax, using the
douceur CSS parser.

Upstream styling hands over computed properties for every box. For
fixtures, tests and simple report definitions it is convenient to state
these in CSS syntax, either as a declaration block

    margin: 2pt; padding-left: 4pt; white-space: pre

or as a stylesheet of named styles

    .title { margin-left: 4pt }
    .cell  { padding: 1pt 2pt }

No selector matching is performed: a rule's prelude is taken verbatim as
the name of a style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/pagecore/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagecore.style'.
func tracer() tracing.Trace {
	return tracing.Select("pagecore.style")
}

// ParseDeclarations parses a CSS declaration block into a property map.
func ParseDeclarations(block string) (*style.PropertyMap, error) {
	decls, err := parser.ParseDeclarations(block)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	return fromDeclarations(decls), nil
}

func fromDeclarations(decls []*css.Declaration) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		pmap.Add(strings.ToLower(d.Property), style.Property(d.Value))
	}
	return pmap
}

// CSSStyles is a collection of named styles, wrapping a douceur stylesheet.
type CSSStyles struct {
	css css.Stylesheet
}

// ParseStylesheet parses CSS text into a collection of named styles.
func ParseStylesheet(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	return &CSSStyles{*css}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Names returns the preludes of all the rules, in order of appearance.
func (sheet *CSSStyles) Names() []string {
	names := make([]string, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		names = append(names, strings.TrimSpace(r.Prelude))
	}
	return names
}

// Style returns the properties of all rules with prelude name, later
// rules overriding earlier ones. If no rule matches, Style returns nil,
// which is a legal (empty) property map.
func (sheet *CSSStyles) Style(name string) *style.PropertyMap {
	var pmap *style.PropertyMap
	for _, r := range sheet.css.Rules {
		if strings.TrimSpace(r.Prelude) != name {
			continue
		}
		if pmap == nil {
			pmap = style.NewPropertyMap()
		}
		for _, d := range r.Declarations {
			pmap.Add(strings.ToLower(d.Property), style.Property(d.Value))
		}
	}
	if pmap == nil {
		tracer().Debugf("no style named %q", name)
	}
	return pmap
}
