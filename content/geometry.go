package content

import (
	"fmt"

	"github.com/npillmayer/pagecore/css"
	"github.com/npillmayer/pagecore/maybe"
	"github.com/npillmayer/pagecore/style"
	"github.com/npillmayer/pagecore/style/douceuradapter"
	"github.com/npillmayer/tyse/core/dimen"
)

// StaticBoxGeometry holds the precomputed margins, borders and padding of
// a box, together with its whitespace handling. It is computed once
// upstream and never mutated afterwards.
type StaticBoxGeometry struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft     dimen.DU
	BorderTop, BorderRight, BorderBottom, BorderLeft     dimen.DU
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft dimen.DU
	PreserveWhitespace                                   bool
}

var zeroGeometry StaticBoxGeometry

// Leading returns the width a box contributes on its leading (left) edge:
// margin + border + padding.
func (g *StaticBoxGeometry) Leading() dimen.DU {
	return g.MarginLeft + g.BorderLeft + g.PaddingLeft
}

// Trailing returns the width a box contributes on its trailing (right)
// edge: padding + border + margin.
func (g *StaticBoxGeometry) Trailing() dimen.DU {
	return g.PaddingRight + g.BorderRight + g.MarginRight
}

// HorizontalMargins returns the sum of left and right margin.
func (g *StaticBoxGeometry) HorizontalMargins() dimen.DU {
	return g.MarginLeft + g.MarginRight
}

func (g *StaticBoxGeometry) String() string {
	return fmt.Sprintf("geometry[lead=%d trail=%d pre=%v]", g.Leading(), g.Trailing(), g.PreserveWhitespace)
}

// GeometryFromStyles derives static box geometry from computed styles.
// Percentages are resolved against ref, the width of the containing block.
// Borders with style none or hidden do not contribute a width.
func GeometryFromStyles(pmap *style.PropertyMap, ref dimen.DU) (*StaticBoxGeometry, error) {
	g := &StaticBoxGeometry{}
	dirs := [4]string{"top", "right", "bottom", "left"}
	margins := [4]*dimen.DU{&g.MarginTop, &g.MarginRight, &g.MarginBottom, &g.MarginLeft}
	borders := [4]*dimen.DU{&g.BorderTop, &g.BorderRight, &g.BorderBottom, &g.BorderLeft}
	paddings := [4]*dimen.DU{&g.PaddingTop, &g.PaddingRight, &g.PaddingBottom, &g.PaddingLeft}
	for i, dir := range dirs {
		if err := resolveInto(margins[i], pmap, "margin-"+dir, ref, css.ParseDimen); err != nil {
			return nil, err
		}
		if err := resolveInto(paddings[i], pmap, "padding-"+dir, ref, css.ParseDimen); err != nil {
			return nil, err
		}
		switch pmap.GetPropertyValue("border-" + dir + "-style") {
		case "none", "hidden", style.NullStyle:
			continue
		}
		if err := resolveInto(borders[i], pmap, "border-"+dir+"-width", ref, css.ParseBorderWidth); err != nil {
			return nil, err
		}
	}
	switch pmap.GetPropertyValue("white-space") {
	case "pre", "pre-wrap", "break-spaces":
		g.PreserveWhitespace = true
	}
	tracer().Debugf("box %s", g)
	return g, nil
}

// GeometryFromCSS derives static box geometry from a CSS declaration block,
// e.g. "margin: 2pt; padding-left: 1mm".
func GeometryFromCSS(decls string, ref dimen.DU) (*StaticBoxGeometry, error) {
	pmap, err := douceuradapter.ParseDeclarations(decls)
	if err != nil {
		return nil, err
	}
	return GeometryFromStyles(pmap, ref)
}

func resolveInto(du *dimen.DU, pmap *style.PropertyMap, key string, ref dimen.DU,
	parse func(style.Property) (css.DimenT, error)) error {
	//
	d, err := parse(pmap.GetPropertyValue(key))
	if err != nil {
		return fmt.Errorf("property %s: %w", key, err)
	}
	if x, ok := d.Resolve(ref); ok {
		*du = x
	}
	return nil // auto and friends resolve to 0
}

// MaxWidthFromStyles returns the max-width constraint of a box, if any.
func MaxWidthFromStyles(pmap *style.PropertyMap, ref dimen.DU) maybe.Maybe[dimen.DU] {
	p := pmap.GetPropertyValue("max-width")
	if p == "none" {
		return maybe.Nothing[dimen.DU]()
	}
	d, err := css.ParseDimen(p)
	if err != nil {
		tracer().Errorf("ignoring max-width: %v", err)
		return maybe.Nothing[dimen.DU]()
	}
	if x, ok := d.Resolve(ref); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[dimen.DU]()
}
