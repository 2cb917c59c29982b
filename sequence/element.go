package sequence

import (
	"fmt"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/tyse/core/dimen"
)

// Class is the classification of a sequence element.
type Class uint8

const (
	ClassStart   Class = iota // leading edge of an inline box
	ClassContent              // measurable content
	ClassEnd                  // trailing edge of an inline box
)

func (c Class) String() string {
	switch c {
	case ClassStart:
		return "START"
	case ClassContent:
		return "CONTENT"
	case ClassEnd:
		return "END"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Element is the measurement protocol for inline content. Implementations
// are stateless; all answers derive from the node and its geometry.
type Element interface {
	MinimumWidth(n *content.Node) dimen.DU
	MaximumWidth(n *content.Node) dimen.DU
	PreservesWhitespace(n *content.Node) bool
	Classification() Class
}

// The six element variants. They are zero-size values and may be compared
// with ==.
var (
	Start     Element = startElement{}
	End       Element = endElement{}
	Text      Element = textElement{}
	InlineBox Element = inlineBoxElement{}
	Replaced  Element = replacedElement{}
	Spacer    Element = spacerElement{}
)

// ContractViolation is the panic value for an element receiving a node it
// cannot measure.
type ContractViolation struct {
	Element string
	Kind    content.Kind
	Nil     bool
}

func (cv ContractViolation) Error() string {
	if cv.Nil {
		return fmt.Sprintf("%s element called with nil node", cv.Element)
	}
	return fmt.Sprintf("%s element called with %s node", cv.Element, cv.Kind)
}

func mustBe(element string, n *content.Node, accept func(content.Kind) bool) {
	if n == nil {
		panic(ContractViolation{Element: element, Nil: true})
	}
	if !accept(n.Kind()) {
		panic(ContractViolation{Element: element, Kind: n.Kind()})
	}
}

func kindIs(k content.Kind) func(content.Kind) bool {
	return func(x content.Kind) bool { return x == k }
}

func anyKind(content.Kind) bool { return true }

func atLeast(min, x dimen.DU) dimen.DU {
	if x < min {
		return min
	}
	return x
}

// --- Start -----------------------------------------------------------------

type startElement struct{}

func (startElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("start", n, kindIs(content.KindInline))
	return n.Geometry().Leading()
}

func (e startElement) MaximumWidth(n *content.Node) dimen.DU {
	return e.MinimumWidth(n)
}

func (startElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("start", n, kindIs(content.KindInline))
	return n.Geometry().PreserveWhitespace
}

func (startElement) Classification() Class { return ClassStart }
func (startElement) String() string        { return "Start" }

// --- End -------------------------------------------------------------------

type endElement struct{}

func (endElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("end", n, kindIs(content.KindInline))
	return n.Geometry().Trailing()
}

func (e endElement) MaximumWidth(n *content.Node) dimen.DU {
	return e.MinimumWidth(n)
}

func (endElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("end", n, kindIs(content.KindInline))
	return n.Geometry().PreserveWhitespace
}

func (endElement) Classification() Class { return ClassEnd }
func (endElement) String() string        { return "End" }

// --- Text ------------------------------------------------------------------

type textElement struct{}

// MinimumWidth is the tightest unbreakable chunk of the text run.
func (textElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("text", n, kindIs(content.KindText))
	return n.MinChunk
}

// MaximumWidth is the natural width of the text run.
func (textElement) MaximumWidth(n *content.Node) dimen.DU {
	mustBe("text", n, kindIs(content.KindText))
	return atLeast(n.MinChunk, n.MaxBox)
}

func (textElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("text", n, kindIs(content.KindText))
	return n.Geometry().PreserveWhitespace
}

func (textElement) Classification() Class { return ClassContent }
func (textElement) String() string        { return "Text" }

// --- Inline box ------------------------------------------------------------

// inlineBoxElement measures atomic boxes, which are never wrapped at their
// own edges.
type inlineBoxElement struct{}

func isBox(k content.Kind) bool { return k.IsBox() }

func (inlineBoxElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("inline-box", n, isBox)
	return n.MinChunk + n.Geometry().HorizontalMargins()
}

func (inlineBoxElement) MaximumWidth(n *content.Node) dimen.DU {
	mustBe("inline-box", n, isBox)
	return atLeast(n.MinChunk, n.MaxBox) + n.Geometry().HorizontalMargins()
}

func (inlineBoxElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("inline-box", n, isBox)
	return n.Geometry().PreserveWhitespace
}

func (inlineBoxElement) Classification() Class { return ClassContent }
func (inlineBoxElement) String() string        { return "InlineBox" }

// --- Replaced content ------------------------------------------------------

type replacedElement struct{}

func (replacedElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("replaced", n, kindIs(content.KindReplaced))
	return n.NaturalWidth
}

// MaximumWidth is the natural width, or a larger maximum width imposed by an
// enclosing inline container.
func (replacedElement) MaximumWidth(n *content.Node) dimen.DU {
	mustBe("replaced", n, kindIs(content.KindReplaced))
	var limit dimen.DU
	switch m := n.MaxWidth.Match(); m {
	case m.Just(&limit):
		return atLeast(n.NaturalWidth, limit)
	}
	return n.NaturalWidth
}

func (replacedElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("replaced", n, kindIs(content.KindReplaced))
	return false
}

func (replacedElement) Classification() Class { return ClassContent }
func (replacedElement) String() string        { return "Replaced" }

// --- Spacer ----------------------------------------------------------------

type spacerElement struct{}

func (spacerElement) MinimumWidth(n *content.Node) dimen.DU {
	mustBe("spacer", n, anyKind)
	return n.MinChunk
}

func (spacerElement) MaximumWidth(n *content.Node) dimen.DU {
	mustBe("spacer", n, anyKind)
	return atLeast(n.MinChunk, n.MaxBox)
}

// PreservesWhitespace is false: a spacer is whitespace itself.
func (spacerElement) PreservesWhitespace(n *content.Node) bool {
	mustBe("spacer", n, anyKind)
	return false
}

func (spacerElement) Classification() Class { return ClassContent }
func (spacerElement) String() string        { return "Spacer" }
