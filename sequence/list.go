package sequence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/tyse/core/dimen"
)

// DefaultCapacity is the initial capacity of a list, large enough for
// common line lengths.
const DefaultCapacity = 50

// ErrInvalidArgument is returned when adding a nil element or node.
var ErrInvalidArgument = errors.New("invalid argument")

// List is an ordered buffer of (element, node) pairs, representing one
// candidate line. The zero value is an empty list ready to use.
//
// Nodes and elements are kept in two parallel slices which always have the
// same length.
type List struct {
	nodes    []*content.Node
	elements []Element
}

// NewList creates an empty list. A capacity ≤ 0 selects DefaultCapacity.
func NewList(capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{
		nodes:    make([]*content.Node, 0, capacity),
		elements: make([]Element, 0, capacity),
	}
}

// Add appends a pair to the list. Both e and n must be non-nil.
func (l *List) Add(e Element, n *content.Node) error {
	if e == nil {
		return fmt.Errorf("%w: element is nil", ErrInvalidArgument)
	}
	if n == nil {
		return fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	}
	if l.nodes == nil {
		l.nodes = make([]*content.Node, 0, DefaultCapacity)
		l.elements = make([]Element, 0, DefaultCapacity)
	}
	l.nodes = append(l.nodes, n)
	l.elements = append(l.elements, e)
	return nil
}

// Size returns the number of pairs in the list.
func (l *List) Size() int {
	return len(l.nodes)
}

// Node returns the node at position i.
func (l *List) Node(i int) *content.Node {
	return l.nodes[i]
}

// Element returns the element at position i.
func (l *List) Element(i int) Element {
	return l.elements[i]
}

// MinimumLength reports the length contribution of position i.
//
// Note: this is the *maximum* width of the element. Line fitting code
// built on top of the list relies on this.
func (l *List) MinimumLength(i int) dimen.DU {
	return l.elements[i].MaximumWidth(l.nodes[i])
}

// Clear empties the list, retaining its capacity.
func (l *List) Clear() {
	for i := range l.nodes {
		l.nodes[i] = nil // do not hold on to content trees
		l.elements[i] = nil
	}
	l.nodes = l.nodes[:0]
	l.elements = l.elements[:0]
}

// ExportElements copies the elements into buf, in insertion order. If buf
// is too small, a new slice is allocated. The result is always of length
// Size().
func (l *List) ExportElements(buf []Element) []Element {
	if cap(buf) < len(l.elements) {
		buf = make([]Element, len(l.elements))
	}
	buf = buf[:len(l.elements)]
	copy(buf, l.elements)
	return buf
}

// ExportNodes copies the nodes into buf, in insertion order. If buf is too
// small, a new slice is allocated. The result is always of length Size().
func (l *List) ExportNodes(buf []*content.Node) []*content.Node {
	if cap(buf) < len(l.nodes) {
		buf = make([]*content.Node, len(l.nodes))
	}
	buf = buf[:len(l.nodes)]
	copy(buf, l.nodes)
	return buf
}

// MinimumWidth is the width of the line with every element compressed to
// its minimum.
func (l *List) MinimumWidth() dimen.DU {
	var w dimen.DU
	for i, e := range l.elements {
		w += e.MinimumWidth(l.nodes[i])
	}
	return w
}

// MaximumWidth is the width of the line with every element at its maximum.
func (l *List) MaximumWidth() dimen.DU {
	var w dimen.DU
	for i, e := range l.elements {
		w += e.MaximumWidth(l.nodes[i])
	}
	return w
}

// Stretch is the amount of space justification may distribute, i.e. the
// difference between maximum and minimum width of all CONTENT elements.
func (l *List) Stretch() dimen.DU {
	var s dimen.DU
	for i, e := range l.elements {
		if e.Classification() == ClassContent {
			s += e.MaximumWidth(l.nodes[i]) - e.MinimumWidth(l.nodes[i])
		}
	}
	return s
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", e, l.nodes[i])
	}
	b.WriteByte(']')
	return b.String()
}
