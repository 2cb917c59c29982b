package content

import (
	"fmt"

	"github.com/npillmayer/pagecore/maybe"
	"github.com/npillmayer/pagecore/resources"
	"github.com/npillmayer/pagecore/tree"
	"github.com/npillmayer/tyse/core/dimen"
)

// Kind is the type of a content node.
type Kind uint8

const (
	KindContainer   Kind = iota // structural container
	KindBox                     // generic block-level box
	KindInline                  // inline box, contributes a start and an end edge
	KindInlineBlock             // atomic inline-level box
	KindText                    // text run
	KindReplaced                // replaced content, e.g. image
	KindSpacer                  // whitespace or gap
)

var kindNames = [...]string{"container", "box", "inline", "inline-block", "text", "replaced", "spacer"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsBox is true for all kinds of boxes, i.e. nodes which may carry box
// geometry of their own.
func (k Kind) IsBox() bool {
	return k == KindBox || k == KindInline || k == KindInlineBlock || k == KindContainer
}

// Rect is a rectangle in logical page coordinates.
type Rect struct {
	X, Y          dimen.DU
	Width, Height dimen.DU
}

// Intersects is true if r and o share a non-empty area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Node is a node of the content tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             Kind
	Name             string             // optional name, e.g. of the report element
	Bounds           Rect               // resolved position and size
	geometry         *StaticBoxGeometry // shared, read-only
	// Widths measured upstream. For text, MinChunk is the tightest
	// unbreakable width and MaxBox the natural width. For boxes and
	// spacers they are the minimum chunk and the maximum box width.
	MinChunk dimen.DU
	MaxBox   dimen.DU
	// Natural size of replaced content.
	NaturalWidth  dimen.DU
	NaturalHeight dimen.DU
	Source        string // resource key of replaced content, if any
	// MaxWidth is a maximum width imposed on replaced content by an
	// enclosing inline container, if any.
	MaxWidth maybe.Maybe[dimen.DU]
	Text     string
}

func newNode(kind Kind, geometry *StaticBoxGeometry) *Node {
	n := &Node{kind: kind, geometry: geometry}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// Adapt gets the content node from a generic tree node.
func Adapt(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// NewContainer creates a structural container node.
func NewContainer(name string) *Node {
	n := newNode(KindContainer, nil)
	n.Name = name
	return n
}

// NewBox creates a generic block-level box.
func NewBox(geometry *StaticBoxGeometry) *Node {
	return newNode(KindBox, geometry)
}

// NewInline creates an inline box. Its children form the inline content,
// its geometry contributes to the leading and trailing edge.
func NewInline(geometry *StaticBoxGeometry) *Node {
	return newNode(KindInline, geometry)
}

// NewInlineBlock creates an atomic inline-level box with a given minimum
// content chunk and maximum content width (both without margins).
func NewInlineBlock(geometry *StaticBoxGeometry, minChunk, maxBox dimen.DU) *Node {
	n := newNode(KindInlineBlock, geometry)
	n.MinChunk, n.MaxBox = minChunk, maxBox
	return n
}

// NewText creates a text run with its tightest unbreakable width and its
// natural width. geometry is usually inherited from the enclosing box and
// tells if whitespace is to be preserved.
func NewText(text string, minChunk, natural dimen.DU, geometry *StaticBoxGeometry) *Node {
	n := newNode(KindText, geometry)
	n.Text = text
	n.MinChunk, n.MaxBox = minChunk, natural
	return n
}

// NewReplaced creates a node for replaced content of a given natural size.
func NewReplaced(naturalWidth, naturalHeight dimen.DU) *Node {
	n := newNode(KindReplaced, nil)
	n.NaturalWidth, n.NaturalHeight = naturalWidth, naturalHeight
	return n
}

// NewReplacedImage creates a node for an image registered with res under
// key. The natural size is the image's size at the manager's resolution.
// open is used to read the image header if res does not yet know the image.
func NewReplacedImage(res *resources.Manager, key string, open resources.Opener) (*Node, error) {
	if res == nil {
		return nil, fmt.Errorf("image %s: no resource manager", key)
	}
	info, err := res.ImageSize(key, open)
	if err != nil {
		return nil, err
	}
	n := NewReplaced(info.Width, info.Height)
	n.Source = key
	tracer().Debugf("replaced content %s: %s image of %dx%d px", key, info.Format, info.Pixels.X, info.Pixels.Y)
	return n, nil
}

// NewSpacer creates a spacer, i.e. a (possibly stretchable) gap.
func NewSpacer(minChunk, maxBox dimen.DU) *Node {
	n := newNode(KindSpacer, nil)
	n.MinChunk, n.MaxBox = minChunk, maxBox
	return n
}

// Kind returns the kind of a node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Geometry returns the static box geometry of a node. Nodes without
// geometry of their own report an all-zero geometry.
func (n *Node) Geometry() *StaticBoxGeometry {
	if n.geometry == nil {
		return &zeroGeometry
	}
	return n.geometry
}

// TreeNode returns the underlying generic tree node.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

// Add appends children to n and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.AddChild(&ch.Node)
		}
	}
	return n
}

// ChildNodes returns the children of n as content nodes.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	r := make([]*Node, 0, len(children))
	for _, ch := range children {
		r = append(r, Adapt(ch))
	}
	return r
}

// ParentNode returns the parent of n or nil.
func (n *Node) ParentNode() *Node {
	return Adapt(n.Parent())
}

// At sets the resolved bounds of n and returns n.
func (n *Node) At(x, y, w, h dimen.DU) *Node {
	n.Bounds = Rect{X: x, Y: y, Width: w, Height: h}
	return n
}

func (n *Node) String() string {
	if n.kind == KindText {
		return fmt.Sprintf("text(%q)", n.Text)
	}
	if n.Name != "" {
		return fmt.Sprintf("%s(%s)", n.kind, n.Name)
	}
	return n.kind.String()
}

// Walk visits the content tree below (and including) n in document order.
// enter may return tree.SkipChildren.
func Walk(n *Node, enter, leave func(*Node) error) error {
	if n == nil {
		return tree.ErrEmptyTree
	}
	v := tree.Visitor[*Node]{}
	if enter != nil {
		v.Enter = func(t *tree.Node[*Node]) error { return enter(Adapt(t)) }
	}
	if leave != nil {
		v.Leave = func(t *tree.Node[*Node]) error { return leave(Adapt(t)) }
	}
	return tree.Walk(&n.Node, v)
}
