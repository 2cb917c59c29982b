package page

import (
	"fmt"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/tyse/core/dimen"
)

// LogicalKey identifies a logical page. Keys of a report run are strictly
// increasing.
type LogicalKey int

func (k LogicalKey) String() string {
	return fmt.Sprintf("page#%d", int(k))
}

// PhysicalKey identifies one cell of the grid of a logical page.
type PhysicalKey struct {
	Logical  LogicalKey
	Row, Col int
}

func (k PhysicalKey) String() string {
	return fmt.Sprintf("%s[%d,%d]", k.Logical, k.Row, k.Col)
}

// Flow is a named stream of content on a logical page, e.g. the main
// content or a watermark layer.
type Flow struct {
	Name string
	Root *content.Node
}

// Well-known flow names.
const (
	FlowContent   = "content"
	FlowHeader    = "header"
	FlowFooter    = "footer"
	FlowWatermark = "watermark"
	FlowOverlay   = "overlay"
)

// Logical is one finished logical page. Its content has already been laid
// out and is read-only.
type Logical struct {
	Key           LogicalKey
	Width, Height dimen.DU
	Flows         []Flow
}

// NewLogical creates a logical page of the given size.
func NewLogical(key LogicalKey, width, height dimen.DU) *Logical {
	return &Logical{Key: key, Width: width, Height: height}
}

// AddFlow appends a named flow and returns the page.
func (lp *Logical) AddFlow(name string, root *content.Node) *Logical {
	lp.Flows = append(lp.Flows, Flow{Name: name, Root: root})
	return lp
}

// Flow returns the root of the flow with the given name, if present.
func (lp *Logical) Flow(name string) (*content.Node, bool) {
	for _, f := range lp.Flows {
		if f.Name == name {
			return f.Root, true
		}
	}
	return nil, false
}

func (lp *Logical) String() string {
	return fmt.Sprintf("%s(%v×%v, %d flows)", lp.Key, lp.Width, lp.Height, len(lp.Flows))
}
