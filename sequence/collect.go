package sequence

import (
	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/tree"
)

// ElementFor returns the content element for a node, or nil for nodes
// which contribute no element themselves (containers, block boxes and the
// edges of inline boxes).
func ElementFor(n *content.Node) Element {
	switch n.Kind() {
	case content.KindInlineBlock:
		return InlineBox
	case content.KindText:
		return Text
	case content.KindReplaced:
		return Replaced
	case content.KindSpacer:
		return Spacer
	}
	return nil
}

// Collect appends the inline sequence for the subtree at root to l.
// An inline box contributes a Start element, followed by the elements of its
// children, followed by an End element. Inline blocks are atomic and their
// children are not visited.
func Collect(l *List, root *content.Node) error {
	n0 := l.Size()
	err := content.Walk(root, func(n *content.Node) error {
		if n.Kind() == content.KindInline {
			return l.Add(Start, n)
		}
		e := ElementFor(n)
		if e == nil {
			return nil
		}
		if err := l.Add(e, n); err != nil {
			return err
		}
		if n.Kind() == content.KindInlineBlock {
			return tree.SkipChildren
		}
		return nil
	}, func(n *content.Node) error {
		if n.Kind() == content.KindInline {
			return l.Add(End, n)
		}
		return nil
	})
	tracer().Debugf("collected %d elements from %v", l.Size()-n0, root)
	return err
}
