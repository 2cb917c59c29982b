package tree

// Visitor receives callbacks from Walk. Enter is called before any of the
// children of a node are visited, Leave after all of them.
//
// If Enter returns SkipChildren, the children of the node are not visited,
// but Leave is still called for the node. Any other error aborts the walk.
type Visitor[T comparable] struct {
	Enter func(n *Node[T]) error
	Leave func(n *Node[T]) error
}

// Walk traverses the tree below (and including) root depth-first, in
// document order, on the calling goroutine.
func Walk[T comparable](root *Node[T], v Visitor[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return walk(root, v)
}

func walk[T comparable](node *Node[T], v Visitor[T]) error {
	descend := true
	if v.Enter != nil {
		if err := v.Enter(node); err == SkipChildren {
			descend = false
		} else if err != nil {
			return err
		}
	}
	if descend {
		for _, ch := range node.Children() {
			if err := walk(ch, v); err != nil {
				return err
			}
		}
	}
	if v.Leave != nil {
		return v.Leave(node)
	}
	return nil
}

// Leafs collects all the leafs of the tree below root, in document order.
func Leafs[T comparable](root *Node[T]) []*Node[T] {
	var leafs []*Node[T]
	_ = Walk(root, Visitor[T]{
		Enter: func(n *Node[T]) error {
			if n.ChildCount() == 0 {
				leafs = append(leafs, n)
			}
			return nil
		},
	})
	tracer().Debugf("collected %d leafs", len(leafs))
	return leafs
}
