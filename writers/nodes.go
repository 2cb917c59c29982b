package writers

import (
	"slices"
	"sort"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/page"
)

// Collect returns the nodes of flows for which keep is true, in document
// order. keep may be nil.
func Collect(flows []page.Flow, keep func(*content.Node) bool) []*content.Node {
	var nodes []*content.Node
	for _, f := range flows {
		if f.Root == nil {
			continue
		}
		_ = content.Walk(f.Root, func(n *content.Node) error {
			if keep == nil || keep(n) {
				nodes = append(nodes, n)
			}
			return nil
		}, nil)
	}
	return nodes
}

// TextRuns returns the text nodes of flows, sorted top to bottom, then left
// to right.
func TextRuns(flows []page.Flow) []*content.Node {
	return Runs(flows, content.KindText)
}

// Runs returns the nodes of flows of the given kinds, sorted like TextRuns.
func Runs(flows []page.Flow, kinds ...content.Kind) []*content.Node {
	runs := Collect(flows, func(n *content.Node) bool {
		return slices.Contains(kinds, n.Kind())
	})
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i].Bounds, runs[j].Bounds
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return runs
}

// Lines groups runs sorted by TextRuns or Runs into lines of equal Y.
func Lines(runs []*content.Node) [][]*content.Node {
	var lines [][]*content.Node
	for i, r := range runs {
		if i == 0 || r.Bounds.Y != runs[i-1].Bounds.Y {
			lines = append(lines, nil)
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r)
	}
	return lines
}

// Visible returns the nodes of flows with a non-empty area intersecting
// clip, excluding structural containers.
func Visible(flows []page.Flow, clip content.Rect) []*content.Node {
	return Collect(flows, func(n *content.Node) bool {
		return n.Kind() != content.KindContainer && n.Bounds.Intersects(clip)
	})
}
