package page

import (
	"testing"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestGridFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagecore.page")
	defer teardown()
	//
	pt := dimen.PT
	tests := []struct {
		w, h       dimen.DU
		rows, cols int
	}{
		{100 * pt, 100 * pt, 1, 1},
		{0, 0, 1, 1},
		{101 * pt, 100 * pt, 1, 2},
		{250 * pt, 180 * pt, 2, 3},
		{300 * pt, 200 * pt, 2, 3},
	}
	for i, test := range tests {
		g := GridFor(test.w, test.h, 100*pt, 100*pt)
		if g.Rows != test.rows || g.Cols != test.cols {
			t.Errorf("test #%d: expected grid %d×%d, is %s", i, test.rows, test.cols, g)
		}
	}
	if g := GridFor(10*pt, 10*pt, 0, 0); g.Size() != 1 {
		t.Errorf("expected degenerate printable area to yield 1 page, is %d", g.Size())
	}
}

func TestPhysicalKeyBounds(t *testing.T) {
	g, err := NewGrid(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.PhysicalKey(7, 1, 2); err != nil {
		t.Errorf("expected (1,2) to be in bounds, is %v", err)
	}
	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, 0}} {
		if _, err := g.PhysicalKey(7, rc[0], rc[1]); err == nil {
			t.Errorf("expected (%d,%d) to be out of bounds", rc[0], rc[1])
		}
	}
	if _, err := NewGrid(0, 1); err == nil {
		t.Errorf("expected empty grid to be rejected")
	}
}

func TestCellsRowMajor(t *testing.T) {
	g, _ := NewGrid(2, 3)
	var visited []PhysicalKey
	g.Cells(func(r, c int) bool {
		k, err := g.PhysicalKey(1, r, c)
		if err != nil {
			t.Fatal(err)
		}
		visited = append(visited, k)
		return true
	})
	if len(visited) != 6 {
		t.Fatalf("expected 6 cells, is %d", len(visited))
	}
	for i := 1; i < len(visited); i++ {
		p, k := visited[i-1], visited[i]
		if k.Row < p.Row || (k.Row == p.Row && k.Col <= p.Col) {
			t.Errorf("expected row-major order, %s follows %s", k, p)
		}
	}
}

func TestCellClip(t *testing.T) {
	pt := dimen.PT
	g := GridFor(250*pt, 180*pt, 100*pt, 100*pt)
	clip := g.Cell(1, 2)
	if clip.X != 200*pt || clip.Y != 100*pt || clip.Width != 100*pt {
		t.Errorf("expected clip at (200pt,100pt), is %v", clip)
	}
	box := content.Rect{X: 210 * pt, Y: 120 * pt, Width: 10 * pt, Height: 10 * pt}
	if !clip.Intersects(box) || g.Cell(0, 0).Intersects(box) {
		t.Errorf("expected box to be visible in cell (1,2) only")
	}
}

func TestLogicalFlows(t *testing.T) {
	root := content.NewContainer("main")
	lp := NewLogical(3, 100, 100).AddFlow(FlowContent, root).AddFlow(FlowWatermark, nil)
	if n, ok := lp.Flow(FlowContent); !ok || n != root {
		t.Errorf("expected to find content flow")
	}
	if _, ok := lp.Flow(FlowFooter); ok {
		t.Errorf("expected no footer flow")
	}
	if lp.Key.String() != "page#3" {
		t.Errorf("expected key page#3, is %s", lp.Key)
	}
}
