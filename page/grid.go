package page

import (
	"fmt"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/tyse/core/dimen"
)

// Grid is an arrangement of rows × columns of physical pages for one
// logical page. Each cell is PageWidth × PageHeight in size.
type Grid struct {
	Rows, Cols            int
	PageWidth, PageHeight dimen.DU
}

// NewGrid creates a grid of rows × cols cells. Both must be at least 1.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("illegal page grid %d×%d", rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// GridFor computes the grid needed to tile a logical page of size
// width × height onto physical pages with a printable area of
// pw × ph. The grid is at least 1×1.
func GridFor(width, height, pw, ph dimen.DU) Grid {
	g := Grid{Rows: tiles(height, ph), Cols: tiles(width, pw), PageWidth: pw, PageHeight: ph}
	tracer().Debugf("page %v×%v needs grid %d×%d", width, height, g.Rows, g.Cols)
	return g
}

func tiles(extent, tile dimen.DU) int {
	if tile <= 0 || extent <= tile {
		return 1
	}
	return int((extent + tile - 1) / tile)
}

// Size is the number of physical pages of the grid.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// Contains is true if (row, col) is a cell of g.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// PhysicalKey creates the key for cell (row, col) of logical page lk.
// It fails for cells outside the grid.
func (g Grid) PhysicalKey(lk LogicalKey, row, col int) (PhysicalKey, error) {
	if !g.Contains(row, col) {
		return PhysicalKey{}, fmt.Errorf("cell (%d,%d) out of bounds of %s", row, col, g)
	}
	return PhysicalKey{Logical: lk, Row: row, Col: col}, nil
}

// Cell returns the clip rectangle of cell (row, col) in logical page
// coordinates.
func (g Grid) Cell(row, col int) content.Rect {
	return content.Rect{
		X:      dimen.DU(col) * g.PageWidth,
		Y:      dimen.DU(row) * g.PageHeight,
		Width:  g.PageWidth,
		Height: g.PageHeight,
	}
}

// Cells calls f for every cell in row-major order until f returns false.
func (g Grid) Cells(f func(row, col int) bool) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !f(r, c) {
				return
			}
		}
	}
}

func (g Grid) String() string {
	return fmt.Sprintf("grid(%d×%d)", g.Rows, g.Cols)
}
