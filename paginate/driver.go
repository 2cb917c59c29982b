package paginate

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/pagecore/output"
	"github.com/npillmayer/pagecore/page"
)

// Status is the terminal outcome of a pagination run.
type Status uint8

const (
	StatusCompleted Status = iota
	StatusCanceled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCanceled:
		return "canceled"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// ErrCanceled is returned if the context of a run has been canceled.
// It wraps the cause of the cancellation.
var ErrCanceled = errors.New("pagination canceled")

var (
	ErrNoPage        = errors.New("logical page missing")
	ErrPageOrder     = errors.New("logical pages out of order")
	ErrNoMode        = errors.New("output processor declares no pagination mode")
	errFinishedPages = errors.New("driver already finished")
)

// GridFunc computes the page grid for a logical page.
type GridFunc func(lp *page.Logical, md output.MetaData) page.Grid

// PrintableArea tiles a logical page onto physical pages of the printable
// area of the output format.
func PrintableArea(lp *page.Logical, md output.MetaData) page.Grid {
	return page.GridFor(lp.Width, lp.Height, md.PrintableWidth, md.PrintableHeight)
}

// Driver paginates logical pages onto one output processor.
// A driver is good for one run and is not safe for concurrent use.
type Driver struct {
	proc     output.Processor
	grid     GridFunc
	lastKey  page.LogicalKey
	started  bool
	finished bool
}

// NewDriver creates a driver for proc. If grid is nil, pages are tiled
// onto the printable area of the output format.
func NewDriver(proc output.Processor, grid GridFunc) *Driver {
	if grid == nil {
		grid = PrintableArea
	}
	return &Driver{proc: proc, grid: grid}
}

func canceled(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrCanceled, context.Cause(ctx))
}

// Page issues the callbacks for one logical page. It returns an error
// wrapping ErrCanceled if ctx is canceled before or in between the page's
// physical pages. In this case the logical page callback is not issued.
// Failures of the processor are reported as *output.ContentProcessingError.
// A processor whose metadata selects neither logical nor physical mode
// fails with ErrNoMode.
func (d *Driver) Page(ctx context.Context, lp *page.Logical) error {
	if d.finished {
		return errFinishedPages
	}
	if err := canceled(ctx); err != nil {
		return err
	}
	if lp == nil {
		return &output.ContentProcessingError{Op: "logical", Page: "<nil>", Cause: ErrNoPage}
	}
	if d.started && lp.Key <= d.lastKey {
		return output.WrapPageError("logical", lp.Key,
			fmt.Errorf("%w: %s follows %s", ErrPageOrder, lp.Key, d.lastKey))
	}
	d.started, d.lastKey = true, lp.Key
	md := d.proc.MetaData()
	if md.Mode&output.ModeBoth == 0 {
		return output.WrapPageError("logical", lp.Key, ErrNoMode)
	}
	if md.Mode.Physical() {
		grid := d.grid(lp, md)
		tracer().Debugf("paginating %s onto %s", lp, grid)
		for row := 0; row < grid.Rows; row++ {
			for col := 0; col < grid.Cols; col++ {
				if err := canceled(ctx); err != nil {
					return err
				}
				key, err := grid.PhysicalKey(lp.Key, row, col)
				if err != nil {
					return output.WrapPageError("physical", lp.Key, err)
				}
				if err := d.proc.ProcessPhysicalPage(grid, lp, row, col, key); err != nil {
					tracer().Errorf("physical page %s: %v", key, err)
					return output.WrapPageError("physical", key, err)
				}
			}
		}
	}
	if md.Mode.Logical() {
		if err := d.proc.ProcessLogicalPage(lp.Key, lp); err != nil {
			tracer().Errorf("logical page %s: %v", lp.Key, err)
			return output.WrapPageError("logical", lp.Key, err)
		}
	}
	return nil
}

// Finish signals the end of content to the processor.
func (d *Driver) Finish() error {
	if d.finished {
		return errFinishedPages
	}
	d.finished = true
	if err := d.proc.ProcessingContentFinished(); err != nil {
		return fmt.Errorf("finishing output: %w", err)
	}
	return nil
}

// Abort ends the run prematurely. Processors implementing output.Aborter
// release their resources without committing.
func (d *Driver) Abort() error {
	if d.finished {
		return nil
	}
	d.finished = true
	if a, ok := d.proc.(output.Aborter); ok {
		return a.Abort()
	}
	return nil
}

// Run paginates all pages and finishes the processor. On cancellation or
// failure the processor is aborted instead.
func (d *Driver) Run(ctx context.Context, pages []*page.Logical) (Status, error) {
	for _, lp := range pages {
		if err := d.Page(ctx, lp); err != nil {
			return d.fail(err)
		}
	}
	if err := d.Finish(); err != nil {
		return StatusFailed, err
	}
	tracer().Debugf("pagination of %d logical pages completed", len(pages))
	return StatusCompleted, nil
}

func (d *Driver) fail(err error) (Status, error) {
	status := StatusFailed
	if errors.Is(err, ErrCanceled) {
		status = StatusCanceled
	}
	tracer().Infof("pagination %s: %v", status, err)
	if aerr := d.Abort(); aerr != nil {
		tracer().Errorf("aborting output: %v", aerr)
	}
	return status, err
}
