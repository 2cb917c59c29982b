package output

import (
	"io"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/page"
	"github.com/npillmayer/pagecore/resources"
)

// LogicalPage is what a writer receives for a logical page. Flows holds
// the flows passing the processor's flow selector.
type LogicalPage struct {
	Key   page.LogicalKey
	Page  *page.Logical
	Flows []page.Flow
}

// PhysicalPage is what a writer receives for one cell of a page grid.
// Clip is the visible part of the logical page. Number counts physical
// pages of the run, starting at 1.
type PhysicalPage struct {
	Key    page.PhysicalKey
	Grid   page.Grid
	Page   *page.Logical
	Clip   content.Rect
	Flows  []page.Flow
	Number int
}

// PageWriter renders pages of one format onto a destination stream.
// A writer is used by exactly one processor. It will only receive the
// page callbacks matching the processor's mode.
type PageWriter interface {
	WriteLogicalPage(p LogicalPage) error
	WritePhysicalPage(p PhysicalPage) error
	// Commit receives the accumulated document metadata, once, after the
	// last page.
	Commit(dm DocumentMeta) error
	// Close releases the writer. It does not close the destination stream,
	// which is owned by the caller.
	Close() error
}

// WriterFactory creates and opens a writer. It is called on the first page
// of a run.
type WriterFactory func(dest io.Writer, md MetaData, res *resources.Manager) (PageWriter, error)

// Format describes an output format: its static capabilities and how to
// create writers for it.
type Format struct {
	Export        Export
	Mode          Mode
	Features      Feature
	UnitsPerPoint float64
	NewWriter     WriterFactory
}

// MetaData returns the static description of the format, without the parts
// taken from configuration.
func (f Format) MetaData() MetaData {
	return MetaData{
		Export:        f.Export,
		Mode:          f.Mode,
		Features:      f.Features,
		UnitsPerPoint: f.UnitsPerPoint,
	}
}
