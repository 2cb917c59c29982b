/*
Package pdfwriter renders physical pages as PDF sheets.

Every cell of a page grid becomes one sheet of the size of the printable
area. Nodes visible within the cell are drawn as frames, replaced content is
crossed out. The writer draws with github.com/tdewolff/canvas, in
millimeters with the origin at the top left corner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pdfwriter

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/output"
	"github.com/npillmayer/pagecore/resources"
	"github.com/npillmayer/pagecore/writers"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
)

// Export describes PDF output.
var Export = output.Export{Name: "pdf", MimeType: "application/pdf", Extension: ".pdf"}

const frameWidth = 0.2 // mm

// Format returns the PDF format. Output units are millimeters.
func Format() output.Format {
	return output.Format{
		Export:        Export,
		Mode:          output.ModePhysical,
		Features:      output.FeatureBorders | output.FeatureImages | output.FeaturePaging,
		UnitsPerPoint: 25.4 / 72.0,
		NewWriter:     New,
	}
}

// Writer is a PDF page writer.
type Writer struct {
	pdf           *pdf.PDF
	md            output.MetaData
	width, height float64 // sheet size in mm
	sheets        int
	closed        bool
}

var _ output.PageWriter = (*Writer)(nil)

// New creates a PDF writer for sheets of the printable area of md.
// It is an output.WriterFactory.
func New(dest io.Writer, md output.MetaData, _ *resources.Manager) (output.PageWriter, error) {
	w := &Writer{
		md:     md,
		width:  md.ToOutputUnit(md.PrintableWidth),
		height: md.ToOutputUnit(md.PrintableHeight),
	}
	if w.width <= 0 || w.height <= 0 {
		return nil, fmt.Errorf("illegal sheet size %.1f×%.1f mm", w.width, w.height)
	}
	w.pdf = pdf.New(dest, w.width, w.height, nil)
	return w, nil
}

// WriteLogicalPage is not supported, PDF sheets are physical pages.
func (w *Writer) WriteLogicalPage(p output.LogicalPage) error {
	return fmt.Errorf("pdf writer needs physical pages, got %s", p.Key)
}

// WritePhysicalPage draws one sheet.
func (w *Writer) WritePhysicalPage(p output.PhysicalPage) error {
	if w.closed {
		return errors.New("pdf writer closed")
	}
	if w.sheets > 0 {
		w.pdf.NewPage(w.width, w.height)
	}
	w.sheets++
	c := canvas.New(w.width, w.height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(color.Transparent)
	ctx.SetStrokeColor(color.Black)
	ctx.SetStrokeWidth(frameWidth)
	n := 0
	for _, node := range writers.Visible(p.Flows, p.Clip) {
		w.draw(ctx, node, p.Clip)
		n++
	}
	c.RenderTo(w.pdf)
	writers.Tracer().Debugf("pdf: sheet %d for %s with %d nodes", p.Number, p.Key, n)
	return nil
}

func (w *Writer) draw(ctx *canvas.Context, n *content.Node, clip content.Rect) {
	x := w.md.ToOutputUnit(n.Bounds.X - clip.X)
	y := w.md.ToOutputUnit(n.Bounds.Y - clip.Y)
	wd := w.md.ToOutputUnit(n.Bounds.Width)
	ht := w.md.ToOutputUnit(n.Bounds.Height)
	ctx.DrawPath(x, y, canvas.Rectangle(wd, ht))
	if n.Kind() == content.KindReplaced {
		cross := &canvas.Path{}
		cross.MoveTo(0, 0)
		cross.LineTo(wd, ht)
		cross.MoveTo(wd, 0)
		cross.LineTo(0, ht)
		ctx.DrawPath(x, y, cross)
	}
}

// Commit sets the document information.
func (w *Writer) Commit(dm output.DocumentMeta) error {
	w.pdf.SetInfo(dm.Title, "", strings.Join(dm.Flows, ", "), "", "pagecore")
	return nil
}

// Close finishes the PDF document.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.pdf.Close()
}
