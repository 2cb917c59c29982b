/*
Package textwriter renders logical pages as plain text.

Text runs are placed on a grid of character cells. Runs with equal vertical
position form a line, horizontal positions are converted to columns.
East Asian wide characters occupy two cells. Pages are separated by a form
feed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textwriter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/npillmayer/pagecore/config"
	"github.com/npillmayer/pagecore/output"
	"github.com/npillmayer/pagecore/resources"
	"github.com/npillmayer/pagecore/writers"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/text/width"
)

// Export describes plain text output.
var Export = output.Export{Name: "text", MimeType: "text/plain", Extension: ".txt"}

// Format returns the plain text format for character cells of width cell.
// Output units are columns.
func Format(cell dimen.DU) output.Format {
	if cell <= 0 {
		cell = 6 * dimen.PT
	}
	return output.Format{
		Export:        Export,
		Mode:          output.ModeLogical,
		Features:      output.FeatureText,
		UnitsPerPoint: float64(dimen.PT) / float64(cell),
		NewWriter:     New,
	}
}

// FormatFromConfig reads the cell width from configuration.
func FormatFromConfig(conf config.Configuration) (output.Format, error) {
	cell, err := config.Dimen(conf, config.KeyCellWidth)
	if err != nil {
		return output.Format{}, err
	}
	return Format(cell), nil
}

// Writer is a plain text page writer.
type Writer struct {
	out    *bufio.Writer
	md     output.MetaData
	pages  int
	closed bool
}

var _ output.PageWriter = (*Writer)(nil)

// New creates a plain text writer. It is an output.WriterFactory.
func New(dest io.Writer, md output.MetaData, _ *resources.Manager) (output.PageWriter, error) {
	return &Writer{out: bufio.NewWriter(dest), md: md}, nil
}

// Cells returns the number of character cells s occupies.
func Cells(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func (w *Writer) column(x dimen.DU) int {
	return int(math.Round(w.md.ToOutputUnit(x)))
}

// WriteLogicalPage writes the text runs of the page's flows.
func (w *Writer) WriteLogicalPage(p output.LogicalPage) error {
	if w.closed {
		return errors.New("text writer closed")
	}
	if w.pages > 0 {
		if _, err := w.out.WriteString("\f\n"); err != nil {
			return err
		}
	}
	w.pages++
	for _, line := range writers.Lines(writers.TextRuns(p.Flows)) {
		var b strings.Builder
		cells := 0
		for _, run := range line {
			col := max(w.column(run.Bounds.X), 0) // runs may stick out to the left
			if cells > 0 && col <= cells {
				col = cells + 1 // keep runs apart
			}
			b.WriteString(strings.Repeat(" ", col-cells))
			b.WriteString(run.Text)
			cells = col + Cells(run.Text)
		}
		b.WriteByte('\n')
		if _, err := w.out.WriteString(b.String()); err != nil {
			return err
		}
	}
	writers.Tracer().Debugf("text: wrote %s", p.Key)
	return nil
}

// WritePhysicalPage is not supported by plain text.
func (w *Writer) WritePhysicalPage(p output.PhysicalPage) error {
	return fmt.Errorf("text writer does not tile pages, got %s", p.Key)
}

// Commit writes a trailer line.
func (w *Writer) Commit(dm output.DocumentMeta) error {
	title := dm.Title
	if title == "" {
		title = "report"
	}
	_, err := fmt.Fprintf(w.out, "\n-- %s: %d page(s) --\n", title, dm.LogicalPages)
	return err
}

// Close flushes buffered output.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.out.Flush()
}
