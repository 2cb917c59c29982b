/*
Package htmlwriter renders logical pages as HTML tables.

Every logical page becomes a table. Text runs and replaced content with
equal vertical position form a table row, with one cell per run. Replaced
content with a resource key is rendered as an image, sized by the resource
manager if it knows the image. The document is assembled as a
node tree and rendered when the document metadata is committed, or when the
writer is closed without a commit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlwriter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pagecore/content"
	"github.com/npillmayer/pagecore/output"
	"github.com/npillmayer/pagecore/resources"
	"github.com/npillmayer/pagecore/writers"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Export describes HTML output.
var Export = output.Export{Name: "html", MimeType: "text/html", Extension: ".html"}

// Format returns the HTML table format. Output units are CSS pixels.
func Format() output.Format {
	return output.Format{
		Export:        Export,
		Mode:          output.ModeLogical,
		Features:      output.FeatureText | output.FeatureImages,
		UnitsPerPoint: 96.0 / 72.0,
		NewWriter:     New,
	}
}

// Writer is an HTML table page writer.
type Writer struct {
	dest     io.Writer
	md       output.MetaData
	res      *resources.Manager // may be nil
	doc      *html.Node
	head     *html.Node
	body     *html.Node
	rendered bool
}

var _ output.PageWriter = (*Writer)(nil)

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// New creates an HTML writer. It is an output.WriterFactory.
func New(dest io.Writer, md output.MetaData, res *resources.Manager) (output.PageWriter, error) {
	w := &Writer{dest: dest, md: md, res: res}
	w.doc = &html.Node{Type: html.DocumentNode}
	w.doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	w.head = element(atom.Head)
	w.head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	w.body = element(atom.Body)
	root.AppendChild(w.head)
	root.AppendChild(w.body)
	w.doc.AppendChild(root)
	return w, nil
}

func (w *Writer) px(n float64) string {
	return strconv.FormatFloat(n, 'f', 1, 64) + "px"
}

// WriteLogicalPage appends a table for the page.
func (w *Writer) WriteLogicalPage(p output.LogicalPage) error {
	if w.rendered {
		return fmt.Errorf("html writer already rendered, cannot add %s", p.Key)
	}
	table := element(atom.Table, "class", "page", "data-page", strconv.Itoa(int(p.Key)))
	if p.Page != nil {
		table.Attr = append(table.Attr, html.Attribute{
			Key: "style",
			Val: "width:" + w.px(w.md.ToOutputUnit(p.Page.Width)),
		})
	}
	tbody := element(atom.Tbody)
	table.AppendChild(tbody)
	runs := writers.Runs(p.Flows, content.KindText, content.KindReplaced)
	for _, line := range writers.Lines(runs) {
		tr := element(atom.Tr)
		for _, run := range line {
			td := element(atom.Td, "style", "padding-left:"+w.px(w.md.ToOutputUnit(run.Bounds.X)))
			if run.Kind() == content.KindReplaced {
				td.AppendChild(w.image(run))
			} else {
				td.AppendChild(text(run.Text))
			}
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	w.body.AppendChild(table)
	writers.Tracer().Debugf("html: added table for %s", p.Key)
	return nil
}

// image creates an img element for replaced content. Images known to the
// resource manager get their registered size, others their natural size.
func (w *Writer) image(n *content.Node) *html.Node {
	width, height := n.NaturalWidth, n.NaturalHeight
	if w.res != nil && n.Source != "" {
		if info, err := w.res.ImageSize(n.Source, nil); err == nil {
			width, height = info.Width, info.Height
		} else {
			writers.Tracer().Debugf("html: %v", err)
		}
	}
	img := element(atom.Img)
	if n.Source != "" {
		img.Attr = append(img.Attr, html.Attribute{Key: "src", Val: n.Source})
	}
	if n.Name != "" {
		img.Attr = append(img.Attr, html.Attribute{Key: "alt", Val: n.Name})
	}
	img.Attr = append(img.Attr,
		html.Attribute{Key: "width", Val: w.intpx(width)},
		html.Attribute{Key: "height", Val: w.intpx(height)},
	)
	return img
}

func (w *Writer) intpx(d dimen.DU) string {
	return strconv.Itoa(int(math.Round(w.md.ToOutputUnit(d))))
}

// WritePhysicalPage is not supported by HTML tables.
func (w *Writer) WritePhysicalPage(p output.PhysicalPage) error {
	return fmt.Errorf("html writer does not tile pages, got %s", p.Key)
}

// Commit adds document metadata and renders the document.
func (w *Writer) Commit(dm output.DocumentMeta) error {
	if dm.Title != "" {
		title := element(atom.Title)
		title.AppendChild(text(dm.Title))
		w.head.AppendChild(title)
	}
	w.head.AppendChild(element(atom.Meta, "name", "generator", "content", "pagecore"))
	w.head.AppendChild(element(atom.Meta, "name", "pages", "content", strconv.Itoa(dm.LogicalPages)))
	if len(dm.Flows) > 0 {
		w.head.AppendChild(element(atom.Meta, "name", "flows", "content", strings.Join(dm.Flows, " ")))
	}
	return w.render()
}

func (w *Writer) render() error {
	if w.rendered {
		return nil
	}
	w.rendered = true
	return html.Render(w.dest, w.doc)
}

// Close renders the document if it has not been committed.
func (w *Writer) Close() error {
	return w.render()
}
