package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/pagecore/config"
	"github.com/npillmayer/pagecore/flows"
	"github.com/npillmayer/pagecore/page"
	"github.com/npillmayer/pagecore/resources"
)

// Processor is the contract pagination drives.
type Processor interface {
	// ProcessPhysicalPage is called once for every cell of the grid of
	// a logical page, in row-major order.
	ProcessPhysicalPage(grid page.Grid, lp *page.Logical, row, col int, key page.PhysicalKey) error
	// ProcessLogicalPage is called once for every logical page, after all
	// its physical pages.
	ProcessLogicalPage(key page.LogicalKey, lp *page.Logical) error
	// ProcessingContentFinished is called once after the last page.
	ProcessingContentFinished() error
	MetaData() MetaData
	FlowSelector() flows.Selector
	SetFlowSelector(s flows.Selector)
}

// Aborter is implemented by processors which are able to release their
// resources on an interrupted run.
type Aborter interface {
	Abort() error
}

// StreamProcessor is a Processor writing to one destination stream.
type StreamProcessor struct {
	dest     io.Writer
	res      *resources.Manager
	md       MetaData
	factory  WriterFactory
	selector flows.Selector
	writer   PageWriter // nil until the first page
	doc      DocumentMeta
	finished bool
	lastKey  page.LogicalKey
	started  bool // at least one logical key seen
	written  bool // at least one page reached the writer
}

var _ Processor = (*StreamProcessor)(nil)
var _ Aborter = (*StreamProcessor)(nil)

// NewProcessor creates a processor for format f, writing to dest.
// Configuration supplies the printable area, the font storage strategy and
// the default flow selection. It is read once, at construction time.
//
// A missing argument or an illegal configuration value results in a
// *ConfigurationError.
func NewProcessor(conf config.Configuration, dest io.Writer, res *resources.Manager, f Format) (*StreamProcessor, error) {
	switch {
	case conf == nil:
		return nil, &ConfigurationError{Arg: "configuration"}
	case dest == nil:
		return nil, &ConfigurationError{Arg: "destination"}
	case res == nil:
		return nil, &ConfigurationError{Arg: "resource manager"}
	case f.NewWriter == nil:
		return nil, &ConfigurationError{Arg: "writer factory"}
	}
	if f.Mode&ModeBoth == 0 {
		return nil, &ConfigurationError{Arg: "mode", Err: fmt.Errorf("illegal mode %s", f.Mode)}
	}
	md := f.MetaData()
	var err error
	if md.PrintableWidth, err = config.Dimen(conf, config.KeyPageWidth); err != nil {
		return nil, &ConfigurationError{Arg: config.KeyPageWidth, Err: err}
	}
	if md.PrintableHeight, err = config.Dimen(conf, config.KeyPageHeight); err != nil {
		return nil, &ConfigurationError{Arg: config.KeyPageHeight, Err: err}
	}
	if md.FontStorage, err = ParseFontStorage(config.String(conf, config.KeyFontStorage)); err != nil {
		return nil, &ConfigurationError{Arg: config.KeyFontStorage, Err: err}
	}
	selector, err := flows.Parse(config.String(conf, config.KeyFlows))
	if err != nil {
		return nil, &ConfigurationError{Arg: config.KeyFlows, Err: err}
	}
	p := &StreamProcessor{
		dest:     dest,
		res:      res,
		md:       md,
		factory:  f.NewWriter,
		selector: selector,
		doc:      DocumentMeta{Title: config.String(conf, config.KeyTitle)},
	}
	tracer().Debugf("created output processor %s", md)
	return p, nil
}

// MetaData returns the static description of the output format.
func (p *StreamProcessor) MetaData() MetaData {
	return p.md
}

func (p *StreamProcessor) FlowSelector() flows.Selector {
	return p.selector
}

func (p *StreamProcessor) SetFlowSelector(s flows.Selector) {
	p.selector = s
}

// Opened is true if the writer has been created.
func (p *StreamProcessor) Opened() bool {
	return p.writer != nil
}

// Finished is true after ProcessingContentFinished or Abort.
func (p *StreamProcessor) Finished() bool {
	return p.finished
}

// Document returns the document metadata accumulated so far.
func (p *StreamProcessor) Document() DocumentMeta {
	return p.doc
}

func (p *StreamProcessor) ensureWriter() error {
	if p.writer != nil {
		return nil
	}
	w, err := p.factory(p.dest, p.md, p.res)
	if err != nil {
		return fmt.Errorf("creating %s writer: %w", p.md.Export.Name, err)
	}
	if w == nil {
		return fmt.Errorf("creating %s writer: factory returned no writer", p.md.Export.Name)
	}
	p.writer = w
	tracer().Debugf("opened %s writer", p.md.Export.Name)
	return nil
}

func (p *StreamProcessor) selectFlows(lp *page.Logical) []page.Flow {
	selected := make([]page.Flow, 0, len(lp.Flows))
	for _, f := range lp.Flows {
		if p.selector.Selects(f.Name) {
			selected = append(selected, f)
			p.doc.sawFlow(f.Name)
		}
	}
	return selected
}

// ProcessPhysicalPage hands one grid cell to the writer, if the processor
// operates in physical mode.
func (p *StreamProcessor) ProcessPhysicalPage(grid page.Grid, lp *page.Logical, row, col int,
	key page.PhysicalKey) error {
	//
	if p.finished {
		return ErrProcessorFinished
	}
	if !p.md.Mode.Physical() {
		return nil
	}
	if lp == nil {
		return errors.New("physical page without logical page")
	}
	if !grid.Contains(row, col) || key.Row != row || key.Col != col || key.Logical != lp.Key {
		return fmt.Errorf("physical key %s does not match cell (%d,%d) of %s", key, row, col, grid)
	}
	if err := p.ensureWriter(); err != nil {
		return err
	}
	pp := PhysicalPage{
		Key:    key,
		Grid:   grid,
		Page:   lp,
		Clip:   grid.Cell(row, col),
		Flows:  p.selectFlows(lp),
		Number: p.doc.PhysicalPages + 1,
	}
	if err := p.writer.WritePhysicalPage(pp); err != nil {
		return err
	}
	p.doc.PhysicalPages++
	p.written = true
	tracer().Debugf("emitted physical page %s", key)
	return nil
}

// ProcessLogicalPage hands a logical page to the writer, if the processor
// operates in logical mode. Keys must be strictly increasing.
func (p *StreamProcessor) ProcessLogicalPage(key page.LogicalKey, lp *page.Logical) error {
	if p.finished {
		return ErrProcessorFinished
	}
	if !p.md.Mode.Logical() {
		return nil
	}
	if lp == nil {
		return errors.New("logical page missing")
	}
	if p.started && key <= p.lastKey {
		return fmt.Errorf("logical page %s out of order, follows %s", key, p.lastKey)
	}
	if err := p.ensureWriter(); err != nil {
		return err
	}
	if err := p.writer.WriteLogicalPage(LogicalPage{Key: key, Page: lp, Flows: p.selectFlows(lp)}); err != nil {
		return err
	}
	p.started, p.lastKey = true, key
	p.doc.LogicalPages++
	p.written = true
	tracer().Debugf("emitted logical page %s", key)
	return nil
}

// ProcessingContentFinished commits the document metadata and closes the
// writer. If no page has been processed, there is no writer and nothing
// happens. A writer which has been opened, but never received a page
// successfully, is closed without a commit.
func (p *StreamProcessor) ProcessingContentFinished() error {
	if p.finished {
		return ErrProcessorFinished
	}
	p.finished = true
	if p.writer == nil {
		tracer().Debugf("no content generated, nothing to commit")
		return nil
	}
	var cerr error
	if p.written {
		if cerr = p.writer.Commit(p.doc); cerr != nil {
			tracer().Errorf("committing document: %v", cerr)
		}
	} else {
		tracer().Debugf("no page written, closing without commit")
	}
	err := p.writer.Close()
	tracer().Debugf("closed %s writer after %d logical, %d physical pages",
		p.md.Export.Name, p.doc.LogicalPages, p.doc.PhysicalPages)
	if cerr != nil {
		return cerr // primary failure wins
	}
	return err
}

// Abort closes an opened writer without committing. The processor accepts
// no further pages.
func (p *StreamProcessor) Abort() error {
	if p.finished {
		return nil
	}
	p.finished = true
	if p.writer == nil {
		return nil
	}
	tracer().Infof("aborting %s output", p.md.Export.Name)
	return p.writer.Close()
}
